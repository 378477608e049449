package main

import (
	"context"
	"flag"
	"log"
	"time"

	"compass-quiz/internal/config"
	"compass-quiz/internal/database"
	"compass-quiz/internal/logger"

	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", string(database.Up), "migration direction: up or down")
	configPath := flag.String("config", "", "path to config.yaml (default: ./config.yaml or ./config/config.yaml)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadConfigFromPath(*configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	dir := database.Direction(*direction)
	if dir != database.Up && dir != database.Down {
		l.Fatal("Unknown migration direction", zap.String("direction", *direction))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err), zap.String("driver", cfg.DB.Driver))
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.DB.Driver, dir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err), zap.String("direction", *direction))
	}
	l.Info("Migrations applied", zap.String("driver", cfg.DB.Driver), zap.String("direction", *direction))
}
