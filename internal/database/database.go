package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"compass-quiz/internal/config"
	"compass-quiz/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	_ "github.com/lib/pq"          // Postgres driver
	_ "github.com/sijms/go-ora/v2" // Oracle driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver
)

func init() {
	// go-ora registers as "oracle", which sqlx does not know; it takes :name placeholders.
	sqlx.BindDriver(config.DriverOracle, sqlx.NAMED)
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// Connect opens and pings the database selected by cfg.DB.Driver.
func Connect(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	driver := cfg.DB.Driver
	db, err := sqlx.Open(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	switch driver {
	case config.DriverOracle:
		// Oracle reports unquoted identifiers in upper case.
		db.Mapper = reflectx.NewMapperTagFunc("db", strings.ToUpper, strings.ToUpper)
	case config.DriverSQLite:
		// A single writer avoids SQLITE_BUSY under concurrent requests.
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	logger.Get().Info("Successfully connected to database", zap.String("driver", driver))
	return db, nil
}
