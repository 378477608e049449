// @title Compass Quiz API
// @version 1.0
// @description Two-phase political compass quiz: sessions, stateless classification and the ideology catalogue.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_SESSION_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "compass-quiz/cmd/api/docs"
	"compass-quiz/internal/adapter"
	"compass-quiz/internal/cache"
	"compass-quiz/internal/catalog"
	"compass-quiz/internal/config"
	"compass-quiz/internal/database"
	"compass-quiz/internal/domain"
	"compass-quiz/internal/handler"
	"compass-quiz/internal/logger"
	"compass-quiz/internal/middleware"
	"compass-quiz/internal/questionbank"
	"compass-quiz/internal/repository"
	"compass-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	bank := questionbank.Default()
	catalogue := catalog.Default()
	appLogger.Info("Question bank and catalogue loaded",
		zap.Int("questions", len(bank.Questions())),
		zap.Int("ideologies", len(catalogue.All())))

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStartup()

	// Redis is optional; sessions fall back to process memory without it.
	var cacheAdapter domain.Cache
	var redisClient *redis.Client
	redisClient, err = cache.NewRedisClient(startupCtx, cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, keeping sessions in memory", zap.Error(err), zap.String("address", cfg.Redis.Address))
		redisClient = nil
	} else {
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	}
	sessionStore := service.NewSessionStore(cacheAdapter, cfg.Quiz.SessionTTL)

	// The result archive is optional as well.
	var resultRepository domain.ResultRepository
	var dbPinger handler.Pinger
	var db *sqlx.DB
	db, err = database.Connect(startupCtx, cfg)
	if err != nil {
		appLogger.Warn("Result database unavailable, completed sessions will not be archived",
			zap.Error(err), zap.String("driver", cfg.DB.Driver))
		db = nil
	} else {
		if err := database.Migrate(db, cfg.DB.Driver, database.Up); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
		appLogger.Info("Connected to result database", zap.String("driver", cfg.DB.Driver))
		resultRepository = repository.NewSQLXResultRepository(db, catalogue)
		dbPinger = db
	}

	// Initialize services
	sessionService := service.NewQuizSessionService(sessionStore, bank, catalogue, resultRepository, service.QuizSessionConfig{
		TiebreakerMargin: cfg.Quiz.TiebreakerMargin,
		ShortQuizOrder:   questionbank.ShortQuizOrder,
	})
	tokenService := service.NewTokenService(cfg.Auth.SessionSecret, cfg.Auth.TokenTTL)
	classificationService := service.NewClassificationService(catalogue)
	statsService := service.NewStatsService(resultRepository)

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessionService, tokenService, bank)
	catalogueHandler := handler.NewCatalogueHandler(classificationService, statsService)
	healthHandler := handler.NewHealthHandler(cacheAdapter, dbPinger)
	validationMiddleware := middleware.NewValidationMiddleware()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")
	apiGroup.Get("/health", healthHandler.Health)

	limited := apiGroup.Group("", limiter.New(limiter.Config{
		Max:        cfg.RateLimit.Max,
		Expiration: cfg.RateLimit.Window,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(middleware.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "Too many requests",
				Status:  fiber.StatusTooManyRequests,
			})
		},
	}))

	sessionHandler.Register(limited, validationMiddleware.ValidateSessionID(), middleware.RequireSessionToken(tokenService))
	limited.Post("/classify", catalogueHandler.Classify)
	limited.Get("/catalogue", catalogueHandler.ListCells)
	limited.Get("/catalogue/:cell", validationMiddleware.ValidateMacroCell(), catalogueHandler.GetCell)
	limited.Get("/stats", catalogueHandler.GetStats)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	if db != nil {
		if err := db.Close(); err != nil {
			appLogger.Warn("Failed to close result database", zap.Error(err))
		}
	}
	appLogger.Info("Server exited gracefully")
}
