package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"payme.backend/internal/config"
	"payme.backend/internal/infrastructure/models"
	"payme.backend/internal/infrastructure/repositories"
	"payme.backend/internal/interfaces/http/handlers"
	"payme.backend/internal/interfaces/http/middleware"
	"payme.backend/internal/usecases"
	"payme.backend/pkg/logger"
	"payme.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
		if cfg.URL != "" {
			return gorm.Open(postgres.New(postgres.Config{
				DSN:                  cfg.URL,
				PreferSimpleProtocol: true,
			}), &gorm.Config{})
		}
		return gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis is optional; without it invoice creation just loses the
	// idempotency cache.
	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		logger.Info(context.Background(), "Redis initialized")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&models.Invoice{}, &models.Contact{}); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	// Initialize repositories
	invoiceRepo := repositories.NewInvoiceRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	invoiceUsecase := usecases.NewInvoiceUsecase(invoiceRepo, uow, cfg.Frontend.BaseURL, cfg.Tempo.ChainID, cfg.Tempo.RPCURL)
	contactUsecase := usecases.NewContactUsecase(contactRepo)

	// Initialize handlers
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUsecase)
	contactHandler := handlers.NewContactHandler(contactUsecase)

	// Rate limiter with background idle-bucket sweep
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go rateLimiter.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		invoiceHandler: invoiceHandler,
		contactHandler: contactHandler,
		rateLimiter:    rateLimiter,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		rateLimiter.Stop()
		cancel()
	}()

	log.Printf("payme backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
