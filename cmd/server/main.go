package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shipping-bridge.backend/internal/config"
	domainrepos "shipping-bridge.backend/internal/domain/repositories"
	"shipping-bridge.backend/internal/infrastructure/jobs"
	"shipping-bridge.backend/internal/infrastructure/models"
	"shipping-bridge.backend/internal/infrastructure/oauthstate"
	"shipping-bridge.backend/internal/infrastructure/repositories"
	"shipping-bridge.backend/internal/infrastructure/shopify"
	"shipping-bridge.backend/internal/interfaces/http/handlers"
	"shipping-bridge.backend/internal/interfaces/http/middleware"
	"shipping-bridge.backend/internal/usecases"
	"shipping-bridge.backend/pkg/logger"
	"shipping-bridge.backend/pkg/sessiontoken"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = openDatabase
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The database must be reachable before the server binds; running
	// without persistence would drop installs on the floor.
	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Shop{}, &models.ExtensionKey{}, &models.SenderConfig{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Repositories
	shopRepo := repositories.NewShopRepository(db)
	keyRepo := repositories.NewExtensionKeyRepository(db)
	senderConfigRepo := repositories.NewSenderConfigRepository(db)

	stateStore, err := newStateStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize oauth state store: %w", err)
	}

	// Platform client
	shopifyClient := shopify.NewClient(cfg.Shopify.APIKey, cfg.Shopify.APISecret)

	// Usecases
	keyUsecase := usecases.NewExtensionKeyUsecase(keyRepo, shopRepo)
	authUsecase := usecases.NewAuthUsecase(shopRepo, keyUsecase, stateStore, shopifyClient, cfg.Shopify)
	senderConfigUsecase := usecases.NewSenderConfigUsecase(senderConfigRepo)
	orderUsecase := usecases.NewOrderUsecase(shopifyClient, cfg.Shipping.DefaultTrackingCompany)
	webhookUsecase := usecases.NewWebhookUsecase(shopRepo, keyRepo, senderConfigRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	extensionKeyHandler := handlers.NewExtensionKeyHandler(keyUsecase)
	senderConfigHandler := handlers.NewSenderConfigHandler(senderConfigUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	webhookHandler := handlers.NewWebhookHandler(webhookUsecase, cfg.Shopify.APISecret)

	sessionAuth := middleware.SessionAuthMiddleware(sessiontoken.NewDecoder(), shopRepo)
	extensionAuth := middleware.ExtensionKeyAuthMiddleware(keyUsecase)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweepJob := jobs.NewStateSweepJob(stateStore, cfg.Shopify.SweepEvery, cfg.Shopify.StateTTL)
	go sweepJob.Start(ctx)

	// Router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r, shopRepo)
	registerAdminPage(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:             authHandler,
		extensionKeyHandler:     extensionKeyHandler,
		senderConfigHandler:     senderConfigHandler,
		orderHandler:            orderHandler,
		webhookHandler:          webhookHandler,
		sessionAuthMiddleware:   sessionAuth,
		extensionAuthMiddleware: extensionAuth,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		sweepJob.Stop()
		cancel()
	}()

	log.Printf("Shipping Bridge backend starting on port %s", cfg.Server.Port)
	log.Printf("App URL: %s", cfg.Shopify.AppURL)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// openDatabase connects to Postgres when a connection string is configured
// and falls back to the embedded sqlite file otherwise.
func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if !cfg.UseSQLite() {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.URL,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}

	if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
		return nil, err
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
}

// newStateStore picks the pending-state backend: Redis when configured so
// multiple instances share the install handshake, in-process otherwise.
func newStateStore(cfg *config.Config) (domainrepos.StateStore, error) {
	if cfg.Redis.URL == "" {
		return oauthstate.NewMemoryStore(), nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	return oauthstate.NewRedisStore(redis.NewClient(opts), cfg.Shopify.StateTTL), nil
}
