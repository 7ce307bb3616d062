package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventx/api/routes"
	"eventx/internal/events"
	"eventx/internal/gallery"
	"eventx/internal/notifications"
	"eventx/internal/payments"
	"eventx/internal/shared/config"
	"eventx/internal/shared/database"
	"eventx/internal/shared/middleware"
	"eventx/internal/shared/storage"
	"eventx/internal/wallet"
	"eventx/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Initialize stores
	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Ticket record store: Redis when available, in-memory otherwise.
	var kv storage.KV
	if db.Redis != nil {
		kv = storage.NewRedisKV(db.Redis)
	} else {
		appLogger.Info("Redis disabled: using in-memory record store, data will not survive restarts")
		kv = storage.NewMemoryKV()
	}

	// Seed the event catalog on first start.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := events.NewService(events.NewRepository(kv)).EnsureSeeded(seedCtx); err != nil {
		appLogger.Error("failed to seed event catalog", slog.Any("error", err))
	}
	if db.Gallery != nil {
		if err := gallery.NewService(gallery.NewRepository(db.Gallery)).EnsureSeeded(seedCtx); err != nil {
			appLogger.Error("failed to seed gallery", slog.Any("error", err))
		}
	}
	seedCancel()

	// Payment gateway simulator
	gateway := payments.NewSimulator(payments.Config{
		FailureRate: cfg.Payment.FailureRate,
		MinDelay:    cfg.Payment.MinDelay,
		MaxDelay:    cfg.Payment.MaxDelay,
		Seed:        cfg.Payment.Seed,
	})

	// Wallet pass export
	walletSink, err := wallet.NewFileSink(cfg.Wallet.PassDir)
	if err != nil {
		appLogger.Error("failed to initialize wallet sink", slog.Any("error", err))
		os.Exit(1)
	}

	// Notification sink: Kafka when configured, log-only otherwise.
	var notifySink notifications.Sink
	if cfg.Kafka.Enabled {
		kafkaSink, err := notifications.NewKafkaSink(
			notifications.DefaultKafkaConfig(cfg.Kafka.Brokers, cfg.Kafka.Topic),
			appLogger,
		)
		if err != nil {
			appLogger.Error("failed to initialize Kafka sink, falling back to log sink", slog.Any("error", err))
			notifySink = notifications.NewLogSink(appLogger)
		} else {
			defer kafkaSink.Close()
			notifySink = kafkaSink
		}
	} else {
		notifySink = notifications.NewLogSink(appLogger)
	}

	// Setup router
	router := setupRouter(cfg, db, routes.Dependencies{
		KV:      kv,
		Gateway: gateway,
		Wallet:  walletSink,
		Notify:  notifySink,
		Logger:  appLogger,
	})

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("version", cfg.APIVersion),
			slog.Bool("redis_store", db.Redis != nil),
			slog.Bool("gallery_store", db.Gallery != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, db *database.DB, deps routes.Dependencies) *gin.Engine {
	engine := gin.New()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(middleware.RequestLogger(deps.Logger), middleware.Recovery(deps.Logger))

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // allow every origin dynamically
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Initialize and setup routes
	appRouter := routes.NewRouter(cfg, db, deps)
	appRouter.SetupRoutes(engine)

	return engine
}
