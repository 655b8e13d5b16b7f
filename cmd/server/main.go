package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anjanx44/payment-system/internal/config"
	"github.com/anjanx44/payment-system/internal/infrastructure/database"
	httpServer "github.com/anjanx44/payment-system/internal/infrastructure/http"
	"github.com/anjanx44/payment-system/internal/infrastructure/provider"
	"github.com/anjanx44/payment-system/internal/logging"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, logger); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// Run database migrations
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	repos := database.NewRepositories(db, logger)

	// Build the provider registry once; it is immutable afterwards.
	registry, err := provider.NewRegistry(cfg.Providers, logger)
	if err != nil {
		logger.Fatal("Failed to build provider registry", zap.Error(err))
	}
	logger.Info("Provider registry built", zap.Strings("providers", registry.Names()))

	httpSrv := httpServer.NewServer(cfg, logger, repos, registry)

	go func() {
		if err := httpSrv.Start(); err != nil {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	logger.Info("Server shut down successfully")
}
