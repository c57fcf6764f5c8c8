package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pharmxd-server/internal/api"
	"github.com/pharmxd-server/internal/config"
	"github.com/pharmxd-server/internal/feedback"
	"github.com/pharmxd-server/internal/logging"
	"github.com/pharmxd-server/internal/service"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := logging.NewLogger(cfg.Logging)
	logger.Infof("Starting PharmXD server on %s:%d", cfg.Server.Host, cfg.Server.Port)

	// Build the pipeline services
	deps := api.Deps{
		Extractor: service.NewExtractorService(logger),
		Caller:    service.NewCallerService(logger),
		Matcher:   service.NewMatcherService(logger),
		Sessions:  service.NewSessionManager(logger, cfg.Session.MaxSessions, cfg.Session.TTL),
	}

	if cfg.Feedback.Enabled {
		store, err := feedback.NewSQLiteStore(cfg.Feedback.DBPath)
		if err != nil {
			log.Fatalf("Failed to open feedback store: %v", err)
		}
		defer store.Close()
		deps.FeedbackStore = store
	}

	server := api.NewServer(configManager, logger, deps)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	// Start server
	if err := server.Start(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	logger.Info("Server stopped")
}
