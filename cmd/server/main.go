package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/config"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/eventbus"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/gateway"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/handler"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/server"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/service"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/storage"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	var repo domain.Repository
	if cfg.Database.URL != "" {
		store, err := storage.Open(cfg.Database.URL)
		if err != nil {
			log.Fatal(ctx, "Failed to open database",
				"error", err,
			)
		}
		defer store.Close()
		repo = store
		log.Info(ctx, "Postgres repository initialized")
	} else {
		repo = storage.NewMemoryStore()
		log.Info(ctx, "In-memory repository initialized")
	}

	gatewayClient := gateway.NewHTTPClient(cfg.Gateway.BaseURL, cfg.Gateway.Token, cfg.Gateway.Timeout, log)
	if cfg.Gateway.BaseURL == "" {
		log.Warn(ctx, "Payment gateway not configured, sync passes will be skipped")
	}

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	}
	bus := eventbus.New(log, eventBusCfg)

	webhookConsumer := eventbus.NewWebhookConsumer(
		cfg.Notifier.WebhookURL,
		log,
		cfg.Worker.PoolSize,
	)

	for _, eventType := range []eventbus.EventType{
		eventbus.EventTypeOrderUpdated,
		eventbus.EventTypeTransferMatched,
		eventbus.EventTypeTransferPendingReview,
	} {
		if err := bus.Subscribe(eventType, webhookConsumer); err != nil {
			log.Fatal(ctx, "Failed to subscribe consumer",
				"event_type", eventType,
				"error", err,
			)
		}
	}

	if err := bus.Start(ctx); err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}
	log.Info(ctx, "Event bus started",
		"worker_count", cfg.Worker.PoolSize,
	)

	matcher := service.NewMatcher(repo, service.MatcherConfig{
		Window:          cfg.Matching.Window,
		AmountTolerance: cfg.Matching.AmountTolerance,
		ReviewLookback:  cfg.Matching.ReviewLookback,
	}, log)
	settler := service.NewSettler(repo, bus, cfg.Matching.AmountTolerance, log)
	ingestor := service.NewIngestor(repo, matcher, settler, bus, log)

	scheduler := service.NewScheduler(repo, gatewayClient, ingestor, service.SchedulerConfig{
		Interval:          cfg.Sync.Interval,
		StartupDelay:      cfg.Sync.StartupDelay,
		BootstrapLookback: cfg.Sync.BootstrapLookback,
	}, log)
	scheduler.Start()
	log.Info(ctx, "Sync scheduler started",
		"interval", cfg.Sync.Interval,
		"startup_delay", cfg.Sync.StartupDelay,
	)

	transferService := service.NewTransferService(repo, matcher, settler, scheduler, gatewayClient, log)

	transferHandler := handler.NewTransferHandler(transferService, log)
	healthHandler := handler.NewHealthHandler()

	srv := server.New(cfg, log, transferHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown in order:
	// 1. Stop accepting new HTTP requests
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	// 2. Stop the sync scheduler; an in-flight pass runs to completion
	scheduler.Stop()

	// 3. Stop event bus and wait for workers to finish
	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
