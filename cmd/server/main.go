package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitorsp/perfboard/internal/api"
	"github.com/vitorsp/perfboard/internal/chesscom"
	"github.com/vitorsp/perfboard/internal/config"
	"github.com/vitorsp/perfboard/internal/db"
	"github.com/vitorsp/perfboard/internal/events"
	"github.com/vitorsp/perfboard/internal/fide"
	"github.com/vitorsp/perfboard/internal/logger"
	"github.com/vitorsp/perfboard/internal/prefs"
	"github.com/vitorsp/perfboard/internal/repository/sqlite"
	"github.com/vitorsp/perfboard/internal/services"
	"github.com/vitorsp/perfboard/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("PerfBoard Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("import_worker_count=%d", cfg.ImportWorkerCount)
	log.Debug("import_queue_size=%d", cfg.ImportQueueSize)
	log.Debug("archive_limit=%d", cfg.ArchiveLimit)
	log.Debug("max_concurrent_archive=%d", cfg.MaxConcurrentArchive)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories
	profileRepo := sqlite.NewProfileRepository(database.DB)
	gameRepo := sqlite.NewGameRepository(database.DB)
	goalRepo := sqlite.NewGoalRepository(database.DB)
	portfolioRepo := sqlite.NewPortfolioRepository(database.DB)

	// Event hub and preference store. Preference writes fan out to
	// connected websocket clients.
	hub := events.NewHub()
	notifier := &prefs.Notifier{}
	notifier.Subscribe(func(c prefs.Change) {
		hub.Publish(events.Event{
			Type: events.TypePreferenceChanged,
			Data: map[string]any{
				"profile_id": c.ProfileID,
				"key":        c.Key,
				"value":      c.Value,
				"removed":    c.Removed,
			},
		})
	})
	prefStore := &prefs.NotifyingStore{
		Store:    sqlite.NewPreferenceStore(database.DB),
		Notifier: notifier,
	}

	// Worker pool for background imports
	importPool := worker.NewPool(cfg.ImportWorkerCount, cfg.ImportQueueSize)

	chessClient := chesscom.New(cfg.ChessComBaseURL)
	fideClient := fide.New(cfg.FIDEBaseURL)

	srv := &api.Server{
		ProfileService: services.NewProfileService(profileRepo, fideClient),
		StatsService:   services.NewStatsService(profileRepo, gameRepo),
		GoalService:    services.NewGoalService(goalRepo, gameRepo),
		ImportService: services.NewImportService(
			gameRepo, profileRepo, chessClient, importPool, hub,
			cfg.ArchiveLimit, cfg.MaxConcurrentArchive,
		),
		PortfolioService: services.NewPortfolioService(portfolioRepo),
		PrefService:      services.NewPreferenceService(prefStore),
		Hub:              hub,
	}

	ctx, cancel := context.WithCancel(context.Background())
	importPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	importPool.Stop()

	log.Debug("closing websocket clients")
	hub.Close()

	log.Info("===========================================")
	log.Info("PerfBoard Server Stopped")
	log.Info("===========================================")
}
