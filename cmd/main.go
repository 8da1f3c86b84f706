package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config2 "github.com/vamshikrishnam1/task-performance/pkg/config"

	"github.com/vamshikrishnam1/task-performance/internal/handler"
	"github.com/vamshikrishnam1/task-performance/internal/repository"
	"github.com/vamshikrishnam1/task-performance/internal/router"
	"github.com/vamshikrishnam1/task-performance/internal/service"

	"github.com/go-playground/validator/v10"
)

// @title Team Performance Report Service API
// @version 1.0
// @description Weekly team performance reports with derived TCR/TPR metrics
func main() {
	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize storage
	var reportRepo service.ReportRepository
	switch cfg.StorageDriver {
	case config2.StorageDriverMemory:
		reportRepo = repository.NewMemoryReportRepository()
		slog.Info("using in-memory report storage")
	default:
		pool, err := config2.MustInitDB(context.Background(), *cfg)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := repository.Migrate(cfg.PostgresDSN()); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		reportRepo = repository.NewReportRepository(pool)
		slog.Info("successfully connected to database")
	}

	// Initialize validator
	validate := validator.New()

	// Initialize services and handlers
	reportService := service.NewReportService(reportRepo)
	reportHandler := handler.NewReportHandler(reportService, validate)
	healthHandler := handler.NewHealthHandler()

	slog.Info("successfully configured services and handlers")

	// Setup router
	r := router.SetupRouter(reportHandler, healthHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
