package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wgonzales/catalogd/internal/api"
	"github.com/wgonzales/catalogd/internal/catalog"
	"github.com/wgonzales/catalogd/internal/config"
	"github.com/wgonzales/catalogd/internal/metrics"
	"github.com/wgonzales/catalogd/internal/views"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting catalogd", "config", *configPath)

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Ensure required directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		slog.Error("Failed to create directories", "error", err)
		os.Exit(1)
	}

	// Load the catalog once; it is immutable for the process lifetime.
	// A missing file or missing required columns is fatal.
	cache := catalog.NewCache(catalog.Source{
		Kind: cfg.Dataset.Source,
		Path: cfg.Dataset.Path,
		DSN:  cfg.Dataset.DSN,
	})
	cat, err := cache.Get()
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}
	minYear, maxYear := cat.YearBounds()
	slog.Info("Catalog loaded",
		"source", cat.Source,
		"rows", cat.Len(),
		"skipped", cat.Skipped,
		"years", fmt.Sprintf("%d-%d", minYear, maxYear),
	)

	// Open the saved-view store
	viewStore, err := views.Open(cfg.Views.Path)
	if err != nil {
		slog.Error("Failed to open view store", "error", err)
		os.Exit(1)
	}
	defer viewStore.Close()

	// Initialize metrics
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	registry.MustRegister(metrics.NewCatalogCollector(cat))
	metricsServer := metrics.NewServer(cfg.Server.MetricsPort, registry)

	// Initialize API server
	apiServer := api.NewServer(cat, api.Options{
		TopCountries:  cfg.Explore.TopCountries,
		PreviewRows:   cfg.Explore.PreviewRows,
		HistogramBins: cfg.Explore.HistogramBins,
	})
	apiServer.SetViewStore(viewStore)
	apiServer.SetMetrics(m)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: apiServer.Handler(),
	}

	// Start servers in goroutines
	go func() {
		slog.Info("Starting REST API server", "port", cfg.Server.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("REST API server error", "error", err)
		}
	}()

	go func() {
		if err := metricsServer.Start(); err != nil {
			slog.Error("Metrics server error", "error", err)
		}
	}()

	slog.Info("catalogd is ready",
		"api_url", fmt.Sprintf("http://localhost:%d/api", cfg.Server.HTTPPort),
		"metrics_url", fmt.Sprintf("http://localhost:%d/metrics", cfg.Server.MetricsPort),
	)

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	slog.Info("Received signal, shutting down", "signal", sig)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("REST API server shutdown error", "error", err)
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		slog.Error("Metrics server shutdown error", "error", err)
	}

	slog.Info("catalogd stopped")
}
