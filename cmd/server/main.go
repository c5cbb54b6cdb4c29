// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/trendlens/internal/analytics"
	"github.com/tomtom215/trendlens/internal/api"
	"github.com/tomtom215/trendlens/internal/cache"
	"github.com/tomtom215/trendlens/internal/config"
	"github.com/tomtom215/trendlens/internal/database"
	"github.com/tomtom215/trendlens/internal/logging"
	"github.com/tomtom215/trendlens/internal/supervisor"
	"github.com/tomtom215/trendlens/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const storeProbeInterval = 30 * time.Second

func main() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("db_path", cfg.Database.Path).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("Starting TrendLens API server")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	// An unavailable store is not fatal: the server starts, readiness
	// reports 503 and every query endpoint answers STORE_UNAVAILABLE
	// until trendctl load has built the file and the server is restarted.
	var store analytics.Store
	db, err := database.Open(database.ConfigFrom(cfg))
	if err != nil {
		logging.Warn().Err(err).Msg("Trending store unavailable, serving 503 until it is loaded")
		store = analytics.UnavailableStore(err)
	} else {
		defer func() {
			if err := db.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing database")
			}
		}()
		store = db
	}

	svc := analytics.NewService(store, cache.NewCacher(cache.Config{
		Name:    "analytics",
		Enabled: cfg.Cache.Enabled,
		TTL:     cfg.Cache.TTL,
	}))

	router := api.NewRouter(api.NewHandler(svc, version), &cfg.Security)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewStoreProbeService(store, storeProbeInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, u := range unstopped {
		logging.Warn().Str("service", u.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}
