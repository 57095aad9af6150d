// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/propmatch/docs" // registers the swagger spec
	"github.com/tomtom215/propmatch/internal/api"
	"github.com/tomtom215/propmatch/internal/catalog"
	"github.com/tomtom215/propmatch/internal/config"
	"github.com/tomtom215/propmatch/internal/logging"
	"github.com/tomtom215/propmatch/internal/supervisor"
	"github.com/tomtom215/propmatch/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("catalog_path", cfg.Catalog.Path).
		Bool("catalog_url", cfg.Catalog.UsesURL()).
		Int("default_k", cfg.Recommend.Limits.DefaultK).
		Int("max_k", cfg.Recommend.Limits.MaxK).
		Msg("Starting Propmatch")

	source, watchPath := newSource(cfg)
	store := catalog.NewStore(source, &cfg.Recommend, logging.Logger())

	respCache := api.NewResponseCache(&cfg.API)
	if respCache != nil {
		defer respCache.Close()
	} else {
		logging.Info().Msg("Response cache disabled (CACHE_TTL=0)")
	}

	handler := api.NewHandler(store, cfg, respCache)
	store.OnReload(func(*catalog.Snapshot) { handler.ClearCache() })

	if cfg.API.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           api.NewRouter(handler, cfg).SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddCatalogService(services.NewCatalogService(store, services.CatalogServiceConfig{
		WatchPath:      watchPath,
		ReloadInterval: cfg.Catalog.ReloadInterval,
		MinReloadGap:   cfg.Catalog.MinReloadGap,
	}, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))

	watchLogLevel()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)
	logging.Info().Str("addr", server.Addr).Msg("Supervisor tree started")

	err = <-errCh
	if report, rerr := tree.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within shutdown timeout")
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
		os.Exit(1)
	}
	logging.Info().Msg("Propmatch stopped")
}

// newSource picks the catalog source. A URL wins over a path; only file
// sources are watched.
func newSource(cfg *config.Config) (catalog.Source, string) {
	if cfg.Catalog.UsesURL() {
		return catalog.NewHTTPSource(catalog.HTTPSourceConfig{
			URL:              cfg.Catalog.URL,
			Timeout:          cfg.Catalog.HTTPTimeout,
			FailureThreshold: cfg.Catalog.BreakerFailureThreshold,
			OpenTimeout:      cfg.Catalog.BreakerTimeout,
		}, logging.Logger()), ""
	}

	watchPath := ""
	if cfg.Catalog.Watch {
		watchPath = cfg.Catalog.Path
	}
	return catalog.NewFileSource(cfg.Catalog.Path), watchPath
}

// watchLogLevel applies logging.level from the config file without a restart.
// Other settings need a restart to take effect.
func watchLogLevel() {
	path := config.FindConfigFile()
	if path == "" {
		return
	}

	err := config.WatchConfigFile(path, func() {
		next, err := config.LoadFile(path)
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Ignoring invalid config file change")
			return
		}
		logging.SetLevelString(next.Logging.Level)
		logging.Info().Str("level", next.Logging.Level).Msg("Config file changed, log level applied")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch unavailable")
	}
}
