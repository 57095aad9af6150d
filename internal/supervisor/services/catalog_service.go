// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/propmatch/internal/catalog"
	"github.com/tomtom215/propmatch/internal/metrics"
)

// CatalogReloader is the part of *catalog.Store the service drives.
type CatalogReloader interface {
	Reload(ctx context.Context) (*catalog.Snapshot, error)
	Ready() bool
}

// CatalogServiceConfig controls when the catalog is reloaded.
type CatalogServiceConfig struct {
	// WatchPath is a catalog file to watch for changes. Empty disables the
	// watch; HTTP sources never set it.
	WatchPath string

	// ReloadInterval triggers a periodic reload. Zero disables it.
	ReloadInterval time.Duration

	// MinReloadGap is the minimum spacing between reloads. Requests inside
	// the gap are coalesced into one deferred reload.
	MinReloadGap time.Duration

	// Debounce waits for a burst of file events to settle.
	// Default: 250ms
	Debounce time.Duration

	// ReloadTimeout bounds a single reload.
	// Default: 30s
	ReloadTimeout time.Duration
}

const (
	defaultDebounce      = 250 * time.Millisecond
	defaultReloadTimeout = 30 * time.Second
)

// CatalogService loads the catalog on start and keeps it fresh.
//
// A failed first load is returned as an error so suture retries it with
// backoff. Once a snapshot is published, later failures are logged and the
// previous snapshot keeps serving.
type CatalogService struct {
	store   CatalogReloader
	config  CatalogServiceConfig
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewCatalogService creates the reload service for store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCatalogService(store CatalogReloader, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogService {
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	if cfg.ReloadTimeout <= 0 {
		cfg.ReloadTimeout = defaultReloadTimeout
	}

	limit := rate.Inf
	if cfg.MinReloadGap > 0 {
		limit = rate.Every(cfg.MinReloadGap)
	}

	return &CatalogService{
		store:   store,
		config:  cfg,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger.With().Str("service", "catalog").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CatalogService) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("watch", s.config.WatchPath).
		Dur("reload_interval", s.config.ReloadInterval).
		Dur("min_reload_gap", s.config.MinReloadGap).
		Msg("catalog service starting")

	// The first load of every run takes the limiter token so a file event
	// racing the start does not trigger a second immediate reload.
	s.limiter.Allow()
	if err := s.reload(ctx, "startup"); err != nil && !s.store.Ready() {
		return fmt.Errorf("initial catalog load: %w", err)
	}

	var events <-chan fsnotify.Event
	var watchErrs <-chan error
	if s.config.WatchPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create file watcher: %w", err)
		}
		defer func() { _ = watcher.Close() }()

		// Watch the directory: editors and deploy tools replace the file by
		// rename, which drops a watch on the file itself.
		if err := watcher.Add(filepath.Dir(s.config.WatchPath)); err != nil {
			return fmt.Errorf("watch %s: %w", s.config.WatchPath, err)
		}
		events, watchErrs = watcher.Events, watcher.Errors
	}

	var tick <-chan time.Time
	if s.config.ReloadInterval > 0 {
		ticker := time.NewTicker(s.config.ReloadInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	var debounce, deferred <-chan time.Time

	request := func(reason string) {
		if s.limiter.Allow() {
			_ = s.reload(ctx, reason)
			return
		}
		metrics.RecordCatalogReloadThrottled()
		if deferred == nil {
			delay := s.limiter.Reserve().Delay()
			s.logger.Debug().Str("reason", reason).Dur("delay", delay).Msg("catalog reload deferred")
			deferred = time.After(delay)
		}
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog service shutting down")
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return errors.New("file watcher closed")
			}
			if !s.isCatalogEvent(ev) {
				continue
			}
			s.logger.Debug().Str("op", ev.Op.String()).Str("file", ev.Name).Msg("catalog file changed")
			debounce = time.After(s.config.Debounce)

		case err, ok := <-watchErrs:
			if !ok {
				return errors.New("file watcher closed")
			}
			s.logger.Warn().Err(err).Msg("file watcher error")

		case <-debounce:
			debounce = nil
			request("file_change")

		case <-tick:
			request("interval")

		case <-deferred:
			// The reservation made when deferring already holds the token.
			deferred = nil
			_ = s.reload(ctx, "deferred")
		}
	}
}

// isCatalogEvent reports whether ev changes the watched file's content.
func (s *CatalogService) isCatalogEvent(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(s.config.WatchPath) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// reload runs one bounded reload. The store logs and records the outcome.
func (s *CatalogService) reload(ctx context.Context, reason string) error {
	reloadCtx, cancel := context.WithTimeout(ctx, s.config.ReloadTimeout)
	defer cancel()

	snap, err := s.store.Reload(reloadCtx)
	if err != nil {
		s.logger.Warn().Err(err).Str("reason", reason).Msg("catalog reload failed, keeping previous snapshot")
		return err
	}
	s.logger.Debug().Str("reason", reason).Uint64("version", snap.Version).Msg("catalog reloaded")
	return nil
}

func (s *CatalogService) String() string {
	return "catalog-service"
}
