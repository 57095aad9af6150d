// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/propmatch/internal/metrics"
	"github.com/tomtom215/propmatch/internal/models"
	"github.com/tomtom215/propmatch/internal/recommend"
)

// ErrNotFound is returned when a listing ID is not in the snapshot.
var ErrNotFound = errors.New("listing not found")

// ErrNotLoaded is returned before the first successful reload.
var ErrNotLoaded = errors.New("catalog not loaded")

// Snapshot is an immutable view of the catalog at one version.
// Engine is nil when the catalog is empty.
type Snapshot struct {
	Listings []models.Listing
	Engine   *recommend.Engine
	Version  uint64
	LoadedAt time.Time

	config *recommend.Config
	logger zerolog.Logger
	byID   map[int]int
	cities []string
	types  []string
}

// Len returns the number of listings in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Listings)
}

// Get returns the listing with the given ID.
func (s *Snapshot) Get(id int) (models.Listing, error) {
	idx, ok := s.byID[id]
	if !ok {
		return models.Listing{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return s.Listings[idx], nil
}

// Cities returns the distinct cities in the snapshot, sorted.
func (s *Snapshot) Cities() []string {
	return s.cities
}

// Types returns the distinct property types in the snapshot, sorted.
func (s *Snapshot) Types() []string {
	return s.types
}

// Filter returns the listings matching f in catalog order.
func (s *Snapshot) Filter(f Filter) []models.Listing {
	if f.IsZero() {
		return s.Listings
	}
	return Apply(s.Listings, f)
}

// Scoped returns an engine over the listings matching f. Recommendations and
// market statistics are computed relative to the filtered set, so a filter
// changes corpus statistics as well as the candidate pool. A zero filter
// reuses the snapshot engine. An empty subset returns a nil engine and no error.
func (s *Snapshot) Scoped(f Filter) (*recommend.Engine, error) {
	if f.IsZero() {
		return s.Engine, nil
	}

	subset := Apply(s.Listings, f)
	if len(subset) == 0 {
		return nil, nil
	}

	engine, err := recommend.NewEngine(subset, s.config, s.logger)
	if err != nil {
		return nil, fmt.Errorf("build scoped engine: %w", err)
	}
	metrics.RecordEngineBuild(len(subset))
	return engine, nil
}

// Store publishes catalog snapshots. Readers call Snapshot and never block on
// a reload; Reload builds the next snapshot off to the side and swaps it in
// atomically.
type Store struct {
	source Source
	config *recommend.Config
	logger zerolog.Logger

	current atomic.Pointer[Snapshot]

	reloadMu sync.Mutex
	version  uint64

	hooksMu sync.RWMutex
	hooks   []func(*Snapshot)
}

// NewStore creates a store over source. cfg configures every engine the
// store builds; nil selects recommend.DefaultConfig.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewStore(source Source, cfg *recommend.Config, logger zerolog.Logger) *Store {
	if cfg == nil {
		cfg = recommend.DefaultConfig()
	}
	return &Store{
		source: source,
		config: cfg.Clone(),
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Source returns the underlying listing source.
func (s *Store) Source() Source {
	return s.source
}

// Snapshot returns the current snapshot, or nil before the first load.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Current returns the current snapshot or ErrNotLoaded.
func (s *Store) Current() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}

// Ready reports whether a snapshot has been published.
func (s *Store) Ready() bool {
	return s.current.Load() != nil
}

// OnReload registers fn to run after each successful reload with the new
// snapshot. Hooks run synchronously on the reloading goroutine.
func (s *Store) OnReload(fn func(*Snapshot)) {
	s.hooksMu.Lock()
	s.hooks = append(s.hooks, fn)
	s.hooksMu.Unlock()
}

// Reload loads the source and publishes a new snapshot. On failure the
// previous snapshot stays in place. Concurrent calls are serialized.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	start := time.Now()
	snap, err := s.build(ctx)
	if err != nil {
		var invalid *InvalidRecordsError
		if errors.As(err, &invalid) {
			metrics.RecordInvalidRecords(len(invalid.Records))
		}
		metrics.RecordCatalogReload(time.Since(start), 0, 0, err)
		s.logger.Error().Err(err).Str("source", s.source.String()).Msg("catalog reload failed")
		return nil, err
	}

	s.current.Store(snap)
	metrics.RecordCatalogReload(time.Since(start), snap.Len(), snap.Version, nil)

	s.logger.Info().
		Uint64("version", snap.Version).
		Int("listings", snap.Len()).
		Int("cities", len(snap.cities)).
		Int("types", len(snap.types)).
		Dur("took", time.Since(start)).
		Str("source", s.source.String()).
		Msg("catalog loaded")

	s.hooksMu.RLock()
	hooks := s.hooks
	s.hooksMu.RUnlock()
	for _, fn := range hooks {
		fn(snap)
	}
	return snap, nil
}

// build loads and indexes the next snapshot. Caller holds reloadMu.
func (s *Store) build(ctx context.Context) (*Snapshot, error) {
	listings, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	byID := make(map[int]int, len(listings))
	for i := range listings {
		if first, dup := byID[listings[i].ID]; dup {
			return nil, fmt.Errorf("load catalog: %w", &InvalidRecordsError{Records: []RecordError{{
				Index: i,
				ID:    listings[i].ID,
				Err:   fmt.Errorf("duplicate id, first seen at record %d", first),
			}}})
		}
		byID[listings[i].ID] = i
	}

	snap := &Snapshot{
		Listings: listings,
		Version:  s.version + 1,
		LoadedAt: time.Now().UTC(),
		config:   s.config,
		logger:   s.logger,
		byID:     byID,
		cities:   Cities(listings),
		types:    Types(listings),
	}

	if len(listings) > 0 {
		engine, err := recommend.NewEngine(listings, s.config, s.logger)
		if err != nil {
			return nil, fmt.Errorf("build engine: %w", err)
		}
		snap.Engine = engine
		metrics.RecordEngineBuild(len(listings))
	} else {
		s.logger.Warn().Str("source", s.source.String()).Msg("catalog is empty, no recommendations available")
	}

	s.version = snap.Version
	return snap, nil
}
