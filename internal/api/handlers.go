// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package api

import (
	"time"

	"github.com/tomtom215/propmatch/internal/cache"
	"github.com/tomtom215/propmatch/internal/catalog"
	"github.com/tomtom215/propmatch/internal/config"
	"github.com/tomtom215/propmatch/internal/logging"
	"github.com/tomtom215/propmatch/internal/metrics"
	"github.com/tomtom215/propmatch/internal/recommend"
)

// Cache namespaces, also used as the metrics label.
const (
	cacheNSRecommend   = "recommendations"
	cacheNSMarketStats = "market_stats"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, cache plumbing (this file)
//   - handlers_helpers.go: response envelope and query parsing
//   - handlers_health.go: liveness and readiness probes
//   - handlers_listings.go: catalog browsing endpoints
//   - handlers_recommend.go: recommendations and market statistics
type Handler struct {
	store     *catalog.Store
	config    *config.Config
	cache     *cache.Cache // nil when API.CacheTTL is zero
	startTime time.Time
}

// NewResponseCache builds the recommendation response cache described by cfg,
// bounded to CacheMaxEntries. It returns nil when CacheTTL is zero. The caller
// closes the returned cache.
func NewResponseCache(cfg *config.APIConfig) *cache.Cache {
	if cfg.CacheTTL <= 0 {
		return nil
	}
	return cache.New(cfg.CacheTTL, cache.DefaultCleanupInterval, cache.WithCapacity(cfg.CacheMaxEntries))
}

// NewHandler creates a handler over store. c may be nil to disable response
// caching; the caller owns c and closes it on shutdown.
//
// Example:
//
//	store := catalog.NewStore(source, &cfg.Recommend, logger)
//	c := api.NewResponseCache(&cfg.API)
//	handler := api.NewHandler(store, cfg, c)
//	store.OnReload(func(*catalog.Snapshot) { handler.ClearCache() })
func NewHandler(store *catalog.Store, cfg *config.Config, c *cache.Cache) *Handler {
	return &Handler{
		store:     store,
		config:    cfg,
		cache:     c,
		startTime: time.Now(),
	}
}

// ClearCache drops every memoised response. Keys already embed the catalog
// version, so this only releases memory held for superseded snapshots.
func (h *Handler) ClearCache() {
	if h.cache == nil {
		return
	}
	h.cache.Clear()
	metrics.UpdateCacheEntries(0)
	logging.Debug().Msg("Response cache cleared")
}

// cacheInfo summarises the response cache, or nil when caching is disabled.
func (h *Handler) cacheInfo() *CacheInfo {
	if h.cache == nil {
		return nil
	}
	stats := h.cache.GetStats()
	info := &CacheInfo{
		Entries:   h.cache.Len(),
		Hits:      stats.Hits,
		Misses:    stats.Misses,
		Evictions: stats.Evictions,
		HitRate:   h.cache.HitRate(),
	}
	if h.config != nil {
		info.MaxEntries = h.config.API.CacheMaxEntries
	}
	return info
}

// recommendConfig returns the engine limits in effect.
func (h *Handler) recommendConfig() *recommend.Config {
	if h.config == nil {
		return recommend.DefaultConfig()
	}
	return &h.config.Recommend
}

// cached returns a memoised value for key, or computes, stores and returns it.
func (h *Handler) cached(namespace string, params interface{}, compute func() (interface{}, error)) (value interface{}, hit bool, err error) {
	if h.cache == nil {
		value, err = compute()
		return value, false, err
	}

	key := cache.GenerateKey(namespace, params)
	if v, ok := h.cache.Get(key); ok {
		metrics.RecordCacheLookup(namespace, true)
		return v, true, nil
	}
	metrics.RecordCacheLookup(namespace, false)

	value, err = compute()
	if err != nil {
		return nil, false, err
	}
	h.cache.Set(key, value)
	metrics.UpdateCacheEntries(h.cache.Len())
	return value, false, nil
}
