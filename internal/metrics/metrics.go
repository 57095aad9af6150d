// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// API Endpoint Metrics
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propmatch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "propmatch_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "propmatch_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propmatch_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// Recommendation Engine Metrics
var (
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "propmatch_recommend_duration_seconds",
			Help:    "Time spent scoring and ranking candidates",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"operation"}, // "recommend", "market_stats"
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "propmatch_recommend_results",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 50},
		},
	)

	RecommendCorpusSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "propmatch_recommend_corpus_size",
			Help:    "Number of listings an engine was built over",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

// Catalog Metrics
var (
	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propmatch_catalog_reloads_total",
			Help: "Total number of catalog reload attempts",
		},
		[]string{"result"}, // "success", "error", "throttled"
	)

	CatalogReloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "propmatch_catalog_reload_duration_seconds",
			Help:    "Duration of catalog reloads in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogListings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "propmatch_catalog_listings",
			Help: "Number of listings in the current catalog snapshot",
		},
	)

	CatalogVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "propmatch_catalog_version",
			Help: "Version of the current catalog snapshot (increments on every successful reload)",
		},
	)

	CatalogLastReload = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "propmatch_catalog_last_reload_timestamp_seconds",
			Help: "Unix time of the last successful catalog reload",
		},
	)

	CatalogInvalidRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "propmatch_catalog_invalid_records_total",
			Help: "Total number of listing records rejected by validation",
		},
	)
)

// Cache Metrics
var (
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propmatch_cache_hits_total",
			Help: "Total number of response cache hits",
		},
		[]string{"namespace"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propmatch_cache_misses_total",
			Help: "Total number of response cache misses",
		},
		[]string{"namespace"},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "propmatch_cache_entries",
			Help: "Current number of cached responses",
		},
	)
)

// Circuit Breaker Metrics
var (
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "propmatch_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propmatch_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "propmatch_circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propmatch_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one ranking pass and the number of results it produced.
func RecordRecommendation(duration time.Duration, results int) {
	RecommendDuration.WithLabelValues("recommend").Observe(duration.Seconds())
	RecommendResults.Observe(float64(results))
}

// RecordMarketStats records one market statistics computation.
func RecordMarketStats(duration time.Duration) {
	RecommendDuration.WithLabelValues("market_stats").Observe(duration.Seconds())
}

// RecordEngineBuild records the size of a freshly built engine.
func RecordEngineBuild(listings int) {
	RecommendCorpusSize.Observe(float64(listings))
}

// RecordCatalogReload records a reload attempt. On success the snapshot
// gauges are updated to the new version and size.
func RecordCatalogReload(duration time.Duration, listings int, version uint64, err error) {
	CatalogReloadDuration.Observe(duration.Seconds())
	if err != nil {
		CatalogReloads.WithLabelValues("error").Inc()
		return
	}
	CatalogReloads.WithLabelValues("success").Inc()
	CatalogListings.Set(float64(listings))
	CatalogVersion.Set(float64(version))
	CatalogLastReload.Set(float64(time.Now().Unix()))
}

// RecordCatalogReloadThrottled records a reload request dropped by the throttle.
func RecordCatalogReloadThrottled() {
	CatalogReloads.WithLabelValues("throttled").Inc()
}

// RecordInvalidRecords adds n rejected listing records.
func RecordInvalidRecords(n int) {
	CatalogInvalidRecords.Add(float64(n))
}

// RecordCacheLookup records a cache hit or miss for the given namespace.
func RecordCacheLookup(namespace string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(namespace).Inc()
	} else {
		CacheMisses.WithLabelValues(namespace).Inc()
	}
}

// UpdateCacheEntries sets the current number of cached responses.
func UpdateCacheEntries(n int) {
	CacheEntries.Set(float64(n))
}
