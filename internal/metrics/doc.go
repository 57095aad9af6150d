// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

/*
Package metrics provides Prometheus metrics for Propmatch.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API:
  - propmatch_api_requests_total{method, endpoint, status_code}
  - propmatch_api_request_duration_seconds{method, endpoint}
  - propmatch_api_active_requests
  - propmatch_api_rate_limit_hits_total{endpoint}

Recommendation engine:
  - propmatch_recommend_duration_seconds{operation}
  - propmatch_recommend_results
  - propmatch_recommend_corpus_size

Catalog:
  - propmatch_catalog_reloads_total{result}: success, error, throttled
  - propmatch_catalog_reload_duration_seconds
  - propmatch_catalog_listings, propmatch_catalog_version
  - propmatch_catalog_last_reload_timestamp_seconds
  - propmatch_catalog_invalid_records_total

Response cache:
  - propmatch_cache_hits_total{namespace}, propmatch_cache_misses_total{namespace}
  - propmatch_cache_entries

Circuit breaker (HTTP catalog source):
  - propmatch_circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - propmatch_circuit_breaker_requests_total{name, result}
  - propmatch_circuit_breaker_consecutive_failures{name}
  - propmatch_circuit_breaker_state_transitions_total{name, from_state, to_state}

# Usage

	start := time.Now()
	results := engine.Recommend(target, k)
	metrics.RecordRecommendation(time.Since(start), len(results))
*/
package metrics
