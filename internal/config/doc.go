// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

/*
Package config loads and validates Propmatch configuration.

Configuration is layered with koanf: built-in defaults, then an optional YAML
file (CONFIG_PATH, or config.yaml in the working directory, or
/etc/propmatch/config.yaml), then environment variables.

# Sections

  - server: listen address, request and shutdown timeouts, environment
  - api: CORS origins, rate limiting, recommendation cache TTL, swagger UI
  - logging: level, format, caller
  - catalog: listing source (file path or URL), watch and reload settings,
    HTTP timeout and circuit breaker settings for URL sources
  - recommend: engine weights, thresholds, rooms steps and K limits

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 8080), HTTP_TIMEOUT, SHUTDOWN_TIMEOUT
  - ENVIRONMENT: development, staging or production

API:
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CACHE_TTL: recommendation cache TTL, 0 disables (default: 5m)
  - SWAGGER_ENABLED
  - SLOW_REQUEST_THRESHOLD: warn-level access log above this latency (default: 1s)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Catalog:
  - CATALOG_PATH (default: data/properties.json), CATALOG_URL
  - CATALOG_WATCH, CATALOG_RELOAD_INTERVAL, CATALOG_MIN_RELOAD_GAP
  - CATALOG_HTTP_TIMEOUT, CATALOG_BREAKER_FAILURE_THRESHOLD, CATALOG_BREAKER_TIMEOUT

Recommendation engine:
  - RECOMMEND_DEFAULT_K (default: 3), RECOMMEND_MAX_K (default: 50)
  - RECOMMEND_WEIGHT_LOCATION, RECOMMEND_WEIGHT_TYPE, RECOMMEND_WEIGHT_PRICE,
    RECOMMEND_WEIGHT_SIZE, RECOMMEND_WEIGHT_ROOMS

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config
