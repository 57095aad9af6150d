// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

/*
Package main is the entry point for the Propmatch server.

Propmatch serves content-based recommendations over a catalog of real estate
listings: for a target listing it ranks the most similar listings by city,
property type, price, size and bedrooms, explains each match, and reports
market averages for the target's city and type.

# Startup

	config.Load          koanf: defaults, config.yaml, environment
	logging.Init         zerolog, json or console
	catalog source       HTTPSource when CATALOG_URL is set, else FileSource
	catalog.Store        atomic snapshots, one engine per snapshot
	api.Handler/Router   chi, CORS, httprate, Prometheus, swagger
	supervisor tree      catalog-layer and api-layer under suture

The HTTP server starts immediately; /api/v1/health/ready answers 503 until the
catalog service publishes the first snapshot.

# Configuration

Common environment variables:

	HTTP_PORT=8080
	LOG_LEVEL=info
	LOG_FORMAT=json
	CATALOG_PATH=data/properties.json
	CATALOG_URL=https://example.com/properties.json
	CATALOG_WATCH=true
	CATALOG_RELOAD_INTERVAL=0
	RECOMMEND_DEFAULT_K=3
	RECOMMEND_MAX_K=50
	CACHE_TTL=5m

See package config for the full list. Changing logging.level in the config
file applies without a restart.

# Signals

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to SHUTDOWN_TIMEOUT.
*/
package main
