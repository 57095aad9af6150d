// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

/*
Package middleware provides HTTP middleware shared by every API route.

All middleware here uses the func(http.HandlerFunc) http.HandlerFunc shape and
is adapted to chi's r.Use by the api package.

Key Components:

  - RequestID: X-Request-ID propagation plus request/correlation IDs for logging.Ctx
  - AccessLog: debug line per request, warn line above a latency threshold
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    chi route pattern
  - Compression: pooled gzip writers for clients that accept it

Typical stack:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog(cfg.API.SlowRequestThreshold)))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))

RequestID must run before AccessLog so log lines carry the IDs.
*/
package middleware
