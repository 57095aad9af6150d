// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

/*
Package api serves the listing catalog and recommendation engine over HTTP.

Routes (all GET, JSON):

	/api/v1/health/live                       liveness probe
	/api/v1/health/ready                      503 until the first catalog load
	/api/v1/listings                          filtered, paginated browsing
	/api/v1/listings/{id}                     one listing
	/api/v1/listings/{id}/recommendations     top-K similar listings
	/api/v1/listings/{id}/market-stats        city and type price context
	/api/v1/facets                            distinct cities and types
	/api/v1/catalog                           snapshot version and statistics
	/metrics                                  Prometheus exposition
	/swagger/*                                Swagger UI (api.swagger_enabled)

Every JSON response uses the models.APIResponse envelope. Errors carry one of
VALIDATION_ERROR, NOT_FOUND, CATALOG_UNAVAILABLE, RATE_LIMITED or
INTERNAL_ERROR. Successful responses carry an ETag computed over the data
payload and honour If-None-Match.

Filters (search, city, type) scope both the candidate pool and the corpus
statistics used for normalization: recommendations for the same target can
differ between filters. The target itself is always looked up in the full
catalog.

Recommendation and market statistics responses are memoised in a TTL cache
keyed by catalog version, target, K and the normalized filter.
*/
package api
