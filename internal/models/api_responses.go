// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"target_id": 1, "results": [...]},
//	  "metadata": {
//	    "timestamp": "2026-03-02T12:00:00Z",
//	    "query_time_ms": 2,
//	    "request_id": "5f0c..."
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "k must be at least 1",
//	    "details": {"field": "k"}
//	  },
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and cache tracking.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Handler execution time in milliseconds
//   - Cached: Whether response was served from the recommendation cache
//   - RequestID: Correlates the response with server logs
//   - CatalogVersion: Catalog snapshot the response was computed from
//   - Pagination: Page information for list endpoints
type Metadata struct {
	Timestamp      time.Time       `json:"timestamp"`
	QueryTimeMS    int64           `json:"query_time_ms,omitempty"`
	Cached         bool            `json:"cached,omitempty"`
	RequestID      string          `json:"request_id,omitempty"`
	CatalogVersion uint64          `json:"catalog_version,omitempty"`
	Pagination     *PaginationInfo `json:"pagination,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid query parameters
//   - NOT_FOUND: Listing does not exist
//   - CATALOG_UNAVAILABLE: No catalog has been loaded yet
//   - INTERNAL_ERROR: Unexpected server failure
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PaginationInfo contains page-based pagination metadata.
// Pages are 1-based; TotalPages is zero for an empty result set.
type PaginationInfo struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

// Facets lists the distinct filter values present in the catalog.
type Facets struct {
	Cities []string `json:"cities"`
	Types  []string `json:"types"`
}

// HealthStatus is returned by the liveness and readiness probes.
type HealthStatus struct {
	Status         string     `json:"status"`
	CatalogLoaded  bool       `json:"catalog_loaded"`
	CatalogVersion uint64     `json:"catalog_version"`
	Listings       int        `json:"listings"`
	Uptime         float64    `json:"uptime_seconds"`
	LoadedAt       *time.Time `json:"loaded_at,omitempty"`
	CatalogSource  string     `json:"catalog_source,omitempty"`
	BreakerState   string     `json:"breaker_state,omitempty"` // remote sources only
}
