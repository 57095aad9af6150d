// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

/*
Package models defines the data structures shared across Propmatch packages.

Key Components:

  - Listing: a catalog entry as used by the recommendation engine and the API
  - RawListing: the on-disk record shape, mapped to Listing by ToListing
  - APIResponse, Metadata, APIError: the HTTP response envelope
  - PaginationInfo, Facets, HealthStatus: API payload helpers

All types are plain data with JSON tags. They carry no behavior beyond simple
mapping, so every other package can depend on models without cycles.
*/
package models
