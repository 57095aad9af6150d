// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package api

// Request structs carry go-playground/validator tags. The query tag names the
// parameter in validation messages.
//
//	req := ListingsRequest{Page: page, PageSize: size, Search: f.Search}
//	if verr := validateRequest(&req); verr != nil {
//	    respondValidationError(w, r, verr)
//	    return
//	}

// FilterParams are the catalog filter query parameters shared by several endpoints.
type FilterParams struct {
	Search string `query:"search" validate:"max=100"`
	City   string `query:"city" validate:"max=100"`
	Type   string `query:"type" validate:"max=100"`
}

// ListingsRequest is the validated query for GET /listings.
type ListingsRequest struct {
	FilterParams
	Page     int `query:"page" validate:"min=1,max=100"`
	PageSize int `query:"page_size" validate:"min=1,max=100"`
}

// ListingIDRequest is the validated {id} path parameter.
type ListingIDRequest struct {
	ID int `query:"id" validate:"gte=1"`
}

// RecommendRequest is the validated query for GET /listings/{id}/recommendations.
// K is nil when the query omits it and the engine default applies. The upper
// bound on K comes from configuration and is checked by the handler.
type RecommendRequest struct {
	FilterParams
	ID int  `query:"id" validate:"gte=1"`
	K  *int `query:"k" validate:"omitempty,min=1"`
}

// MarketStatsRequest is the validated query for GET /listings/{id}/market-stats.
type MarketStatsRequest struct {
	FilterParams
	ID int `query:"id" validate:"gte=1"`
}
