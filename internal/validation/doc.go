// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Field names in messages come from
// the `query` tag of request structs or the `json` tag of decoded records, so
// clients see "k must be at least 1" rather than a Go field name.
//
// Custom rules:
//   - notblank: string must contain a non-whitespace character
//
// Example usage:
//
//	type RecommendationsRequest struct {
//	    K    int    `query:"k" validate:"min=1,max=50"`
//	    City string `query:"city" validate:"omitempty,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Code == "VALIDATION_ERROR"
//	}
package validation
