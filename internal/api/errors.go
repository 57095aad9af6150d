// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package api

import "github.com/tomtom215/propmatch/internal/validation"

// API error codes carried in models.APIError.Code.
const (
	CodeValidationError    = validation.CodeValidationError
	CodeNotFound           = "NOT_FOUND"
	CodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeRateLimited        = "RATE_LIMITED"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
)
