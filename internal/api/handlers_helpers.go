// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/propmatch/internal/catalog"
	"github.com/tomtom215/propmatch/internal/logging"
	"github.com/tomtom215/propmatch/internal/middleware"
	"github.com/tomtom215/propmatch/internal/models"
	"github.com/tomtom215/propmatch/internal/validation"
)

// respondJSON sends a JSON response with an ETag derived from the payload.
// The ETag ignores metadata (timestamps, timings), so identical data yields
// identical tags and a matching If-None-Match is answered with 304.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	if response.Metadata.RequestID == "" {
		response.Metadata.RequestID = middleware.GetRequestID(r.Context())
	}

	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if status == http.StatusOK {
		if payload, perr := json.Marshal(response.Data); perr == nil {
			etag := generateETag(payload)
			w.Header().Set("ETag", etag)
			w.Header().Set("Cache-Control", "no-cache")
			if etagMatches(r.Header.Get("If-None-Match"), etag) {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a quoted strong ETag from data using FNV-1a.
func generateETag(data []byte) string {
	hash := uint64(14695981039346656037)
	for _, b := range data {
		hash ^= uint64(b)
		hash *= 1099511628211
	}
	return `"` + strconv.FormatUint(hash, 16) + `"`
}

// etagMatches implements the weak comparison used for If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, meta models.Metadata) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now().UTC()
	}
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: meta,
	})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", code).
			Str("path", logging.SanitizeValue(r.URL.Path)).
			Str("error", logging.SanitizeValue(err.Error())).
			Msg("API Error")
	}

	respondAPIError(w, r, status, &models.APIError{Code: code, Message: message})
}

func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError) {
	respondJSON(w, r, status, &models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: apiErr,
	})
}

// respondValidationError sends a 400 with the VALIDATION_ERROR envelope.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	respondAPIError(w, r, http.StatusBadRequest, verr.ToAPIError())
}

// respondCatalogUnavailable answers requests that arrive before the first load.
func respondCatalogUnavailable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "5")
	respondError(w, r, http.StatusServiceUnavailable, CodeCatalogUnavailable,
		"Catalog has not been loaded yet", nil)
}

// validateRequest validates a struct using go-playground/validator.
func validateRequest(v interface{}) *validation.RequestValidationError {
	return validation.ValidateStruct(v)
}

// getIntParam extracts an integer query parameter. A missing parameter yields
// defaultValue; a malformed one yields a validation error naming the key.
func getIntParam(r *http.Request, key string, defaultValue int) (int, *validation.RequestValidationError) {
	if !hasQueryParam(r, key) {
		return defaultValue, nil
	}
	value := strings.TrimSpace(r.URL.Query().Get(key))

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, validation.NewFieldError(key, "int", "", logging.SanitizeValue(value))
	}
	return n, nil
}

// hasQueryParam reports whether key is present with a non-blank value.
func hasQueryParam(r *http.Request, key string) bool {
	return strings.TrimSpace(r.URL.Query().Get(key)) != ""
}

// filterFromQuery reads the search, city and type parameters.
func filterFromQuery(r *http.Request) catalog.Filter {
	q := r.URL.Query()
	return catalog.Filter{
		Search: strings.TrimSpace(q.Get("search")),
		City:   strings.TrimSpace(q.Get("city")),
		Type:   strings.TrimSpace(q.Get("type")),
	}
}
