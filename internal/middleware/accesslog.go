// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/propmatch/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which a request is logged
// at warn level.
const DefaultSlowRequestThreshold = time.Second

// AccessLog logs every request at debug level and slow ones at warn. Log
// lines carry the request and correlation IDs, so RequestID must run first.
// A non-positive threshold selects DefaultSlowRequestThreshold.
func AccessLog(threshold time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	if threshold <= 0 {
		threshold = DefaultSlowRequestThreshold
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			msg := "request completed"
			if duration > threshold {
				event = logger.Warn().Dur("threshold", threshold)
				msg = "slow request detected"
			}
			event.
				Str("method", r.Method).
				Str("path", logging.SanitizeValue(r.URL.Path)).
				Str("query", logging.SanitizeValue(r.URL.RawQuery)).
				Int("status", wrapper.statusCode).
				Dur("duration", duration).
				Msg(msg)
		}
	}
}
