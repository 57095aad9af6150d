// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package api

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	_ "github.com/tomtom215/propmatch/docs"
)

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig(), testListings(), true)

	rec, body := env.get(t, "/api/v1/nope")
	if rec.Code != http.StatusNotFound || body.Error == nil || body.Error.Code != CodeNotFound {
		t.Errorf("unknown route = %d %+v, want 404 NOT_FOUND", rec.Code, body.Error)
	}

	rec = httptest.NewRecorder()
	env.server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/listings", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /listings = %d, want 405", rec.Code)
	}
	var env405 envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env405); err != nil || env405.Error == nil || env405.Error.Code != CodeMethodNotAllowed {
		t.Errorf("405 body = %s", rec.Body.String())
	}
}

func TestRouter_RequestIDAndSecurityHeaders(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig(), testListings(), true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/facets", nil)
	req.Header.Set("X-Request-ID", "trace-abc")
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "trace-abc" {
		t.Errorf("X-Request-ID = %q, want trace-abc", got)
	}
	var body envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Metadata.RequestID != "trace-abc" {
		t.Errorf("metadata.request_id = %q, want trace-abc", body.Metadata.RequestID)
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "application/json") {
		t.Errorf("Content-Type = %q", got)
	}
}

func TestRouter_ETag(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig(), testListings(), true)

	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/listings/1/recommendations", nil))
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("ETag header missing")
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", got)
	}

	// The second response is served from the cache with fresh metadata but
	// identical data, so the validator must still match.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings/1/recommendations", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Errorf("conditional GET = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 body = %q, want empty", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/listings/1/recommendations?k=1", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("different data with stale ETag = %d, want 200", rec.Code)
	}

	rec, _ = env.get(t, "/api/v1/listings/99")
	if rec.Header().Get("ETag") != "" || rec.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("error response headers ETag=%q Cache-Control=%q", rec.Header().Get("ETag"), rec.Header().Get("Cache-Control"))
	}
}

func TestRouter_Compression(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig(), testListings(), true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read gzip body: %v", err)
	}
	var body envelope
	if err := json.Unmarshal(raw, &body); err != nil || body.Status != "success" {
		t.Errorf("decompressed body = %s (%v)", raw, err)
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.API.RateLimitReqs = 2
	env := newTestEnv(t, cfg, testListings(), true)

	for i := 0; i < 2; i++ {
		if rec, _ := env.get(t, "/api/v1/facets"); rec.Code != http.StatusOK {
			t.Fatalf("request %d = %d, want 200", i, rec.Code)
		}
	}

	rec, body := env.get(t, "/api/v1/facets")
	if rec.Code != http.StatusTooManyRequests || body.Error == nil || body.Error.Code != CodeRateLimited {
		t.Errorf("third request = %d %+v, want 429 RATE_LIMITED", rec.Code, body.Error)
	}

	// Health probes have their own budget.
	if rec, _ := env.get(t, "/api/v1/health/live"); rec.Code != http.StatusOK {
		t.Errorf("health under API limit = %d, want 200", rec.Code)
	}
}

func TestRouter_RateLimitDisabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.API.RateLimitReqs = 1
	cfg.API.RateLimitDisabled = true
	env := newTestEnv(t, cfg, testListings(), true)

	for i := 0; i < 5; i++ {
		if rec, _ := env.get(t, "/api/v1/facets"); rec.Code != http.StatusOK {
			t.Fatalf("request %d = %d, want 200", i, rec.Code)
		}
	}
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig(), testListings(), true)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/listings", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q, want https://example.com", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/facets", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouter_MetricsAndSwagger(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig(), testListings(), true)
	env.get(t, "/api/v1/listings/1/recommendations")

	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/metrics = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "propmatch_api_requests_total") {
		t.Error("/metrics does not expose API request counters")
	}

	rec = httptest.NewRecorder()
	env.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Propmatch API") {
		t.Errorf("/swagger/doc.json = %d %.80s", rec.Code, rec.Body.String())
	}
}

func TestRouter_SwaggerDisabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.API.SwaggerEnabled = false
	env := newTestEnv(t, cfg, testListings(), true)

	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("/swagger/doc.json with swagger disabled = %d, want 404", rec.Code)
	}
}
