// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEtagMatches(t *testing.T) {
	t.Parallel()

	etag := generateETag([]byte(`{"a":1}`))
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{etag, true},
		{"W/" + etag, true},
		{`"other", ` + etag, true},
		{"*", true},
		{`"other"`, false},
	}
	for _, tt := range tests {
		if got := etagMatches(tt.header, etag); got != tt.want {
			t.Errorf("etagMatches(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}

	if generateETag([]byte("a")) == generateETag([]byte("b")) {
		t.Error("different payloads produced the same ETag")
	}
}

func TestGetIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 7, false},
		{"?n=3", 3, false},
		{"?n=%20", 7, false},
		{"?n=-2", -2, false},
		{"?n=x", 0, true},
		{"?n=1.5", 0, true},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
		got, verr := getIntParam(r, "n", 7)
		if (verr != nil) != tt.wantErr {
			t.Errorf("getIntParam(%q) error = %v, wantErr %v", tt.query, verr, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("getIntParam(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestFilterFromQuery(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/?search=%20casa%20&city=Rosario&type=all", nil)
	f := filterFromQuery(r)
	if f.Search != "casa" || f.City != "Rosario" || f.Type != "all" {
		t.Errorf("filterFromQuery() = %+v", f)
	}
}
