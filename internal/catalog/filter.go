// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package catalog

import (
	"sort"
	"strings"

	"github.com/tomtom215/propmatch/internal/models"
)

// AllValues is the City/Type value that disables that filter.
const AllValues = "all"

// Filter narrows the catalog. Search matches title or city case-insensitively;
// City and Type match exactly unless empty or AllValues.
type Filter struct {
	Search string `json:"search,omitempty"`
	City   string `json:"city,omitempty"`
	Type   string `json:"type,omitempty"`
}

// Clear resets the filter to match everything.
func (f *Filter) Clear() {
	f.Search = ""
	f.City = AllValues
	f.Type = AllValues
}

// IsZero reports whether the filter matches every listing.
func (f *Filter) IsZero() bool {
	return f.Search == "" && isAll(f.City) && isAll(f.Type)
}

// Normalize returns a copy with "all" mapped to empty so equivalent filters
// compare and hash equal.
func (f *Filter) Normalize() Filter {
	n := *f
	if isAll(n.City) {
		n.City = ""
	}
	if isAll(n.Type) {
		n.Type = ""
	}
	return n
}

// Matches reports whether l passes the filter.
func (f *Filter) Matches(l *models.Listing) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(l.Title), term) &&
			!strings.Contains(strings.ToLower(l.City), term) {
			return false
		}
	}
	if !isAll(f.City) && l.City != f.City {
		return false
	}
	if !isAll(f.Type) && l.Type != f.Type {
		return false
	}
	return true
}

// Apply returns the listings that pass f, preserving input order.
// A zero filter returns a copy of the input.
func Apply(listings []models.Listing, f Filter) []models.Listing {
	out := make([]models.Listing, 0, len(listings))
	for i := range listings {
		if f.Matches(&listings[i]) {
			out = append(out, listings[i])
		}
	}
	return out
}

// Cities returns the distinct cities in listings, sorted.
func Cities(listings []models.Listing) []string {
	return distinct(listings, func(l *models.Listing) string { return l.City })
}

// Types returns the distinct property types in listings, sorted.
func Types(listings []models.Listing) []string {
	return distinct(listings, func(l *models.Listing) string { return l.Type })
}

func distinct(listings []models.Listing, field func(*models.Listing) string) []string {
	set := make(map[string]struct{})
	for i := range listings {
		set[field(&listings[i])] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func isAll(v string) bool {
	return v == "" || v == AllValues
}
