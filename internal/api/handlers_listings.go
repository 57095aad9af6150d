// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/propmatch/internal/catalog"
	"github.com/tomtom215/propmatch/internal/logging"
	"github.com/tomtom215/propmatch/internal/models"
	"github.com/tomtom215/propmatch/internal/recommend"
	"github.com/tomtom215/propmatch/internal/validation"
)

// CatalogInfo describes the published catalog snapshot.
type CatalogInfo struct {
	Version    uint64                      `json:"version"`
	Listings   int                         `json:"listings"`
	Cities     int                         `json:"cities"`
	Types      int                         `json:"types"`
	LoadedAt   time.Time                   `json:"loaded_at"`
	Source     string                      `json:"source"`
	Statistics *recommend.CorpusStatistics `json:"statistics"` // nil for an empty catalog
	Cache      *CacheInfo                  `json:"cache,omitempty"`
}

// CacheInfo reports response cache occupancy and effectiveness.
type CacheInfo struct {
	Entries    int     `json:"entries"`
	MaxEntries int     `json:"max_entries"`
	Hits       int64   `json:"hits"`
	Misses     int64   `json:"misses"`
	Evictions  int64   `json:"evictions"`
	HitRate    float64 `json:"hit_rate_percent"`
}

// Listings handles GET /api/v1/listings
//
// @Summary Browse listings
// @Description Filtered, paginated listings in catalog order. search matches title or city case-insensitively; city and type match exactly, "all" disables them.
// @Tags Listings
// @Produce json
// @Param search query string false "Substring of title or city"
// @Param city query string false "Exact city or all"
// @Param type query string false "Exact property type or all"
// @Param page query int false "Page number (1-100)" default(1)
// @Param page_size query int false "Items per page (1-100)" default(10)
// @Success 200 {object} models.APIResponse{data=[]models.Listing}
// @Failure 400 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /listings [get]
func (h *Handler) Listings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	page, verr := getIntParam(r, "page", catalog.MinPage)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	size, verr := getIntParam(r, "page_size", catalog.DefaultPageSize)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	f := filterFromQuery(r)
	req := ListingsRequest{
		FilterParams: FilterParams{Search: f.Search, City: f.City, Type: f.Type},
		Page:         page,
		PageSize:     size,
	}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	p := catalog.Paginate(snap.Filter(f), req.Page, req.PageSize)
	respondSuccess(w, r, p.Items, models.Metadata{
		QueryTimeMS:    time.Since(start).Milliseconds(),
		CatalogVersion: snap.Version,
		Pagination:     p.Info(),
	})
}

// Listing handles GET /api/v1/listings/{id}
//
// @Summary Get a listing
// @Tags Listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} models.APIResponse{data=models.Listing}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /listings/{id} [get]
func (h *Handler) Listing(w http.ResponseWriter, r *http.Request) {
	id, verr := listingIDParam(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	listing, ok := h.lookup(w, r, snap, id)
	if !ok {
		return
	}
	respondSuccess(w, r, listing, models.Metadata{CatalogVersion: snap.Version})
}

// Facets handles GET /api/v1/facets
//
// @Summary Filter values
// @Description Distinct cities and property types in the catalog, sorted
// @Tags Listings
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.Facets}
// @Router /facets [get]
func (h *Handler) Facets(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	respondSuccess(w, r, models.Facets{
		Cities: snap.Cities(),
		Types:  snap.Types(),
	}, models.Metadata{CatalogVersion: snap.Version})
}

// Catalog handles GET /api/v1/catalog
//
// @Summary Catalog snapshot info
// @Description Version, size, load time and corpus statistics of the active snapshot, plus response cache counters
// @Tags Listings
// @Produce json
// @Success 200 {object} models.APIResponse{data=CatalogInfo}
// @Router /catalog [get]
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	info := CatalogInfo{
		Version:  snap.Version,
		Listings: snap.Len(),
		Cities:   len(snap.Cities()),
		Types:    len(snap.Types()),
		LoadedAt: snap.LoadedAt,
		Source:   h.store.Source().String(),
		Cache:    h.cacheInfo(),
	}
	if snap.Engine != nil {
		stats := snap.Engine.Statistics()
		info.Statistics = &stats
	}
	respondSuccess(w, r, info, models.Metadata{CatalogVersion: snap.Version})
}

// snapshot returns the current snapshot or answers 503.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) (*catalog.Snapshot, bool) {
	snap, err := h.store.Current()
	if err != nil {
		respondCatalogUnavailable(w, r)
		return nil, false
	}
	return snap, true
}

// lookup finds id in snap or answers 404.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request, snap *catalog.Snapshot, id int) (models.Listing, bool) {
	listing, err := snap.Get(id)
	if errors.Is(err, catalog.ErrNotFound) {
		logging.Ctx(r.Context()).Debug().Int("listing_id", id).Msg("Listing not found")
		respondError(w, r, http.StatusNotFound, CodeNotFound, "Listing "+strconv.Itoa(id)+" not found", nil)
		return models.Listing{}, false
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, CodeInternalError, "Failed to look up listing", err)
		return models.Listing{}, false
	}
	return listing, true
}

// listingIDParam parses and validates the {id} path parameter.
func listingIDParam(r *http.Request) (int, *validation.RequestValidationError) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.NewFieldError("id", "int", "", logging.SanitizeValue(raw))
	}
	req := ListingIDRequest{ID: id}
	if verr := validateRequest(&req); verr != nil {
		return 0, verr
	}
	return id, nil
}
