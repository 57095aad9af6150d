// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/propmatch/internal/catalog"
	"github.com/tomtom215/propmatch/internal/logging"
	"github.com/tomtom215/propmatch/internal/metrics"
	"github.com/tomtom215/propmatch/internal/models"
	"github.com/tomtom215/propmatch/internal/recommend"
	"github.com/tomtom215/propmatch/internal/validation"
)

// RecommendationsResponse is the payload of the recommendations endpoint.
type RecommendationsResponse struct {
	TargetID        int                `json:"target_id"`
	K               int                `json:"k"`
	Filter          catalog.Filter     `json:"filter"`
	CorpusSize      int                `json:"corpus_size"`
	Count           int                `json:"count"`
	Recommendations []recommend.Result `json:"recommendations"`
}

// MarketStatsResponse is the payload of the market statistics endpoint.
type MarketStatsResponse struct {
	TargetID int                   `json:"target_id"`
	Filter   catalog.Filter        `json:"filter"`
	Stats    recommend.MarketStats `json:"stats"`
}

// resultKey identifies a memoised response. Version pins it to one snapshot.
type resultKey struct {
	Version uint64         `json:"v"`
	ID      int            `json:"id"`
	K       int            `json:"k,omitempty"`
	Filter  catalog.Filter `json:"f"`
}

// Recommendations handles GET /api/v1/listings/{id}/recommendations
//
// @Summary Similar listings
// @Description Top-K listings most similar to the target, scored against the filtered set. The target is looked up in the full catalog and never recommended to itself.
// @Tags Recommendations
// @Produce json
// @Param id path int true "Target listing ID"
// @Param k query int false "Number of recommendations (1..max_k)"
// @Param search query string false "Substring of title or city"
// @Param city query string false "Exact city or all"
// @Param type query string false "Exact property type or all"
// @Success 200 {object} models.APIResponse{data=RecommendationsResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /listings/{id}/recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limits := h.recommendConfig().Limits

	id, verr := listingIDParam(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	f := filterFromQuery(r)
	req := RecommendRequest{
		FilterParams: FilterParams{Search: f.Search, City: f.City, Type: f.Type},
		ID:           id,
	}
	if hasQueryParam(r, "k") {
		k, verr := getIntParam(r, "k", 0)
		if verr != nil {
			respondValidationError(w, r, verr)
			return
		}
		req.K = &k
	}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	k := limits.DefaultK
	if req.K != nil {
		if *req.K > limits.MaxK {
			respondValidationError(w, r, validation.NewFieldError("k", "max", strconv.Itoa(limits.MaxK), *req.K))
			return
		}
		k = *req.K
	}

	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	target, ok := h.lookup(w, r, snap, id)
	if !ok {
		return
	}

	f = f.Normalize()
	key := resultKey{Version: snap.Version, ID: id, K: k, Filter: f}
	value, hit, err := h.cached(cacheNSRecommend, key, func() (interface{}, error) {
		engine, err := snap.Scoped(f)
		if err != nil {
			return nil, err
		}

		resp := &RecommendationsResponse{
			TargetID:        id,
			K:               k,
			Filter:          f,
			Recommendations: []recommend.Result{},
		}
		if engine == nil {
			return resp, nil
		}

		rankStart := time.Now()
		if req.K == nil {
			resp.Recommendations = engine.RecommendDefault(&target)
		} else {
			resp.Recommendations = engine.Recommend(&target, k)
		}
		metrics.RecordRecommendation(time.Since(rankStart), len(resp.Recommendations))
		resp.CorpusSize = engine.Len()
		resp.Count = len(resp.Recommendations)
		return resp, nil
	})
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, CodeInternalError, "Failed to compute recommendations", err)
		return
	}

	resp := value.(*RecommendationsResponse)
	logging.Ctx(r.Context()).Debug().
		Int("listing_id", id).
		Int("k", k).
		Int("returned", resp.Count).
		Bool("cached", hit).
		Msg("Recommendations served")

	respondSuccess(w, r, resp, models.Metadata{
		QueryTimeMS:    time.Since(start).Milliseconds(),
		Cached:         hit,
		CatalogVersion: snap.Version,
	})
}

// MarketStats handles GET /api/v1/listings/{id}/market-stats
//
// @Summary Market context for a listing
// @Description Listing counts and rounded average prices for the target's city and property type within the filtered set, and whether the target is priced above or below its city average.
// @Tags Recommendations
// @Produce json
// @Param id path int true "Target listing ID"
// @Param search query string false "Substring of title or city"
// @Param city query string false "Exact city or all"
// @Param type query string false "Exact property type or all"
// @Success 200 {object} models.APIResponse{data=MarketStatsResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /listings/{id}/market-stats [get]
func (h *Handler) MarketStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, verr := listingIDParam(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	f := filterFromQuery(r)
	req := MarketStatsRequest{
		FilterParams: FilterParams{Search: f.Search, City: f.City, Type: f.Type},
		ID:           id,
	}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	target, ok := h.lookup(w, r, snap, id)
	if !ok {
		return
	}

	f = f.Normalize()
	key := resultKey{Version: snap.Version, ID: id, Filter: f}
	value, hit, err := h.cached(cacheNSMarketStats, key, func() (interface{}, error) {
		engine, err := snap.Scoped(f)
		if err != nil {
			return nil, err
		}

		resp := &MarketStatsResponse{TargetID: id, Filter: f}
		if engine == nil {
			resp.Stats = emptyMarketStats(&target)
			return resp, nil
		}

		statsStart := time.Now()
		resp.Stats = engine.MarketStats(&target)
		metrics.RecordMarketStats(time.Since(statsStart))
		return resp, nil
	})
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, CodeInternalError, "Failed to compute market statistics", err)
		return
	}

	respondSuccess(w, r, value, models.Metadata{
		QueryTimeMS:    time.Since(start).Milliseconds(),
		Cached:         hit,
		CatalogVersion: snap.Version,
	})
}

// emptyMarketStats is the answer for a filter that matches nothing.
func emptyMarketStats(target *models.Listing) recommend.MarketStats {
	return recommend.MarketStats{
		City: recommend.CityStats{City: target.City, Position: recommend.PositionNoData},
		Type: recommend.TypeStats{Type: target.Type},
	}
}
