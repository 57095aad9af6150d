// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/propmatch/internal/models"
)

// Engine scores listings against a target using statistics computed once
// from its corpus. It is immutable after construction and safe for
// concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	listings []models.Listing
	stats    CorpusStatistics
}

// NewEngine creates an engine over a snapshot of listings.
// A nil cfg selects DefaultConfig. An empty corpus yields ErrEmptyCorpus.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(listings []models.Listing, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	stats, err := BuildStatistics(listings)
	if err != nil {
		return nil, err
	}

	corpus := make([]models.Listing, len(listings))
	copy(corpus, listings)

	e := &Engine{
		config:   cfg.Clone(),
		logger:   logger.With().Str("component", "recommend").Logger(),
		listings: corpus,
		stats:    stats,
	}

	e.logger.Debug().
		Int("listings", stats.Count).
		Float64("price_min", stats.Price.Min).
		Float64("price_max", stats.Price.Max).
		Float64("size_min", stats.Size.Min).
		Float64("size_max", stats.Size.Max).
		Msg("engine built")

	return e, nil
}

// Statistics returns the corpus statistics.
func (e *Engine) Statistics() CorpusStatistics {
	return e.stats
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Len returns the corpus size.
func (e *Engine) Len() int {
	return len(e.listings)
}

// Score compares candidate with target and explains the result.
func (e *Engine) Score(target, candidate *models.Listing) Result {
	sims := e.Similarities(target, candidate)
	score := e.weightedScore(&sims)

	return Result{
		Listing:         *candidate,
		CandidateID:     candidate.ID,
		Score:           score,
		MatchPercentage: toPercent(score),
		Reasons:         deriveReasons(candidate, &sims, &e.config.Thresholds),
		CategoryScores:  categoryScores(&sims),
		Similarities:    sims,
	}
}

// Recommend returns the k corpus listings most similar to target, best first.
// The target is excluded by ID. Ties keep corpus order. k <= 0 yields an
// empty slice; k larger than the pool returns the whole pool.
func (e *Engine) Recommend(target *models.Listing, k int) []Result {
	if k <= 0 {
		return []Result{}
	}

	results := make([]Result, 0, len(e.listings))
	for i := range e.listings {
		candidate := &e.listings[i]
		if candidate.ID == target.ID {
			continue
		}
		results = append(results, e.Score(target, candidate))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}

	e.logger.Debug().
		Int("target_id", target.ID).
		Int("k", k).
		Int("returned", len(results)).
		Msg("recommendations computed")

	return results
}

// RecommendDefault is Recommend with the configured default K.
func (e *Engine) RecommendDefault(target *models.Listing) []Result {
	return e.Recommend(target, e.config.Limits.DefaultK)
}

// MarketStats reports how the target compares with listings sharing its
// city and its property type. Averages are rounded to whole units.
func (e *Engine) MarketStats(target *models.Listing) MarketStats {
	var sameCity, sameType []*models.Listing
	for i := range e.listings {
		l := &e.listings[i]
		if l.City == target.City {
			sameCity = append(sameCity, l)
		}
		if l.Type == target.Type {
			sameType = append(sameType, l)
		}
	}

	stats := MarketStats{
		TotalListings: len(e.listings),
		City: CityStats{
			City:     target.City,
			Count:    len(sameCity),
			Position: PositionNoData,
		},
		Type: TypeStats{
			Type:  target.Type,
			Count: len(sameType),
		},
	}

	if avg, ok := meanPrice(sameCity); ok {
		rounded := math.Round(avg)
		stats.City.AvgPrice = &rounded
		if target.Price > avg {
			stats.City.Position = PositionAbove
		} else {
			stats.City.Position = PositionBelow
		}
	}

	if avg, ok := meanPrice(sameType); ok {
		rounded := math.Round(avg)
		stats.Type.AvgPrice = &rounded
	}

	return stats
}
