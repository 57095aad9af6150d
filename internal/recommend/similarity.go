// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package recommend

import (
	"math"

	"github.com/tomtom215/propmatch/internal/models"
)

// LocationSimilarity is 1 when both listings are in the same city
// (case-sensitive), otherwise 0.
func LocationSimilarity(target, candidate *models.Listing) float64 {
	if target.City == candidate.City {
		return 1
	}
	return 0
}

// TypeSimilarity is 1 when both listings share the property type, otherwise 0.
func TypeSimilarity(target, candidate *models.Listing) float64 {
	if target.Type == candidate.Type {
		return 1
	}
	return 0
}

// PriceSimilarity compares prices normalized by the corpus price range.
// Candidates within the bonus window of the target's price get a flat bonus,
// so the result is not symmetric in target and candidate.
func (e *Engine) PriceSimilarity(target, candidate *models.Listing) float64 {
	spread := e.stats.Price.Range()
	if spread == 0 {
		return 1
	}

	diff := math.Abs(target.Price - candidate.Price)
	base := math.Max(0, 1-diff/spread)

	if diff <= target.Price*e.config.PriceBonus.Window {
		return math.Min(1, base+e.config.PriceBonus.Bonus)
	}
	return base
}

// SizeSimilarity compares square meters normalized by the corpus size range.
func (e *Engine) SizeSimilarity(target, candidate *models.Listing) float64 {
	spread := e.stats.Size.Range()
	if spread == 0 {
		return 1
	}

	diff := math.Abs(target.SquareMeters - candidate.SquareMeters)
	return math.Max(0, 1-diff/spread)
}

// RoomsSimilarity maps the bedroom count difference onto the step table.
func (e *Engine) RoomsSimilarity(target, candidate *models.Listing) float64 {
	diff := target.Bedrooms - candidate.Bedrooms
	if diff < 0 {
		diff = -diff
	}

	steps := e.config.Rooms
	switch diff {
	case 0:
		return steps.Exact
	case 1:
		return steps.OneDiff
	case 2:
		return steps.TwoDiff
	case 3:
		return steps.ThreeDiff
	default:
		return steps.Other
	}
}

// Similarities computes all five attribute similarities for a pair.
func (e *Engine) Similarities(target, candidate *models.Listing) Similarities {
	return Similarities{
		Location: LocationSimilarity(target, candidate),
		Type:     TypeSimilarity(target, candidate),
		Price:    e.PriceSimilarity(target, candidate),
		Size:     e.SizeSimilarity(target, candidate),
		Rooms:    e.RoomsSimilarity(target, candidate),
	}
}

// weightedScore aggregates similarities with the configured weights.
func (e *Engine) weightedScore(s *Similarities) float64 {
	w := e.config.Weights
	return s.Location*w.Location +
		s.Type*w.Type +
		s.Price*w.Price +
		s.Size*w.Size +
		s.Rooms*w.Rooms
}

// toPercent converts a [0, 1] value into a rounded 0-100 integer.
func toPercent(v float64) int {
	return int(math.Round(v * 100))
}

func categoryScores(s *Similarities) CategoryScores {
	return CategoryScores{
		Location: toPercent(s.Location),
		Type:     toPercent(s.Type),
		Price:    toPercent(s.Price),
		Size:     toPercent(s.Size),
		Rooms:    toPercent(s.Rooms),
	}
}
