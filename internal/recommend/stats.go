// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package recommend

import (
	"math"

	"github.com/tomtom215/propmatch/internal/models"
)

// BuildStatistics computes price and size statistics over listings.
// It returns ErrEmptyCorpus when listings is empty.
func BuildStatistics(listings []models.Listing) (CorpusStatistics, error) {
	if len(listings) == 0 {
		return CorpusStatistics{}, ErrEmptyCorpus
	}

	price := summarize(listings, func(l *models.Listing) float64 { return l.Price })
	size := summarize(listings, func(l *models.Listing) float64 { return l.SquareMeters })

	return CorpusStatistics{
		Count: len(listings),
		Price: price,
		Size:  size,
	}, nil
}

// summarize assumes a non-empty slice.
func summarize(listings []models.Listing, value func(*models.Listing) float64) Summary {
	minV := math.Inf(1)
	maxV := math.Inf(-1)
	var total float64

	for i := range listings {
		v := value(&listings[i])
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
		total += v
	}

	avg := total / float64(len(listings))
	// Rounding in the mean can push avg a hair outside [min, max] for
	// identical values.
	avg = math.Max(minV, math.Min(maxV, avg))

	return Summary{Min: minV, Max: maxV, Avg: avg}
}

// meanPrice returns the mean price of listings and false when listings is empty.
func meanPrice(listings []*models.Listing) (float64, bool) {
	if len(listings) == 0 {
		return 0, false
	}
	var total float64
	for _, l := range listings {
		total += l.Price
	}
	return total / float64(len(listings)), true
}
