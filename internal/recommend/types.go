// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package recommend

import (
	"errors"

	"github.com/tomtom215/propmatch/internal/models"
)

// ErrEmptyCorpus is returned when statistics or an engine are requested for
// an empty set of listings.
var ErrEmptyCorpus = errors.New("recommend: empty corpus")

// Attribute names one of the scored listing attributes.
type Attribute string

const (
	AttributeLocation Attribute = "location"
	AttributeType     Attribute = "type"
	AttributePrice    Attribute = "price"
	AttributeSize     Attribute = "size"
	AttributeRooms    Attribute = "rooms"
)

// attributePriority is the fixed enumeration order used to pick the
// strongest attribute for fallback reasons. Earlier entries win ties.
var attributePriority = []Attribute{
	AttributeLocation,
	AttributeType,
	AttributePrice,
	AttributeSize,
	AttributeRooms,
}

// ReasonKey identifies why a candidate was recommended.
type ReasonKey string

const (
	ReasonSameCity           ReasonKey = "same_city"
	ReasonSameType           ReasonKey = "same_type"
	ReasonSimilarPrice       ReasonKey = "similar_price"
	ReasonSimilarSize        ReasonKey = "similar_size"
	ReasonCompatibleBedrooms ReasonKey = "compatible_bedrooms"

	// Fallback reasons, emitted only when none of the above apply.
	ReasonCompatiblePriceRange ReasonKey = "compatible_price_range"
	ReasonSuitableSize         ReasonKey = "suitable_size"
	ReasonSimilarDistribution  ReasonKey = "similar_distribution"
	ReasonInterestingOption    ReasonKey = "interesting_option"
)

// Reason is a single key/value explanation. Value is the candidate's
// attribute value (string, float64 or int) and is never translated.
type Reason struct {
	Key   ReasonKey `json:"key"`
	Value any       `json:"value"`
}

// Reasons is an ordered list of explanations. Emission order is significant.
type Reasons []Reason

// Has reports whether a reason with the given key is present.
func (r Reasons) Has(key ReasonKey) bool {
	_, ok := r.Get(key)
	return ok
}

// Get returns the value for key.
func (r Reasons) Get(key ReasonKey) (any, bool) {
	for _, reason := range r {
		if reason.Key == key {
			return reason.Value, true
		}
	}
	return nil, false
}

// Keys returns reason keys in emission order.
func (r Reasons) Keys() []ReasonKey {
	keys := make([]ReasonKey, len(r))
	for i, reason := range r {
		keys[i] = reason.Key
	}
	return keys
}

// Similarities holds the per-attribute similarity values, each in [0, 1].
type Similarities struct {
	Location float64 `json:"location"`
	Type     float64 `json:"type"`
	Price    float64 `json:"price"`
	Size     float64 `json:"size"`
	Rooms    float64 `json:"rooms"`
}

// Get returns the similarity for attr, or 0 for an unknown attribute.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (s Similarities) Get(attr Attribute) float64 {
	switch attr {
	case AttributeLocation:
		return s.Location
	case AttributeType:
		return s.Type
	case AttributePrice:
		return s.Price
	case AttributeSize:
		return s.Size
	case AttributeRooms:
		return s.Rooms
	default:
		return 0
	}
}

// CategoryScores is the 0-100 percentage form of Similarities.
type CategoryScores struct {
	Location int `json:"location"`
	Type     int `json:"type"`
	Price    int `json:"price"`
	Size     int `json:"size"`
	Rooms    int `json:"rooms"`
}

// Result is one scored candidate.
type Result struct {
	// Listing is the candidate listing.
	Listing models.Listing `json:"listing"`

	// CandidateID is the candidate's identifier.
	CandidateID int `json:"candidate_id"`

	// Score is the weighted similarity in [0, 1].
	Score float64 `json:"score"`

	// MatchPercentage is round(Score*100).
	MatchPercentage int `json:"match_percentage"`

	// Reasons explains the match. Never empty.
	Reasons Reasons `json:"reasons"`

	// CategoryScores breaks the score down per attribute.
	CategoryScores CategoryScores `json:"category_scores"`

	// Similarities holds the raw per-attribute values behind CategoryScores.
	Similarities Similarities `json:"-"`
}

// Summary holds min, max and mean of one numeric attribute.
type Summary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// Range returns Max - Min.
func (s Summary) Range() float64 {
	return s.Max - s.Min
}

// CorpusStatistics holds the normalization statistics of a corpus.
type CorpusStatistics struct {
	Count int     `json:"count"`
	Price Summary `json:"price"`
	Size  Summary `json:"size"`
}

// PricePosition places a target's price relative to a subset mean.
type PricePosition string

const (
	PositionAbove  PricePosition = "above"
	PositionBelow  PricePosition = "below"
	PositionNoData PricePosition = "no_data"
)

// CityStats aggregates listings in the target's city.
// AvgPrice is nil when no listing shares the city.
type CityStats struct {
	City     string        `json:"city"`
	Count    int           `json:"count"`
	AvgPrice *float64      `json:"avg_price"`
	Position PricePosition `json:"price_position"`
}

// TypeStats aggregates listings of the target's property type.
// AvgPrice is nil when no listing shares the type.
type TypeStats struct {
	Type     string   `json:"type"`
	Count    int      `json:"count"`
	AvgPrice *float64 `json:"avg_price"`
}

// MarketStats is contextual market information for a target listing.
type MarketStats struct {
	TotalListings int       `json:"total_listings"`
	City          CityStats `json:"city_stats"`
	Type          TypeStats `json:"type_stats"`
}
