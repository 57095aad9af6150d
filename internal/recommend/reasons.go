// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package recommend

import (
	"github.com/tomtom215/propmatch/internal/models"
)

// reasonRule emits a reason when its condition holds for the similarities.
type reasonRule struct {
	key   ReasonKey
	holds func(s *Similarities, t *Thresholds) bool
	value func(c *models.Listing) any
}

// reasonRules are evaluated in order. Every rule that holds contributes one reason.
var reasonRules = []reasonRule{
	{
		key:   ReasonSameCity,
		holds: func(s *Similarities, _ *Thresholds) bool { return s.Location == 1 },
		value: func(c *models.Listing) any { return c.City },
	},
	{
		key:   ReasonSameType,
		holds: func(s *Similarities, _ *Thresholds) bool { return s.Type == 1 },
		value: func(c *models.Listing) any { return c.Type },
	},
	{
		key:   ReasonSimilarPrice,
		holds: func(s *Similarities, t *Thresholds) bool { return s.Price > t.Price },
		value: func(c *models.Listing) any { return c.Price },
	},
	{
		key:   ReasonSimilarSize,
		holds: func(s *Similarities, t *Thresholds) bool { return s.Size > t.Size },
		value: func(c *models.Listing) any { return c.SquareMeters },
	},
	{
		key:   ReasonCompatibleBedrooms,
		holds: func(s *Similarities, t *Thresholds) bool { return s.Rooms >= t.Rooms },
		value: func(c *models.Listing) any { return c.Bedrooms },
	},
}

// deriveReasons builds the ordered reason list for a candidate. The result
// always holds at least one entry.
func deriveReasons(candidate *models.Listing, s *Similarities, t *Thresholds) Reasons {
	reasons := make(Reasons, 0, len(reasonRules))
	for _, rule := range reasonRules {
		if rule.holds(s, t) {
			reasons = append(reasons, Reason{Key: rule.key, Value: rule.value(candidate)})
		}
	}
	if len(reasons) > 0 {
		return reasons
	}
	return Reasons{fallbackReason(candidate, s)}
}

// fallbackReason explains a candidate by its strongest attribute.
func fallbackReason(candidate *models.Listing, s *Similarities) Reason {
	switch bestAttribute(s) {
	case AttributePrice:
		return Reason{Key: ReasonCompatiblePriceRange, Value: candidate.Price}
	case AttributeSize:
		return Reason{Key: ReasonSuitableSize, Value: candidate.SquareMeters}
	case AttributeRooms:
		return Reason{Key: ReasonSimilarDistribution, Value: candidate.Bedrooms}
	default:
		// Location and type are binary; reaching here means every attribute scored 0.
		return Reason{Key: ReasonInterestingOption, Value: ""}
	}
}

// bestAttribute returns the highest scoring attribute. Ties resolve to the
// attribute that comes first in attributePriority.
func bestAttribute(s *Similarities) Attribute {
	best := attributePriority[0]
	bestScore := s.Get(best)
	for _, attr := range attributePriority[1:] {
		if v := s.Get(attr); v > bestScore {
			best, bestScore = attr, v
		}
	}
	return best
}
