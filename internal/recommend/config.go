// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package recommend

import (
	"fmt"
	"math"
)

// weightSumTolerance bounds floating point drift when checking that weights sum to 1.
const weightSumTolerance = 1e-9

// Config contains all configuration for the similarity engine.
type Config struct {
	// Weights defines the contribution of each attribute to the final score.
	// Weights must sum to 1.0.
	Weights Weights `json:"weights" koanf:"weights"`

	// Thresholds controls which attributes produce an explicit reason.
	Thresholds Thresholds `json:"thresholds" koanf:"thresholds"`

	// PriceBonus configures the flat bonus for candidates priced near the target.
	PriceBonus PriceBonusConfig `json:"price_bonus" koanf:"price_bonus"`

	// Rooms maps bedroom count differences to similarity values.
	Rooms RoomsSteps `json:"rooms" koanf:"rooms"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`
}

// Weights defines the relative contribution of each attribute.
type Weights struct {
	// Location is the weight for the same-city signal.
	Location float64 `json:"location" koanf:"location"`

	// Type is the weight for the same-property-type signal.
	Type float64 `json:"type" koanf:"type"`

	// Price is the weight for price similarity.
	Price float64 `json:"price" koanf:"price"`

	// Size is the weight for square meter similarity.
	Size float64 `json:"size" koanf:"size"`

	// Rooms is the weight for bedroom count similarity.
	Rooms float64 `json:"rooms" koanf:"rooms"`
}

// Sum returns the total of all weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Sum() float64 {
	return w.Location + w.Type + w.Price + w.Size + w.Rooms
}

// ToMap returns the weights keyed by attribute name.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) ToMap() map[Attribute]float64 {
	return map[Attribute]float64{
		AttributeLocation: w.Location,
		AttributeType:     w.Type,
		AttributePrice:    w.Price,
		AttributeSize:     w.Size,
		AttributeRooms:    w.Rooms,
	}
}

// Thresholds controls reason emission.
type Thresholds struct {
	// Price similarity must be strictly greater than this value.
	// Default: 0.7.
	Price float64 `json:"price" koanf:"price"`

	// Size similarity must be strictly greater than this value.
	// Default: 0.8.
	Size float64 `json:"size" koanf:"size"`

	// Rooms similarity must be greater than or equal to this value.
	// Default: 0.8.
	Rooms float64 `json:"rooms" koanf:"rooms"`
}

// PriceBonusConfig configures the near-price bonus.
type PriceBonusConfig struct {
	// Window is the fraction of the target's price inside which a candidate
	// earns the bonus. The window is relative to the target only.
	// Default: 0.2.
	Window float64 `json:"window" koanf:"window"`

	// Bonus is added to the base price similarity, capped at 1.
	// Default: 0.3.
	Bonus float64 `json:"bonus" koanf:"bonus"`
}

// RoomsSteps is the bedroom difference step table.
type RoomsSteps struct {
	Exact     float64 `json:"exact" koanf:"exact"`
	OneDiff   float64 `json:"one_diff" koanf:"one_diff"`
	TwoDiff   float64 `json:"two_diff" koanf:"two_diff"`
	ThreeDiff float64 `json:"three_diff" koanf:"three_diff"`
	Other     float64 `json:"other" koanf:"other"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the number of recommendations returned when the caller
	// does not ask for a specific count.
	// Default: 3.
	DefaultK int `json:"default_k" koanf:"default_k"`

	// MaxK is the largest K accepted from external callers.
	// Default: 50.
	MaxK int `json:"max_k" koanf:"max_k"`
}

// DefaultConfig returns a Config with the production scoring constants.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Location: 0.30,
			Type:     0.25,
			Price:    0.25,
			Size:     0.15,
			Rooms:    0.05,
		},
		Thresholds: Thresholds{
			Price: 0.7,
			Size:  0.8,
			Rooms: 0.8,
		},
		PriceBonus: PriceBonusConfig{
			Window: 0.2,
			Bonus:  0.3,
		},
		Rooms: RoomsSteps{
			Exact:     1.0,
			OneDiff:   0.8,
			TwoDiff:   0.6,
			ThreeDiff: 0.4,
			Other:     0.2,
		},
		Limits: LimitsConfig{
			DefaultK: 3,
			MaxK:     50,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	for attr, w := range c.Weights.ToMap() {
		if w < 0 || w > 1 {
			return fmt.Errorf("weights.%s must be in [0, 1], got %f", attr, w)
		}
	}
	if sum := c.Weights.Sum(); math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1, got %f", sum)
	}

	if c.Thresholds.Price < 0 || c.Thresholds.Price > 1 {
		return fmt.Errorf("thresholds.price must be in [0, 1], got %f", c.Thresholds.Price)
	}
	if c.Thresholds.Size < 0 || c.Thresholds.Size > 1 {
		return fmt.Errorf("thresholds.size must be in [0, 1], got %f", c.Thresholds.Size)
	}
	if c.Thresholds.Rooms < 0 || c.Thresholds.Rooms > 1 {
		return fmt.Errorf("thresholds.rooms must be in [0, 1], got %f", c.Thresholds.Rooms)
	}

	if c.PriceBonus.Window < 0 {
		return fmt.Errorf("price_bonus.window must be non-negative, got %f", c.PriceBonus.Window)
	}
	if c.PriceBonus.Bonus < 0 || c.PriceBonus.Bonus > 1 {
		return fmt.Errorf("price_bonus.bonus must be in [0, 1], got %f", c.PriceBonus.Bonus)
	}

	steps := []float64{c.Rooms.Exact, c.Rooms.OneDiff, c.Rooms.TwoDiff, c.Rooms.ThreeDiff, c.Rooms.Other}
	for i, s := range steps {
		if s < 0 || s > 1 {
			return fmt.Errorf("rooms step %d must be in [0, 1], got %f", i, s)
		}
		if i > 0 && s > steps[i-1] {
			return fmt.Errorf("rooms steps must be non-increasing, step %d (%f) > step %d (%f)", i, s, i-1, steps[i-1])
		}
	}

	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k must be >= limits.default_k, got %d < %d", c.Limits.MaxK, c.Limits.DefaultK)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	clone := *c
	return &clone
}
