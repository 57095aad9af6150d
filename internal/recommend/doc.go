// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

// Package recommend implements the listing similarity engine.
//
// # Scoring
//
// Every candidate listing is compared with a target listing on five
// attributes, each producing a similarity in [0, 1]:
//
//   - Location: exact city match (1 or 0)
//   - Type: exact property type match (1 or 0)
//   - Price: 1 - |Δ|/range over the corpus price range, plus a flat bonus when
//     the candidate lies within a window around the target's price
//   - Size: 1 - |Δ|/range over the corpus square meter range
//   - Rooms: step function on the bedroom difference
//
// The final score is the weighted sum of the five similarities. Weights sum
// to 1, so the score stays in [0, 1].
//
// # Reasons
//
// Each result carries an ordered list of reasons (key/value pairs) that
// explain the match. When no threshold fires, a single fallback reason is
// derived from the strongest attribute.
//
// # Usage
//
//	engine, err := recommend.NewEngine(listings, recommend.DefaultConfig(), logger)
//	if errors.Is(err, recommend.ErrEmptyCorpus) {
//	    // nothing to recommend from
//	}
//	results := engine.Recommend(target, 3)
//	stats := engine.MarketStats(target)
//
// # Thread Safety
//
// An Engine is immutable after construction. All methods are safe for
// concurrent use. When the corpus changes, build a new Engine.
package recommend
