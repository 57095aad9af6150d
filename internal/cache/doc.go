// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

/*
Package cache provides a thread-safe in-memory cache with TTL support.

The API layer memoises recommendation and market-stats responses here, keyed
by GenerateKey over the target listing, K and active filter. The whole cache
is cleared whenever a new catalog snapshot is published.

# Overview

  - Thread-safe concurrent access (sync.RWMutex)
  - Per-entry expiration with lazy checks on Get and a periodic sweep
  - Optional capacity bound; the entry closest to expiry is evicted first
  - Hit, miss and eviction counters for the metrics endpoint

# Usage

	c := cache.New(5*time.Minute, time.Minute, cache.WithCapacity(4096))
	defer c.Close()

	key := cache.GenerateKey("recommendations", params)
	if v, ok := c.Get(key); ok {
	    return v
	}
	c.Set(key, computed)
*/
package cache
