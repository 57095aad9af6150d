// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

/*
Package catalog supplies listings to the recommendation engine.

A Source loads the raw listing array (FileSource for a local JSON file,
HTTPSource for a remote URL behind a circuit breaker). Records use the
Spanish field names of the published data set and are validated on decode.

The Store turns each successful load into an immutable Snapshot holding the
listings, an ID index, the distinct cities and types, and a recommend.Engine
built over the whole catalog. Snapshots are swapped atomically so readers
never observe a half-built catalog. A failed reload keeps the previous one.

Filtering and pagination mirror what a listing browser offers:

	snap, _ := store.Current()
	filtered := snap.Filter(catalog.Filter{City: "Rosario", Type: "all"})
	page := catalog.Paginate(filtered, 2, catalog.DefaultPageSize)

	engine, _ := snap.Scoped(catalog.Filter{City: "Rosario"})
	if engine != nil {
	    results := engine.Recommend(&target, 3)
	}
*/
package catalog
