// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package catalog

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/propmatch/internal/models"
)

// switchSource returns whatever listings or error it currently holds.
type switchSource struct {
	mu       sync.Mutex
	listings []models.Listing
	err      error
}

func (s *switchSource) set(listings []models.Listing, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings, s.err = listings, err
}

func (s *switchSource) Load(context.Context) ([]models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	cp := make([]models.Listing, len(s.listings))
	copy(cp, s.listings)
	return cp, nil
}

func (s *switchSource) String() string { return "switch" }

func storeCorpus() []models.Listing {
	return []models.Listing{
		{ID: 1, Title: "Depto", City: "Rosario", Type: "Departamento", Price: 100000, SquareMeters: 50, Bedrooms: 2},
		{ID: 2, Title: "Depto 2", City: "Rosario", Type: "Departamento", Price: 105000, SquareMeters: 55, Bedrooms: 2},
		{ID: 3, Title: "Casa", City: "Córdoba", Type: "Casa", Price: 300000, SquareMeters: 200, Bedrooms: 4},
		{ID: 4, Title: "PH", City: "Rosario", Type: "PH", Price: 90000, SquareMeters: 60, Bedrooms: 3},
	}
}

func newTestStore(t *testing.T, listings []models.Listing) (*Store, *switchSource) {
	t.Helper()
	src := &switchSource{listings: listings}
	return NewStore(src, nil, zerolog.Nop()), src
}

func TestStore_NotLoaded(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t, storeCorpus())
	if store.Ready() {
		t.Error("Ready() = true before first reload")
	}
	if store.Snapshot() != nil {
		t.Error("Snapshot() != nil before first reload")
	}
	if _, err := store.Current(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Current() error = %v, want ErrNotLoaded", err)
	}
}

func TestStore_Reload(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t, storeCorpus())
	snap, err := store.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if !store.Ready() || store.Snapshot() != snap {
		t.Fatal("Reload() did not publish the snapshot")
	}
	if snap.Version != 1 {
		t.Errorf("Version = %d, want 1", snap.Version)
	}
	if snap.Len() != 4 || snap.Engine == nil || snap.Engine.Len() != 4 {
		t.Errorf("snapshot len/engine = %d/%v, want 4 with engine", snap.Len(), snap.Engine)
	}
	if snap.LoadedAt.IsZero() {
		t.Error("LoadedAt is zero")
	}
	if got := snap.Cities(); len(got) != 2 || got[0] != "Córdoba" || got[1] != "Rosario" {
		t.Errorf("Cities() = %v, want [Córdoba Rosario]", got)
	}
	if got := snap.Types(); len(got) != 3 {
		t.Errorf("Types() = %v, want 3 types", got)
	}

	l, err := snap.Get(3)
	if err != nil || l.Title != "Casa" {
		t.Errorf("Get(3) = %+v, %v", l, err)
	}
	if _, err := snap.Get(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(99) error = %v, want ErrNotFound", err)
	}

	next, err := store.Reload(context.Background())
	if err != nil {
		t.Fatalf("second Reload() error = %v", err)
	}
	if next.Version != 2 {
		t.Errorf("second Version = %d, want 2", next.Version)
	}
}

func TestStore_FailedReloadKeepsSnapshot(t *testing.T) {
	t.Parallel()

	store, src := newTestStore(t, storeCorpus())
	first, err := store.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	src.set(nil, os.ErrNotExist)
	if _, err := store.Reload(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Reload() error = %v, want os.ErrNotExist", err)
	}
	if store.Snapshot() != first {
		t.Error("failed reload replaced the snapshot")
	}

	src.set(storeCorpus()[:2], nil)
	next, err := store.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if next.Version != 2 || next.Len() != 2 {
		t.Errorf("after recovery version/len = %d/%d, want 2/2", next.Version, next.Len())
	}
}

func TestStore_DuplicateIDsRejected(t *testing.T) {
	t.Parallel()

	corpus := append(storeCorpus(), models.Listing{ID: 1, City: "Funes", Type: "Casa", Price: 1, SquareMeters: 1})
	store, _ := newTestStore(t, corpus)

	if _, err := store.Reload(context.Background()); !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("Reload() error = %v, want ErrInvalidRecord", err)
	}
	if store.Ready() {
		t.Error("Ready() = true after rejected first load")
	}
}

func TestStore_EmptyCatalog(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t, nil)
	snap, err := store.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload(empty) error = %v", err)
	}
	if snap.Engine != nil {
		t.Error("Engine != nil for empty catalog")
	}
	if !store.Ready() {
		t.Error("Ready() = false after loading an empty catalog")
	}
	engine, err := snap.Scoped(Filter{City: "Rosario"})
	if engine != nil || err != nil {
		t.Errorf("Scoped() on empty catalog = %v, %v; want nil, nil", engine, err)
	}
}

func TestSnapshot_Scoped(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t, storeCorpus())
	snap, err := store.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	zero, err := snap.Scoped(Filter{City: "all", Type: "all"})
	if err != nil || zero != snap.Engine {
		t.Errorf("Scoped(zero) = %p, %v; want snapshot engine", zero, err)
	}

	rosario, err := snap.Scoped(Filter{City: "Rosario"})
	if err != nil {
		t.Fatalf("Scoped(Rosario) error = %v", err)
	}
	if rosario.Len() != 3 {
		t.Errorf("scoped engine len = %d, want 3", rosario.Len())
	}
	// Corpus statistics follow the filtered set.
	if got := rosario.Statistics().Price.Max; got != 105000 {
		t.Errorf("scoped price max = %v, want 105000", got)
	}

	target, _ := snap.Get(1)
	results := rosario.Recommend(&target, 10)
	for _, r := range results {
		if r.Listing.City != "Rosario" {
			t.Errorf("scoped recommendation from %q, want only Rosario", r.Listing.City)
		}
	}

	none, err := snap.Scoped(Filter{Search: "castillo"})
	if none != nil || err != nil {
		t.Errorf("Scoped(no match) = %v, %v; want nil, nil", none, err)
	}
}

func TestSnapshot_Filter(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t, storeCorpus())
	snap, err := store.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if got := snap.Filter(Filter{}); len(got) != 4 {
		t.Errorf("Filter(zero) len = %d, want 4", len(got))
	}
	if got := ids(snap.Filter(Filter{Type: "Departamento"})); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Filter(Departamento) = %v, want [1 2]", got)
	}
}

func TestStore_OnReload(t *testing.T) {
	t.Parallel()

	store, src := newTestStore(t, storeCorpus())

	var versions []uint64
	store.OnReload(func(s *Snapshot) { versions = append(versions, s.Version) })

	if _, err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	src.set(nil, errors.New("boom"))
	_, _ = store.Reload(context.Background())
	src.set(storeCorpus(), nil)
	if _, err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if len(versions) != 2 || versions[0] != 1 || versions[1] != 2 {
		t.Errorf("hook versions = %v, want [1 2] (failed reloads do not fire hooks)", versions)
	}
}

func TestStore_ConcurrentReadsDuringReload(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t, storeCorpus())
	if _, err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_, _ = store.Reload(context.Background())
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				snap := store.Snapshot()
				target, err := snap.Get(1)
				if err != nil {
					t.Errorf("Get(1) error = %v", err)
					return
				}
				_ = snap.Engine.Recommend(&target, 3)
			}
		}()
	}
	wg.Wait()

	if got := store.Snapshot().Version; got != 81 {
		t.Errorf("final version = %d, want 81", got)
	}
}
