// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/propmatch/internal/models"
)

const sampleJSON = `[
  {"id": 1, "titulo": "Depto céntrico", "ciudad": "Rosario", "tipo": "Departamento", "precio": 100000, "ambientes": 2, "metros_cuadrados": 50, "imagen": "/img/1.jpg"},
  {"id": 2, "titulo": "Casa con patio", "ciudad": "Córdoba", "tipo": "Casa", "precio": 180000, "ambientes": 3, "metros_cuadrados": 120},
  {"id": 3, "titulo": "Monoambiente", "ciudad": "Rosario", "tipo": "Departamento", "precio": 60000, "ambientes": 1, "metros_cuadrados": 30}
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "properties.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

func TestDecode(t *testing.T) {
	t.Parallel()

	listings, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(listings) != 3 {
		t.Fatalf("len(listings) = %d, want 3", len(listings))
	}

	want := models.Listing{
		ID: 2, Title: "Casa con patio", City: "Córdoba", Type: "Casa",
		Price: 180000, SquareMeters: 120, Bedrooms: 3, Image: models.PlaceholderImage,
	}
	if listings[1] != want {
		t.Errorf("listings[1] = %+v, want %+v", listings[1], want)
	}
	if listings[0].Image != "/img/1.jpg" {
		t.Errorf("listings[0].Image = %q, want /img/1.jpg", listings[0].Image)
	}
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	listings, err := Decode(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("Decode([]) error = %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("len(listings) = %d, want 0", len(listings))
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(`{"id": 1`))
	if err == nil {
		t.Fatal("Decode(malformed) error = nil, want error")
	}
	if errors.Is(err, ErrInvalidRecord) {
		t.Error("malformed JSON should not be reported as an invalid record")
	}
}

func TestDecode_InvalidRecords(t *testing.T) {
	t.Parallel()

	data := `[
	  {"id": 1, "titulo": "ok", "ciudad": "Rosario", "tipo": "Casa", "precio": 1, "ambientes": 1, "metros_cuadrados": 1},
	  {"id": 2, "titulo": "no price", "ciudad": "Rosario", "tipo": "Casa", "precio": 0, "ambientes": 1, "metros_cuadrados": 1},
	  {"id": 3, "titulo": "blank city", "ciudad": " ", "tipo": "Casa", "precio": 1, "ambientes": 1, "metros_cuadrados": 1},
	  {"id": 1, "titulo": "dup", "ciudad": "Rosario", "tipo": "Casa", "precio": 1, "ambientes": 1, "metros_cuadrados": 1},
	  {"id": -4, "titulo": "negative id", "ciudad": "Rosario", "tipo": "Casa", "precio": 1, "ambientes": 1, "metros_cuadrados": 1},
	  {"id": 0, "titulo": "zero id", "ciudad": "Rosario", "tipo": "Casa", "precio": 1, "ambientes": 1, "metros_cuadrados": 1}
	]`

	_, err := Decode(strings.NewReader(data))
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("Decode() error = %v, want ErrInvalidRecord", err)
	}

	var invalid *InvalidRecordsError
	if !errors.As(err, &invalid) {
		t.Fatalf("Decode() error type = %T, want *InvalidRecordsError", err)
	}

	wantIndexes := []int{1, 2, 3, 4, 5}
	if len(invalid.Records) != len(wantIndexes) {
		t.Fatalf("len(Records) = %d, want %d: %v", len(invalid.Records), len(wantIndexes), err)
	}
	for i, idx := range wantIndexes {
		if invalid.Records[i].Index != idx {
			t.Errorf("Records[%d].Index = %d, want %d", i, invalid.Records[i].Index, idx)
		}
	}
	if !strings.Contains(invalid.Records[0].Error(), "precio") {
		t.Errorf("Records[0] = %q, want the failing field name", invalid.Records[0].Error())
	}
	if !strings.Contains(invalid.Records[2].Error(), "duplicate id") {
		t.Errorf("Records[2] = %q, want duplicate id", invalid.Records[2].Error())
	}
	for _, i := range []int{3, 4} {
		if !strings.Contains(invalid.Records[i].Error(), "greater than or equal to 1") {
			t.Errorf("Records[%d] = %q, want a positive id requirement", i, invalid.Records[i].Error())
		}
	}
}

func TestInvalidRecordsError_Truncates(t *testing.T) {
	t.Parallel()

	e := &InvalidRecordsError{}
	for i := 0; i < 8; i++ {
		e.Records = append(e.Records, RecordError{Index: i, ID: i, Err: errors.New("bad")})
	}
	msg := e.Error()
	if !strings.HasPrefix(msg, "8 invalid listing record(s)") {
		t.Errorf("Error() = %q, want count prefix", msg)
	}
	if !strings.HasSuffix(msg, "and 3 more") {
		t.Errorf("Error() = %q, want truncation suffix", msg)
	}
}

func TestFileSource_Load(t *testing.T) {
	t.Parallel()

	src := NewFileSource(writeCatalog(t, sampleJSON))
	listings, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(listings) != 3 {
		t.Errorf("len(listings) = %d, want 3", len(listings))
	}
	if !strings.HasPrefix(src.String(), "file:") {
		t.Errorf("String() = %q, want file: prefix", src.String())
	}
}

func TestFileSource_Errors(t *testing.T) {
	t.Parallel()

	missing := NewFileSource(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := missing.Load(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := NewFileSource(writeCatalog(t, sampleJSON))
	if _, err := src.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load(cancelled) error = %v, want context.Canceled", err)
	}
}

func TestStaticSource_CopiesInput(t *testing.T) {
	t.Parallel()

	in := []models.Listing{{ID: 1, City: "Rosario"}}
	src := NewStaticSource(in)
	in[0].City = "mutated"

	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got[0].City != "Rosario" {
		t.Errorf("City = %q, want Rosario (source must not alias input)", got[0].City)
	}
}
