// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/propmatch/internal/models"
	"github.com/tomtom215/propmatch/internal/validation"
)

// ErrInvalidRecord is matched by errors.Is when a data file contains records
// that fail validation.
var ErrInvalidRecord = errors.New("invalid listing record")

// maxReportedRecords caps how many record errors appear in an error message.
const maxReportedRecords = 5

// Source supplies the full listing corpus.
type Source interface {
	// Load returns every listing currently published by the source.
	Load(ctx context.Context) ([]models.Listing, error)

	// String identifies the source in logs.
	String() string
}

// RecordError describes one rejected record by its position in the input array.
type RecordError struct {
	Index int
	ID    int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (id %d): %v", e.Index, e.ID, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// InvalidRecordsError collects every rejected record from a single decode.
type InvalidRecordsError struct {
	Records []RecordError
}

func (e *InvalidRecordsError) Error() string {
	n := len(e.Records)
	parts := make([]string, 0, maxReportedRecords)
	for i := 0; i < n && i < maxReportedRecords; i++ {
		parts = append(parts, e.Records[i].Error())
	}
	msg := fmt.Sprintf("%d invalid listing record(s): %s", n, strings.Join(parts, "; "))
	if n > maxReportedRecords {
		msg += fmt.Sprintf("; and %d more", n-maxReportedRecords)
	}
	return msg
}

// Is reports ErrInvalidRecord so callers need not know the concrete type.
func (e *InvalidRecordsError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// Decode reads a JSON array of raw listing records and maps them onto
// models.Listing. Every record is validated; the first occurrence of an ID
// wins and later duplicates are rejected. If any record is rejected the
// whole decode fails with an *InvalidRecordsError.
func Decode(r io.Reader) ([]models.Listing, error) {
	var raw []models.RawListing
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}

	listings := make([]models.Listing, 0, len(raw))
	seen := make(map[int]int, len(raw))
	var invalid []RecordError

	for i := range raw {
		rec := &raw[i]
		if verr := validation.ValidateStruct(rec); verr != nil {
			invalid = append(invalid, RecordError{Index: i, ID: rec.ID, Err: verr})
			continue
		}
		if first, dup := seen[rec.ID]; dup {
			invalid = append(invalid, RecordError{
				Index: i,
				ID:    rec.ID,
				Err:   fmt.Errorf("duplicate id, first seen at record %d", first),
			})
			continue
		}
		seen[rec.ID] = i
		listings = append(listings, rec.ToListing())
	}

	if len(invalid) > 0 {
		return nil, &InvalidRecordsError{Records: invalid}
	}
	return listings, nil
}

// FileSource reads listings from a local JSON file.
type FileSource struct {
	path string
}

// NewFileSource returns a Source backed by the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file being read.
func (s *FileSource) Path() string {
	return s.path
}

// Load reads and decodes the file.
func (s *FileSource) Load(ctx context.Context) ([]models.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	listings, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", s.path, err)
	}
	return listings, nil
}

func (s *FileSource) String() string {
	return "file:" + s.path
}

// StaticSource serves a fixed slice of listings. It backs tests and embedded
// demo data.
type StaticSource struct {
	listings []models.Listing
}

// NewStaticSource copies listings into a new StaticSource.
func NewStaticSource(listings []models.Listing) *StaticSource {
	cp := make([]models.Listing, len(listings))
	copy(cp, listings)
	return &StaticSource{listings: cp}
}

// Load returns a copy of the stored listings.
func (s *StaticSource) Load(ctx context.Context) ([]models.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cp := make([]models.Listing, len(s.listings))
	copy(cp, s.listings)
	return cp, nil
}

func (s *StaticSource) String() string {
	return fmt.Sprintf("static:%d", len(s.listings))
}
