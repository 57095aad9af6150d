// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package catalog

import "github.com/tomtom215/propmatch/internal/models"

// Pagination limits.
const (
	MinPage         = 1
	MaxPage         = 100
	DefaultPageSize = 10
)

// Page is one slice of a paginated result.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// Paginate returns the 1-based page of items. page is clamped to
// [MinPage, MaxPage] and a non-positive size falls back to DefaultPageSize.
// A page past the end yields an empty, non-nil Items slice.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	page = min(max(page, MinPage), MaxPage)

	total := len(items)
	p := Page[T]{
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: (total + size - 1) / size,
	}

	start := (page - 1) * size
	if start >= total {
		p.Items = []T{}
		return p
	}
	end := min(start+size, total)
	p.Items = items[start:end]
	return p
}

// HasMore reports whether pages follow this one.
func (p *Page[T]) HasMore() bool {
	return p.Page < p.TotalPages
}

// Info converts the page into response metadata.
func (p *Page[T]) Info() *models.PaginationInfo {
	return &models.PaginationInfo{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		HasMore:    p.HasMore(),
	}
}
