// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package models

// PlaceholderImage is served for listings that carry no image of their own.
const PlaceholderImage = "/placeholder.svg"

// Listing represents one real-estate record in the catalog.
//
// City, Type, Price, SquareMeters and Bedrooms drive similarity scoring.
// Title and Image are display-only and pass through untouched.
//
// Example JSON:
//
//	{
//	  "id": 12,
//	  "title": "Luminoso 2 ambientes",
//	  "city": "Rosario",
//	  "type": "Departamento",
//	  "price": 98000,
//	  "square_meters": 54,
//	  "bedrooms": 2,
//	  "image": "/placeholder.svg"
//	}
type Listing struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	City         string  `json:"city"`
	Type         string  `json:"type"`
	Price        float64 `json:"price"`
	SquareMeters float64 `json:"square_meters"`
	Bedrooms     int     `json:"bedrooms"`
	Image        string  `json:"image"`
}

// RawListing is the on-disk representation of a listing in the catalog data file.
// Field names follow the source data set, which is published in Spanish.
// IDs must be positive so every listing is addressable by the {id} route.
type RawListing struct {
	ID              int     `json:"id" validate:"gte=1"`
	Titulo          string  `json:"titulo"`
	Ciudad          string  `json:"ciudad" validate:"required,notblank"`
	Tipo            string  `json:"tipo" validate:"required,notblank"`
	Precio          float64 `json:"precio" validate:"gt=0"`
	Ambientes       int     `json:"ambientes" validate:"gte=0"`
	MetrosCuadrados float64 `json:"metros_cuadrados" validate:"gt=0"`
	Imagen          string  `json:"imagen"`
}

// ToListing maps a raw data record onto the catalog Listing shape.
func (r *RawListing) ToListing() Listing {
	image := r.Imagen
	if image == "" {
		image = PlaceholderImage
	}
	return Listing{
		ID:           r.ID,
		Title:        r.Titulo,
		City:         r.Ciudad,
		Type:         r.Tipo,
		Price:        r.Precio,
		SquareMeters: r.MetrosCuadrados,
		Bedrooms:     r.Ambientes,
		Image:        image,
	}
}
