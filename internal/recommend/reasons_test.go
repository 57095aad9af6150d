// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package recommend

import (
	"reflect"
	"testing"
)

func TestDeriveReasons(t *testing.T) {
	t.Parallel()

	candidate := testListing(7, "Mendoza", "Casa", 150000, 120, 3)
	thresholds := DefaultConfig().Thresholds

	tests := []struct {
		name string
		sims Similarities
		want Reasons
	}{
		{
			name: "all reasons in priority order",
			sims: Similarities{Location: 1, Type: 1, Price: 0.9, Size: 0.95, Rooms: 1},
			want: Reasons{
				{Key: ReasonSameCity, Value: "Mendoza"},
				{Key: ReasonSameType, Value: "Casa"},
				{Key: ReasonSimilarPrice, Value: 150000.0},
				{Key: ReasonSimilarSize, Value: 120.0},
				{Key: ReasonCompatibleBedrooms, Value: 3},
			},
		},
		{
			name: "only type",
			sims: Similarities{Location: 0, Type: 1, Price: 0.1, Size: 0.1, Rooms: 0.2},
			want: Reasons{{Key: ReasonSameType, Value: "Casa"}},
		},
		{
			name: "price threshold is strict",
			sims: Similarities{Price: 0.7, Size: 0.1, Rooms: 0.2},
			want: Reasons{{Key: ReasonCompatiblePriceRange, Value: 150000.0}},
		},
		{
			name: "size threshold is strict",
			sims: Similarities{Price: 0.1, Size: 0.8, Rooms: 0.2},
			want: Reasons{{Key: ReasonSuitableSize, Value: 120.0}},
		},
		{
			name: "rooms threshold is inclusive",
			sims: Similarities{Price: 0.1, Size: 0.1, Rooms: 0.8},
			want: Reasons{{Key: ReasonCompatibleBedrooms, Value: 3}},
		},
		{
			name: "fallback to rooms",
			sims: Similarities{Price: 0, Size: 0, Rooms: 0.4},
			want: Reasons{{Key: ReasonSimilarDistribution, Value: 3}},
		},
		{
			name: "fallback tie between price and size picks price",
			sims: Similarities{Price: 0.5, Size: 0.5, Rooms: 0.2},
			want: Reasons{{Key: ReasonCompatiblePriceRange, Value: 150000.0}},
		},
		{
			name: "fallback tie between size and rooms picks size",
			sims: Similarities{Price: 0.1, Size: 0.6, Rooms: 0.6},
			want: Reasons{{Key: ReasonSuitableSize, Value: 120.0}},
		},
		{
			name: "all zero yields interesting option",
			sims: Similarities{},
			want: Reasons{{Key: ReasonInterestingOption, Value: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := deriveReasons(&candidate, &tt.sims, &thresholds)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("deriveReasons() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBestAttribute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sims Similarities
		want Attribute
	}{
		{"all zero", Similarities{}, AttributeLocation},
		{"rooms highest", Similarities{Price: 0.1, Size: 0.2, Rooms: 0.4}, AttributeRooms},
		{"price highest", Similarities{Price: 0.6, Size: 0.2, Rooms: 0.4}, AttributePrice},
		{"location wins ties", Similarities{Location: 1, Type: 1, Price: 1, Size: 1, Rooms: 1}, AttributeLocation},
		{"type before price on tie", Similarities{Type: 1, Price: 1}, AttributeType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := bestAttribute(&tt.sims); got != tt.want {
				t.Errorf("bestAttribute() = %v, want %v", got, tt.want)
			}
		})
	}
}
