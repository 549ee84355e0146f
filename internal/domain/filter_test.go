package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestPriceRange_IsValid(t *testing.T) {
	tests := []struct {
		name string
		pr   *PriceRange
		want bool
	}{
		{name: "nil is valid", pr: nil, want: true},
		{name: "open range", pr: &PriceRange{}, want: true},
		{name: "ordered bounds", pr: &PriceRange{Min: floatPtr(100), Max: floatPtr(500)}, want: true},
		{name: "equal bounds", pr: &PriceRange{Min: floatPtr(100), Max: floatPtr(100)}, want: true},
		{name: "min above max", pr: &PriceRange{Min: floatPtr(500), Max: floatPtr(100)}, want: false},
		{name: "negative min", pr: &PriceRange{Min: floatPtr(-1)}, want: false},
		{name: "negative max", pr: &PriceRange{Max: floatPtr(-1)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pr.IsValid())
		})
	}
}

func TestPriceRange_Contains(t *testing.T) {
	pr := &PriceRange{Min: floatPtr(100), Max: floatPtr(500)}

	assert.True(t, pr.Contains(100))
	assert.True(t, pr.Contains(500))
	assert.True(t, pr.Contains(250.5))
	assert.False(t, pr.Contains(99.99))
	assert.False(t, pr.Contains(500.01))

	var nilRange *PriceRange
	assert.True(t, nilRange.Contains(1e9))
}

func TestFilterOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filters *FilterOptions
		wantErr bool
	}{
		{name: "nil filters", filters: nil, wantErr: false},
		{name: "valid filters", filters: &FilterOptions{MaxStops: intPtr(1), Airlines: []string{"TK"}}, wantErr: false},
		{name: "negative stops", filters: &FilterOptions{MaxStops: intPtr(-1)}, wantErr: true},
		{name: "inverted price range", filters: &FilterOptions{PriceRange: &PriceRange{Min: floatPtr(10), Max: floatPtr(1)}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filters.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidRequest))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFilterOptions_IsEmpty(t *testing.T) {
	var nilFilters *FilterOptions
	assert.True(t, nilFilters.IsEmpty())
	assert.True(t, (&FilterOptions{}).IsEmpty())
	assert.True(t, (&FilterOptions{Airlines: []string{}}).IsEmpty())
	assert.False(t, (&FilterOptions{MaxStops: intPtr(0)}).IsEmpty())
}

func TestFilterOptions_MatchesFlight(t *testing.T) {
	flight := FlightRecord{
		ID:          "leg-1",
		AirlineCode: "TK",
		Price:       450,
		Stops:       1,
	}

	tests := []struct {
		name    string
		filters *FilterOptions
		want    bool
	}{
		{name: "nil filters match", filters: nil, want: true},
		{name: "empty filters match", filters: &FilterOptions{}, want: true},
		{name: "stops within limit", filters: &FilterOptions{MaxStops: intPtr(1)}, want: true},
		{name: "nonstop only excludes", filters: &FilterOptions{MaxStops: intPtr(0)}, want: false},
		{name: "airline matches", filters: &FilterOptions{Airlines: []string{"LH", "TK"}}, want: true},
		{name: "airline matches case-insensitively", filters: &FilterOptions{Airlines: []string{"tk"}}, want: true},
		{name: "airline not listed", filters: &FilterOptions{Airlines: []string{"LH"}}, want: false},
		{name: "price in range", filters: &FilterOptions{PriceRange: &PriceRange{Max: floatPtr(500)}}, want: true},
		{name: "price above range", filters: &FilterOptions{PriceRange: &PriceRange{Max: floatPtr(400)}}, want: false},
		{
			name: "all criteria must match",
			filters: &FilterOptions{
				MaxStops:   intPtr(2),
				Airlines:   []string{"TK"},
				PriceRange: &PriceRange{Min: floatPtr(500)},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.MatchesFlight(flight))
		})
	}
}

func TestFilterOptions_MatchesFlight_EmptyAirlineCode(t *testing.T) {
	filters := &FilterOptions{Airlines: []string{"TK"}}

	assert.False(t, filters.MatchesFlight(FlightRecord{AirlineCode: ""}))
}
