package domain

import (
	"fmt"
	"strings"
)

// FilterOptions defines optional filters applied to normalized results.
// Filters only remove records; the upstream ordering of what remains is kept.
type FilterOptions struct {
	// MaxStops filters out flights with more stops than this value
	// 0 = nonstop only, 1 = max 1 stop, etc.
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines keeps only flights whose inferred airline code is listed.
	// Empty slice means no filtering by airline
	Airlines []string `json:"airlines,omitempty"`

	// PriceRange filters flights by price in the search currency
	PriceRange *PriceRange `json:"priceRange,omitempty"`
}

// PriceRange represents an inclusive price window.
type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// IsValid checks that the bounds are non-negative and ordered.
func (pr *PriceRange) IsValid() bool {
	if pr == nil {
		return true
	}
	if pr.Min != nil && *pr.Min < 0 {
		return false
	}
	if pr.Max != nil && *pr.Max < 0 {
		return false
	}
	if pr.Min != nil && pr.Max != nil && *pr.Min > *pr.Max {
		return false
	}
	return true
}

// Contains checks if a price falls within the range.
func (pr *PriceRange) Contains(price float64) bool {
	if pr == nil {
		return true
	}
	if pr.Min != nil && price < *pr.Min {
		return false
	}
	if pr.Max != nil && price > *pr.Max {
		return false
	}
	return true
}

// Validate checks the filter values.
func (f *FilterOptions) Validate() error {
	if f == nil {
		return nil
	}
	if f.MaxStops != nil && *f.MaxStops < 0 {
		return fmt.Errorf("%w: filters.maxStops must be non-negative", ErrInvalidRequest)
	}
	if !f.PriceRange.IsValid() {
		return fmt.Errorf("%w: filters.priceRange must have non-negative bounds with min <= max", ErrInvalidRequest)
	}
	return nil
}

// IsEmpty reports whether no filter is set.
func (f *FilterOptions) IsEmpty() bool {
	return f == nil || (f.MaxStops == nil && len(f.Airlines) == 0 && f.PriceRange == nil)
}

// MatchesFlight checks if a flight matches all the filter criteria.
func (f *FilterOptions) MatchesFlight(flight FlightRecord) bool {
	if f == nil {
		return true
	}

	if f.MaxStops != nil && flight.Stops > *f.MaxStops {
		return false
	}

	// Airline codes compare case-insensitively
	if len(f.Airlines) > 0 {
		found := false
		for _, code := range f.Airlines {
			if strings.EqualFold(code, flight.AirlineCode) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return f.PriceRange.Contains(flight.Price)
}
