package usecase

import (
	"github.com/flight-search/flight-search-web/internal/domain"
)

// ApplyFilters returns the records that match every set filter.
//
// Behavior:
//   - Returns the original slice if opts is nil or empty
//   - Keeps the upstream order of the surviving records
//   - Does NOT mutate the input slice
func ApplyFilters(records []domain.FlightRecord, opts *domain.FilterOptions) []domain.FlightRecord {
	if opts.IsEmpty() {
		return records
	}

	result := make([]domain.FlightRecord, 0, len(records))
	for _, r := range records {
		if opts.MatchesFlight(r) {
			result = append(result, r)
		}
	}
	return result
}
