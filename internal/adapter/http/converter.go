package http

import (
	"strings"

	"github.com/flight-search/flight-search-web/internal/calendar"
	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/flight-search/flight-search-web/internal/usecase"
)

// ToDomainRequest converts a validated SearchFlightsRequest to a domain.SearchRequest.
// Defaults are left to the use case.
func ToDomainRequest(req *SearchFlightsRequest) *domain.SearchRequest {
	out := &domain.SearchRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		DepartDate:  req.DepartDate,
		ReturnDate:  req.ReturnDate,
		TripType:    domain.TripType(strings.ToLower(req.TripType)),
		CabinClass:  domain.CabinClass(strings.ToLower(req.CabinClass)),
		Currency:    strings.ToUpper(req.Currency),
		Filters:     ToDomainFilters(req.Filters),
	}

	if req.Passengers != nil {
		out.Passengers = domain.Passengers{
			Adults:     req.Passengers.Adults,
			Children:   req.Passengers.Children,
			Infants:    req.Passengers.Infants,
			LapInfants: req.Passengers.LapInfants,
		}
	}

	return out
}

// ToDomainFilters converts a FilterDTO to domain.FilterOptions.
// An absent or empty DTO maps to nil.
func ToDomainFilters(dto *FilterDTO) *domain.FilterOptions {
	if dto == nil {
		return nil
	}

	opts := &domain.FilterOptions{
		MaxStops: dto.MaxStops,
		Airlines: dto.Airlines,
	}

	if dto.PriceRange != nil && (dto.PriceRange.Min != nil || dto.PriceRange.Max != nil) {
		opts.PriceRange = &domain.PriceRange{
			Min: dto.PriceRange.Min,
			Max: dto.PriceRange.Max,
		}
	}

	if opts.IsEmpty() {
		return nil
	}
	return opts
}

// ToSuggestionsDTO adds display labels to an autocomplete result.
func ToSuggestionsDTO(s usecase.Suggestions) SuggestionsDTO {
	airports := make([]AirportDTO, 0, len(s.Airports))
	for _, a := range s.Airports {
		airports = append(airports, AirportDTO{Airport: a, Label: a.Label()})
	}
	return SuggestionsDTO{
		Field:    s.Field,
		Query:    s.Query,
		Stale:    s.Stale,
		Airports: airports,
	}
}

// ToCalendarResponse renders a picker state.
func ToCalendarResponse(sel *calendar.Selector, s calendar.State) CalendarResponse {
	return CalendarResponse{View: sel.View(s)}
}
