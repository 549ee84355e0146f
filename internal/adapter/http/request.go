// Package http provides the HTTP handler layer for the flight search web UI.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/flight-search/flight-search-web/internal/calendar"
	"github.com/flight-search/flight-search-web/internal/domain"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is free text or an airport code (e.g., "Istanbul" or "IST")
	Origin string `json:"origin" example:"Istanbul"`

	// Destination is free text or an airport code
	Destination string `json:"destination" example:"New York"`

	// DepartDate is the departure date in YYYY-MM-DD format
	DepartDate string `json:"departDate" example:"2025-06-01"`

	// ReturnDate is the return date for round trips (YYYY-MM-DD)
	ReturnDate string `json:"returnDate,omitempty" example:"2025-06-10"`

	// TripType is roundtrip (default) or oneway
	TripType string `json:"tripType,omitempty" example:"roundtrip"`

	// Passengers is the per-type breakdown; defaults to one adult
	Passengers *PassengersDTO `json:"passengers,omitempty"`

	// CabinClass is economy (default), premium_economy, business or first
	CabinClass string `json:"cabinClass,omitempty" example:"economy"`

	// Currency is an ISO 4217 code; defaults to the configured currency
	Currency string `json:"currency,omitempty" example:"USD"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`
}

// PassengersDTO is the passenger breakdown from the search form.
type PassengersDTO struct {
	Adults     int `json:"adults" example:"1"`
	Children   int `json:"children" example:"0"`
	Infants    int `json:"infants" example:"0"`
	LapInfants int `json:"lapInfants" example:"0"`
}

// FilterDTO represents optional filters applied to the normalized results.
// Example: {"maxStops": 0, "airlines": ["TK"], "priceRange": {"max": 800}}
type FilterDTO struct {
	// MaxStops filters flights with more stops than this value (0 = nonstop only)
	MaxStops *int `json:"maxStops,omitempty" example:"0"`

	// Airlines keeps only flights from these airline codes
	Airlines []string `json:"airlines,omitempty" example:"TK,LH"`

	// PriceRange keeps flights priced within the inclusive window
	PriceRange *PriceRangeDTO `json:"priceRange,omitempty"`
}

// PriceRangeDTO is an inclusive price window in the search currency.
type PriceRangeDTO struct {
	Min *float64 `json:"min,omitempty" example:"100"`
	Max *float64 `json:"max,omitempty" example:"800"`
}

// CalendarRequest is the body of every calendar endpoint. The client keeps the
// picker state and sends it back with each transition.
type CalendarRequest struct {
	// State is the current picker state; omitted means a fresh picker
	State *calendar.State `json:"state,omitempty"`

	// Date is the clicked day (select only), YYYY-MM-DD
	Date string `json:"date,omitempty" example:"2025-06-01"`

	// Months is the navigation step (advance only), e.g. 1 or -1
	Months int `json:"months,omitempty" example:"1"`

	// TripType is the new trip type (trip-type only)
	TripType string `json:"tripType,omitempty" example:"oneway"`
}

// Validation regex patterns.
var (
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyPattern    = regexp.MustCompile(`^[A-Za-z]{3}$`)
	airlineCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{2}$`)
)

const (
	// maxCalendarStep bounds a single advance request, in months
	maxCalendarStep = 24

	validCabinClassList = "economy, premium_economy, business, first"
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

func (v *ValidationErrors) orNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// Validate validates the search request and returns any validation errors.
// It also trims text fields and upper-cases codes in place.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Origin = strings.TrimSpace(r.Origin)
	r.Destination = strings.TrimSpace(r.Destination)
	if r.Origin == "" {
		errs.Add("origin", "origin is required")
	}
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
	}

	depart, departOK := validateDate(errs, "departDate", r.DepartDate, true)

	tripType := domain.TripType(strings.ToLower(r.TripType))
	if tripType != "" && !tripType.IsValid() {
		errs.Add("tripType", "tripType must be one of: roundtrip, oneway")
	}

	if tripType != domain.TripOneway {
		ret, retOK := validateDate(errs, "returnDate", r.ReturnDate, false)
		if departOK && retOK && ret.Before(depart) {
			errs.Add("returnDate", "returnDate must not be before departDate")
		}
	}

	r.validatePassengers(errs)

	if cabin := domain.CabinClass(strings.ToLower(r.CabinClass)); cabin != "" && !cabin.IsValid() {
		errs.Add("cabinClass", "cabinClass must be one of: "+validCabinClassList)
	}

	if r.Currency != "" && !currencyPattern.MatchString(r.Currency) {
		errs.Add("currency", "currency must be a 3-letter ISO 4217 code")
	}

	r.validateFilters(errs)

	return errs.orNil()
}

func (r *SearchFlightsRequest) validatePassengers(errs *ValidationErrors) {
	if r.Passengers == nil {
		return
	}
	p := r.Passengers
	if p.Adults < domain.MinAdults || p.Adults > domain.MaxAdults {
		errs.Add("passengers.adults", fmt.Sprintf("adults must be between %d and %d", domain.MinAdults, domain.MaxAdults))
	}
	others := []struct {
		field string
		count int
	}{
		{"passengers.children", p.Children},
		{"passengers.infants", p.Infants},
		{"passengers.lapInfants", p.LapInfants},
	}
	for _, o := range others {
		if o.count < 0 || o.count > domain.MaxOtherPassengers {
			errs.Add(o.field, fmt.Sprintf("must be between 0 and %d", domain.MaxOtherPassengers))
		}
	}
}

func (r *SearchFlightsRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.MaxStops != nil && *r.Filters.MaxStops < 0 {
		errs.Add("filters.maxStops", "maxStops must be a non-negative number")
	}

	for i, airline := range r.Filters.Airlines {
		normalized := strings.ToUpper(strings.TrimSpace(airline))
		if !airlineCodePattern.MatchString(normalized) {
			errs.Add(fmt.Sprintf("filters.airlines[%d]", i), "airline code must be 2 characters")
		}
		r.Filters.Airlines[i] = normalized
	}

	if pr := r.Filters.PriceRange; pr != nil {
		if pr.Min != nil && *pr.Min < 0 {
			errs.Add("filters.priceRange.min", "min must be a non-negative number")
		}
		if pr.Max != nil && *pr.Max < 0 {
			errs.Add("filters.priceRange.max", "max must be a non-negative number")
		}
		if pr.Min != nil && pr.Max != nil && *pr.Min > *pr.Max {
			errs.Add("filters.priceRange", "min must be less than or equal to max")
		}
	}
}

// validateDate checks a YYYY-MM-DD field. ok is true only for a present, valid date.
func validateDate(errs *ValidationErrors, field, value string, required bool) (t time.Time, ok bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return time.Time{}, false
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}, false
	}
	return t, true
}

// ValidateSelect checks the body of the select endpoint.
func (r *CalendarRequest) ValidateSelect() error {
	errs := &ValidationErrors{}
	validateDate(errs, "date", r.Date, true)
	return errs.orNil()
}

// ValidateAdvance checks the body of the advance endpoint.
func (r *CalendarRequest) ValidateAdvance() error {
	errs := &ValidationErrors{}
	if r.Months == 0 {
		errs.Add("months", "months must not be zero")
	} else if r.Months < -maxCalendarStep || r.Months > maxCalendarStep {
		errs.Add("months", fmt.Sprintf("months must be between -%d and %d", maxCalendarStep, maxCalendarStep))
	}
	return errs.orNil()
}

// ValidateTripType checks the body of the trip-type endpoint.
func (r *CalendarRequest) ValidateTripType() error {
	errs := &ValidationErrors{}
	if !domain.TripType(strings.ToLower(r.TripType)).IsValid() {
		errs.Add("tripType", "tripType must be one of: roundtrip, oneway")
	}
	return errs.orNil()
}

// validateState rejects a client-supplied picker state with an unknown trip type.
// Broken date ranges are repaired by the selector instead.
func validateState(s *calendar.State) error {
	if s == nil || s.TripType == "" || s.TripType.IsValid() {
		return nil
	}
	errs := &ValidationErrors{}
	errs.Add("state.tripType", "tripType must be one of: roundtrip, oneway")
	return errs
}
