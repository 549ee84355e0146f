package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CabinClass is the requested travel class.
type CabinClass string

// Supported cabin classes.
const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// IsValid checks if the cabin class is one of the supported values.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// TripType selects between a single and a return journey.
type TripType string

// Supported trip types.
const (
	TripRoundtrip TripType = "roundtrip"
	TripOneway    TripType = "oneway"
)

// IsValid checks if the trip type is one of the supported values.
func (t TripType) IsValid() bool {
	return t == TripRoundtrip || t == TripOneway
}

// PassengerType names one of the passenger counters on the search form.
type PassengerType string

// Passenger types.
const (
	PassengerAdults     PassengerType = "adults"
	PassengerChildren   PassengerType = "children"
	PassengerInfants    PassengerType = "infants"
	PassengerLapInfants PassengerType = "lapInfants"
)

// Passenger counter limits.
const (
	MinAdults          = 1
	MaxAdults          = 9
	MaxOtherPassengers = 8
)

// Passengers is the per-type passenger breakdown from the search form.
// Increment and Decrement return a new value and clamp at the limits.
type Passengers struct {
	Adults     int `json:"adults"`
	Children   int `json:"children"`
	Infants    int `json:"infants"`
	LapInfants int `json:"lapInfants"`
}

// DefaultPassengers is one adult travelling alone.
func DefaultPassengers() Passengers {
	return Passengers{Adults: MinAdults}
}

// Total is the number of travellers across all types.
func (p Passengers) Total() int {
	return p.Adults + p.Children + p.Infants + p.LapInfants
}

// Increment adds one passenger of the given type, up to its maximum.
func (p Passengers) Increment(kind PassengerType) Passengers {
	switch kind {
	case PassengerAdults:
		p.Adults = min(p.Adults+1, MaxAdults)
	case PassengerChildren:
		p.Children = min(p.Children+1, MaxOtherPassengers)
	case PassengerInfants:
		p.Infants = min(p.Infants+1, MaxOtherPassengers)
	case PassengerLapInfants:
		p.LapInfants = min(p.LapInfants+1, MaxOtherPassengers)
	}
	return p
}

// Decrement removes one passenger of the given type, down to its minimum.
func (p Passengers) Decrement(kind PassengerType) Passengers {
	switch kind {
	case PassengerAdults:
		p.Adults = max(p.Adults-1, MinAdults)
	case PassengerChildren:
		p.Children = max(p.Children-1, 0)
	case PassengerInfants:
		p.Infants = max(p.Infants-1, 0)
	case PassengerLapInfants:
		p.LapInfants = max(p.LapInfants-1, 0)
	}
	return p
}

// Validate checks every counter against its limits.
func (p Passengers) Validate() error {
	if p.Adults < MinAdults || p.Adults > MaxAdults {
		return fmt.Errorf("%w: adults must be between %d and %d", ErrInvalidRequest, MinAdults, MaxAdults)
	}
	others := []struct {
		kind  PassengerType
		count int
	}{
		{PassengerChildren, p.Children},
		{PassengerInfants, p.Infants},
		{PassengerLapInfants, p.LapInfants},
	}
	for _, o := range others {
		if o.count < 0 || o.count > MaxOtherPassengers {
			return fmt.Errorf("%w: %s must be between 0 and %d", ErrInvalidRequest, o.kind, MaxOtherPassengers)
		}
	}
	return nil
}

// SearchRequest is a fully specified search submitted from the form.
type SearchRequest struct {
	// Origin is free text or an airport code (e.g. "Istanbul" or "IST")
	Origin string `json:"origin"`

	// Destination is free text or an airport code
	Destination string `json:"destination"`

	// DepartDate is required, YYYY-MM-DD
	DepartDate string `json:"departDate"`

	// ReturnDate is only meaningful for round trips, YYYY-MM-DD
	ReturnDate string `json:"returnDate,omitempty"`

	TripType   TripType   `json:"tripType"`
	Passengers Passengers `json:"passengers"`
	CabinClass CabinClass `json:"cabinClass"`
	Currency   string     `json:"currency,omitempty"`

	Filters *FilterOptions `json:"filters,omitempty"`
}

// PassengerCount is the single passenger figure sent upstream.
// The upstream only accepts an adults count, so the whole party is summed into it.
func (r *SearchRequest) PassengerCount() int {
	return r.Passengers.Total()
}

// SetDefaults applies default values to empty optional fields.
func (r *SearchRequest) SetDefaults(currency string) {
	r.Origin = strings.TrimSpace(r.Origin)
	r.Destination = strings.TrimSpace(r.Destination)
	if r.TripType == "" {
		r.TripType = TripRoundtrip
	}
	if r.CabinClass == "" {
		r.CabinClass = CabinEconomy
	}
	if r.Passengers == (Passengers{}) {
		r.Passengers = DefaultPassengers()
	}
	if r.Currency == "" {
		r.Currency = currency
	}
	r.Currency = strings.ToUpper(r.Currency)
	if r.TripType == TripOneway {
		r.ReturnDate = ""
	}
}

// Validate checks if the search request is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (r *SearchRequest) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if r.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}

	if r.DepartDate == "" {
		return fmt.Errorf("%w: departDate is required", ErrInvalidRequest)
	}
	depart, err := time.Parse(DateLayout, r.DepartDate)
	if err != nil {
		return fmt.Errorf("%w: departDate must be a valid YYYY-MM-DD date, got %q", ErrInvalidRequest, r.DepartDate)
	}

	if !r.TripType.IsValid() {
		return fmt.Errorf("%w: tripType must be one of: roundtrip, oneway; got %q", ErrInvalidRequest, r.TripType)
	}

	if r.ReturnDate != "" && r.TripType == TripRoundtrip {
		ret, err := time.Parse(DateLayout, r.ReturnDate)
		if err != nil {
			return fmt.Errorf("%w: returnDate must be a valid YYYY-MM-DD date, got %q", ErrInvalidRequest, r.ReturnDate)
		}
		if ret.Before(depart) {
			return fmt.Errorf("%w: returnDate must not be before departDate", ErrInvalidRequest)
		}
	}

	if err := r.Passengers.Validate(); err != nil {
		return err
	}

	if !r.CabinClass.IsValid() {
		return fmt.Errorf("%w: cabinClass must be one of: economy, premium_economy, business, first; got %q", ErrInvalidRequest, r.CabinClass)
	}

	if r.Filters != nil {
		if err := r.Filters.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ItineraryQuery is the upstream search request built from a resolved SearchRequest.
type ItineraryQuery struct {
	OriginSkyID         string
	DestinationSkyID    string
	OriginEntityID      string
	DestinationEntityID string
	Date                string
	ReturnDate          string
	Adults              int
	CabinClass          string
	Currency            string
	Market              string
}

// NewItineraryQuery builds the upstream query from a validated request and the two
// resolved airports.
func NewItineraryQuery(req *SearchRequest, from, to Airport, market string) ItineraryQuery {
	q := ItineraryQuery{
		OriginSkyID:         from.Code,
		DestinationSkyID:    to.Code,
		OriginEntityID:      from.EntityID,
		DestinationEntityID: to.EntityID,
		Date:                req.DepartDate,
		Adults:              req.PassengerCount(),
		CabinClass:          strings.ToLower(string(req.CabinClass)),
		Currency:            req.Currency,
		Market:              market,
	}
	if req.TripType == TripRoundtrip {
		q.ReturnDate = req.ReturnDate
	}
	return q
}
