// Package domain contains the core entities and rules for the flight search front end.
// These types are provider-agnostic: adapters translate upstream payloads into them and
// the HTTP layer renders them as-is.
package domain

import "strconv"

// FlightRecord is one displayable flight leg produced from an upstream itinerary.
// Records are built fresh for every search response and never mutated afterwards.
type FlightRecord struct {
	// ID is unique within one result set
	ID string `json:"id"`

	Departure FlightPoint `json:"departure"`
	Arrival   FlightPoint `json:"arrival"`

	// Airline is the marketing carrier name, falling back to the operating carrier
	Airline string `json:"airline"`

	// AirlineCode is the inferred short carrier code used for logo lookup (may be empty)
	AirlineCode string `json:"airlineCode"`

	// Logos lists logo URLs in the order the presentation layer should try them.
	// An empty list means "show the generic airplane icon".
	Logos []string `json:"logos"`

	// FlightNumber is the marketing carrier code followed by the flight number (e.g. "TK1")
	FlightNumber string `json:"flightNumber"`

	// Price is passed through verbatim from the upstream itinerary
	Price float64 `json:"price"`

	// Duration is formatted as "<H>h <M>m"
	Duration        string `json:"duration"`
	DurationMinutes int    `json:"durationMinutes"`

	Stops       int          `json:"stops"`
	StopsLabel  string       `json:"stopsLabel"`
	StopDetails []StopDetail `json:"stopDetails"`

	Aircraft       string       `json:"aircraft,omitempty"`
	CabinClass     CabinClass   `json:"cabinClass"`
	SeatsAvailable *int         `json:"seatsAvailable,omitempty"`
	Baggage        *BaggageInfo `json:"baggage,omitempty"`
	Refundable     *bool        `json:"refundable,omitempty"`
	Eco            *EcoInfo     `json:"eco,omitempty"`
}

// FlightPoint is the departure or arrival side of a leg.
type FlightPoint struct {
	// Airport is the display name of the airport
	Airport string `json:"airport"`

	// Code is the public airport code when upstream provides one
	Code string `json:"code,omitempty"`

	// Time is the local clock time in 24-hour "HH:mm" form
	Time string `json:"time"`

	Terminal string `json:"terminal,omitempty"`
	City     string `json:"city"`
}

// StopDetail describes one intermediate stop.
type StopDetail struct {
	Airport  string `json:"airport"`
	Duration string `json:"duration"`
}

// BaggageInfo contains baggage allowance information.
type BaggageInfo struct {
	CarryOn     bool `json:"carryOn"`
	CheckedBags int  `json:"checkedBags"`
}

// EcoInfo carries sustainability data when the upstream provides it.
type EcoInfo struct {
	// Emissions is "<amount> <unit>", e.g. "412 kg"
	Emissions string `json:"emissions"`

	// Comparison is the upstream's relative figure, e.g. "-12%"
	Comparison string `json:"comparison,omitempty"`
}

// FormatDuration renders minutes as "<H>h <M>m". 125 becomes "2h 5m" and 60 becomes "1h 0m".
// Non-positive durations render as an empty string.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return strconv.Itoa(minutes/60) + "h " + strconv.Itoa(minutes%60) + "m"
}

// StopsLabel is the summary shown on a result card.
func StopsLabel(stops int) string {
	switch {
	case stops <= 0:
		return "Nonstop"
	case stops == 1:
		return "1 stop"
	default:
		return strconv.Itoa(stops) + " stops"
	}
}
