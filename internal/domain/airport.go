package domain

// Airport is one candidate returned by the airport directory.
// Identity is Code; values are immutable once built.
type Airport struct {
	// Code is the public airport code (upstream skyId), e.g. "IST"
	Code string `json:"code"`

	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`

	// Type is the upstream entity type, e.g. "AIRPORT" or "CITY"
	Type string `json:"type,omitempty"`

	Distance *float64 `json:"distance,omitempty"`

	// EntityID is the upstream's internal identifier, required for itinerary search
	EntityID string `json:"entityId"`
}

// MaxAirportSuggestions caps the candidates returned for one query.
const MaxAirportSuggestions = 10

// MinAirportQueryLength is the shortest query that triggers an upstream lookup.
const MinAirportQueryLength = 2

// Label is the text shown in the autocomplete list, e.g. "Istanbul Airport (IST)".
func (a Airport) Label() string {
	return a.Name + " (" + a.Code + ")"
}

// AirportField names the form input an autocomplete query belongs to.
type AirportField string

// Autocomplete fields.
const (
	AirportFieldOrigin      AirportField = "origin"
	AirportFieldDestination AirportField = "destination"
)

// IsValid reports whether f is a known field.
func (f AirportField) IsValid() bool {
	return f == AirportFieldOrigin || f == AirportFieldDestination
}
