package http

import (
	"github.com/flight-search/flight-search-web/internal/calendar"
	"github.com/flight-search/flight-search-web/internal/domain"
)

// AirportDTO is one autocomplete entry. Label is the text the input shows once
// the entry is picked, e.g. "Istanbul (IST)".
type AirportDTO struct {
	domain.Airport
	Label string `json:"label" example:"Istanbul (IST)"`
}

// SuggestionsDTO is the response of the airport autocomplete endpoint.
type SuggestionsDTO struct {
	Field    domain.AirportField `json:"field" example:"origin"`
	Query    string              `json:"query" example:"ista"`
	Airports []AirportDTO        `json:"airports"`

	// Stale is true when a newer lookup for the same field superseded this one
	Stale bool `json:"stale"`
}

// CalendarResponse is returned by every calendar endpoint. View.State is the
// state the client sends back with its next interaction.
type CalendarResponse struct {
	View calendar.View `json:"view"`
}
