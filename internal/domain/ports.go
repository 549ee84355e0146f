package domain

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

import "context"

// AirportDirectory turns free text into candidate airports.
type AirportDirectory interface {
	// Lookup returns at most MaxAirportSuggestions airports, best match first.
	// An empty slice with nil error means nothing matched.
	Lookup(ctx context.Context, query string) ([]Airport, error)
}

// ItinerarySource fetches raw itinerary payloads from the flight-search API.
// The payload is returned undecoded because its shape is not guaranteed.
type ItinerarySource interface {
	SearchItineraries(ctx context.Context, query ItineraryQuery) ([]byte, error)
}
