package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchResponse(t *testing.T) {
	req := &SearchRequest{
		Origin:      "Istanbul",
		Destination: "New York",
		DepartDate:  "2025-06-01",
		TripType:    TripOneway,
		Passengers:  Passengers{Adults: 2, Children: 1},
		CabinClass:  CabinBusiness,
		Currency:    "USD",
	}

	tests := []struct {
		name        string
		flights     []FlightRecord
		wantCount   int
		wantMessage string
	}{
		{
			name:      "creates response with flights",
			flights:   []FlightRecord{{ID: "a"}, {ID: "b"}},
			wantCount: 2,
		},
		{
			name:        "nil flights become an empty list",
			flights:     nil,
			wantCount:   0,
			wantMessage: NoFlightsMessage,
		},
		{
			name:        "empty flights carry the message",
			flights:     []FlightRecord{},
			wantCount:   0,
			wantMessage: NoFlightsMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewSearchResponse(req, "IST", "JFK", tt.flights, SearchMetadata{SearchTimeMs: 42})

			require.NotNil(t, resp.Flights)
			assert.Len(t, resp.Flights, tt.wantCount)
			assert.Equal(t, tt.wantCount, resp.Metadata.TotalResults)
			assert.Equal(t, int64(42), resp.Metadata.SearchTimeMs)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestNewSearchResponse_Criteria(t *testing.T) {
	req := &SearchRequest{
		DepartDate: "2025-06-01",
		ReturnDate: "2025-06-10",
		TripType:   TripRoundtrip,
		Passengers: Passengers{Adults: 2, Infants: 1},
		CabinClass: CabinEconomy,
		Currency:   "EUR",
	}

	resp := NewSearchResponse(req, "IST", "JFK", nil, SearchMetadata{})

	assert.Equal(t, SearchCriteria{
		Origin:      "IST",
		Destination: "JFK",
		DepartDate:  "2025-06-01",
		ReturnDate:  "2025-06-10",
		TripType:    TripRoundtrip,
		Passengers:  3,
		CabinClass:  CabinEconomy,
		Currency:    "EUR",
	}, resp.SearchCriteria)
}
