package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRequest() SearchRequest {
	return SearchRequest{
		Origin:      "Istanbul",
		Destination: "JFK",
		DepartDate:  "2025-06-01",
		ReturnDate:  "2025-06-10",
		TripType:    TripRoundtrip,
		Passengers:  DefaultPassengers(),
		CabinClass:  CabinEconomy,
		Currency:    "USD",
	}
}

func TestSearchRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(r *SearchRequest)
		wantErr   bool
		errSubstr string
	}{
		{name: "valid round trip", modify: func(r *SearchRequest) {}},
		{name: "valid one way", modify: func(r *SearchRequest) { r.TripType = TripOneway; r.ReturnDate = "" }},
		{name: "same day return", modify: func(r *SearchRequest) { r.ReturnDate = r.DepartDate }},
		{name: "round trip without return date", modify: func(r *SearchRequest) { r.ReturnDate = "" }},
		{name: "missing origin", modify: func(r *SearchRequest) { r.Origin = "" }, wantErr: true, errSubstr: "origin"},
		{name: "missing destination", modify: func(r *SearchRequest) { r.Destination = "" }, wantErr: true, errSubstr: "destination"},
		{name: "missing depart date", modify: func(r *SearchRequest) { r.DepartDate = "" }, wantErr: true, errSubstr: "departDate is required"},
		{name: "malformed depart date", modify: func(r *SearchRequest) { r.DepartDate = "01/06/2025" }, wantErr: true, errSubstr: "departDate"},
		{name: "impossible depart date", modify: func(r *SearchRequest) { r.DepartDate = "2025-02-30" }, wantErr: true, errSubstr: "departDate"},
		{name: "return before depart", modify: func(r *SearchRequest) { r.ReturnDate = "2025-05-31" }, wantErr: true, errSubstr: "returnDate"},
		{name: "malformed return date", modify: func(r *SearchRequest) { r.ReturnDate = "soon" }, wantErr: true, errSubstr: "returnDate"},
		{name: "unknown trip type", modify: func(r *SearchRequest) { r.TripType = "multicity" }, wantErr: true, errSubstr: "tripType"},
		{name: "unknown cabin", modify: func(r *SearchRequest) { r.CabinClass = "luxury" }, wantErr: true, errSubstr: "cabinClass"},
		{name: "no adults", modify: func(r *SearchRequest) { r.Passengers.Adults = 0 }, wantErr: true, errSubstr: "adults"},
		{name: "too many children", modify: func(r *SearchRequest) { r.Passengers.Children = 9 }, wantErr: true, errSubstr: "children"},
		{name: "invalid filters", modify: func(r *SearchRequest) { r.Filters = &FilterOptions{MaxStops: intPtr(-2)} }, wantErr: true, errSubstr: "maxStops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRequest))
				assert.Contains(t, err.Error(), tt.errSubstr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchRequest_SetDefaults(t *testing.T) {
	req := SearchRequest{
		Origin:      "  Istanbul ",
		Destination: "JFK",
		DepartDate:  "2025-06-01",
	}

	req.SetDefaults("usd")

	assert.Equal(t, "Istanbul", req.Origin)
	assert.Equal(t, TripRoundtrip, req.TripType)
	assert.Equal(t, CabinEconomy, req.CabinClass)
	assert.Equal(t, DefaultPassengers(), req.Passengers)
	assert.Equal(t, "USD", req.Currency)
}

func TestSearchRequest_SetDefaults_OnewayDropsReturn(t *testing.T) {
	req := validRequest()
	req.TripType = TripOneway

	req.SetDefaults("USD")

	assert.Empty(t, req.ReturnDate)
}

func TestSearchRequest_SetDefaults_KeepsExplicitValues(t *testing.T) {
	req := validRequest()
	req.CabinClass = CabinFirst
	req.Currency = "EUR"

	req.SetDefaults("USD")

	assert.Equal(t, CabinFirst, req.CabinClass)
	assert.Equal(t, "EUR", req.Currency)
}

func TestPassengers_IncrementDecrement(t *testing.T) {
	tests := []struct {
		name string
		from Passengers
		op   func(Passengers) Passengers
		want Passengers
	}{
		{
			name: "add adult",
			from: Passengers{Adults: 1},
			op:   func(p Passengers) Passengers { return p.Increment(PassengerAdults) },
			want: Passengers{Adults: 2},
		},
		{
			name: "adults clamp at nine",
			from: Passengers{Adults: 9},
			op:   func(p Passengers) Passengers { return p.Increment(PassengerAdults) },
			want: Passengers{Adults: 9},
		},
		{
			name: "adults never drop below one",
			from: Passengers{Adults: 1},
			op:   func(p Passengers) Passengers { return p.Decrement(PassengerAdults) },
			want: Passengers{Adults: 1},
		},
		{
			name: "children clamp at eight",
			from: Passengers{Adults: 1, Children: 8},
			op:   func(p Passengers) Passengers { return p.Increment(PassengerChildren) },
			want: Passengers{Adults: 1, Children: 8},
		},
		{
			name: "infants never negative",
			from: Passengers{Adults: 1},
			op:   func(p Passengers) Passengers { return p.Decrement(PassengerInfants) },
			want: Passengers{Adults: 1},
		},
		{
			name: "lap infant added",
			from: Passengers{Adults: 1},
			op:   func(p Passengers) Passengers { return p.Increment(PassengerLapInfants) },
			want: Passengers{Adults: 1, LapInfants: 1},
		},
		{
			name: "unknown type is ignored",
			from: Passengers{Adults: 2},
			op:   func(p Passengers) Passengers { return p.Increment("pets") },
			want: Passengers{Adults: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(tt.from)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPassengers_IncrementIsPure(t *testing.T) {
	p := Passengers{Adults: 1}
	_ = p.Increment(PassengerChildren)

	assert.Equal(t, Passengers{Adults: 1}, p)
}

func TestSearchRequest_PassengerCount(t *testing.T) {
	req := SearchRequest{Passengers: Passengers{Adults: 2, Children: 1, Infants: 1, LapInfants: 1}}

	assert.Equal(t, 5, req.PassengerCount())
}

func TestNewItineraryQuery(t *testing.T) {
	from := Airport{Code: "IST", EntityID: "95673383"}
	to := Airport{Code: "JFK", EntityID: "95565058"}

	t.Run("round trip keeps return date", func(t *testing.T) {
		req := validRequest()
		req.CabinClass = CabinPremiumEconomy
		req.Passengers = Passengers{Adults: 2, Children: 1}

		q := NewItineraryQuery(&req, from, to, "en-US")

		assert.Equal(t, ItineraryQuery{
			OriginSkyID:         "IST",
			DestinationSkyID:    "JFK",
			OriginEntityID:      "95673383",
			DestinationEntityID: "95565058",
			Date:                "2025-06-01",
			ReturnDate:          "2025-06-10",
			Adults:              3,
			CabinClass:          "premium_economy",
			Currency:            "USD",
			Market:              "en-US",
		}, q)
	})

	t.Run("one way drops return date", func(t *testing.T) {
		req := validRequest()
		req.TripType = TripOneway

		q := NewItineraryQuery(&req, from, to, "en-US")

		assert.Empty(t, q.ReturnDate)
	})
}
