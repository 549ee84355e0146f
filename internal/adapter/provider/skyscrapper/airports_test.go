package skyscrapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAirports(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		limit     int
		wantCodes []string
	}{
		{
			name:      "falsy status",
			body:      `{"status":false,"data":[{"skyId":"IST","presentation":{"title":"Istanbul"}}]}`,
			limit:     10,
			wantCodes: []string{},
		},
		{
			name:      "data is not a list",
			body:      `{"status":true,"data":{"skyId":"IST"}}`,
			limit:     10,
			wantCodes: []string{},
		},
		{
			name:      "not json",
			body:      `Too many requests`,
			limit:     10,
			wantCodes: []string{},
		},
		{
			name: "drops entries without code or name",
			body: `{"status":true,"data":[
				{"skyId":"IST","presentation":{"title":"Istanbul"}},
				{"presentation":{"title":"Somewhere"}},
				{"skyId":"XXX"},
				"garbage",
				{"skyId":"SAW","presentation":{"suggestionTitle":"Sabiha Gokcen (SAW)"}}
			]}`,
			limit:     10,
			wantCodes: []string{"IST", "SAW"},
		},
		{
			name: "caps at limit",
			body: `{"status":true,"data":[
				{"skyId":"A1","presentation":{"title":"A"}},
				{"skyId":"B1","presentation":{"title":"B"}},
				{"skyId":"C1","presentation":{"title":"C"}}
			]}`,
			limit:     2,
			wantCodes: []string{"A1", "B1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			airports := parseAirports([]byte(tt.body), tt.limit)

			require.NotNil(t, airports)
			codes := []string{}
			for _, a := range airports {
				codes = append(codes, a.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestParseAirports_OptionalFields(t *testing.T) {
	body := `{"status":true,"data":[
		{"skyId":"JFK","entityId":"95565058","presentation":{"title":"New York John F. Kennedy","subtitle":"United States"},
		 "navigation":{"relevantFlightParams":{"distance":12.5}}},
		{"skyId":"LGA","presentation":{"title":"New York LaGuardia"},
		 "navigation":{"entityId":"95565057","relevantFlightParams":{"distance":"far"}}}
	]}`

	airports := parseAirports([]byte(body), 10)

	require.Len(t, airports, 2)

	assert.Equal(t, "95565058", airports[0].EntityID, "falls back to top-level entityId")
	require.NotNil(t, airports[0].Distance)
	assert.Equal(t, 12.5, *airports[0].Distance)
	assert.Equal(t, "United States", airports[0].Country)

	assert.Equal(t, "95565057", airports[1].EntityID)
	assert.Nil(t, airports[1].Distance, "non-numeric distance is ignored")
	assert.Equal(t, "New York LaGuardia (LGA)", airports[1].Label())
}
