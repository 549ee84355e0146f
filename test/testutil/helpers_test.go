package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTestJSON(t *testing.T) {
	tests := []struct {
		name          string
		filename      string
		shouldContain string
	}{
		{
			name:          "itineraries",
			filename:      "itineraries_ist_jfk.json",
			shouldContain: "Turkish Airlines",
		},
		{
			name:          "istanbul airports",
			filename:      "airports_istanbul.json",
			shouldContain: "95673383",
		},
		{
			name:          "new york airports",
			filename:      "airports_new_york.json",
			shouldContain: "LGA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := LoadTestJSON(t, tt.filename)
			assert.True(t, json.Valid(data), "fixture must be valid JSON")
			assert.Contains(t, string(data), tt.shouldContain)
		})
	}
}

func TestFixedClock(t *testing.T) {
	clock := FixedClock(t, "2025-05-20T10:00:00+03:00")

	first := clock.Now()
	second := clock.Now()

	assert.Equal(t, first, second)
	assert.Equal(t, "2025-05-20T07:00:00Z", first.UTC().Format(time.RFC3339))
}

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{
			name:      "valid date",
			dateStr:   "2025-06-01",
			wantYear:  2025,
			wantMonth: time.June,
			wantDay:   1,
		},
		{
			name:      "leap year date",
			dateStr:   "2024-02-29",
			wantYear:  2024,
			wantMonth: time.February,
			wantDay:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
		})
	}
}

func TestPtr(t *testing.T) {
	intVal := Ptr(42)
	require.NotNil(t, intVal)
	assert.Equal(t, 42, *intVal)

	floatVal := Ptr(99.5)
	require.NotNil(t, floatVal)
	assert.Equal(t, 99.5, *floatVal)

	*intVal = 7
	assert.Equal(t, 7, *intVal, "each call returns an independent pointer")
	assert.Equal(t, 42, *Ptr(42))
}
