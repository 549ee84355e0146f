package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name          string
		totalMinutes  int
		wantFormatted string
	}{
		{
			name:          "hours and minutes",
			totalMinutes:  125, // 2h 5m
			wantFormatted: "2h 5m",
		},
		{
			name:          "whole hour keeps zero minutes",
			totalMinutes:  60,
			wantFormatted: "1h 0m",
		},
		{
			name:          "under an hour",
			totalMinutes:  45,
			wantFormatted: "0h 45m",
		},
		{
			name:          "long haul",
			totalMinutes:  660,
			wantFormatted: "11h 0m",
		},
		{
			name:          "zero renders empty",
			totalMinutes:  0,
			wantFormatted: "",
		},
		{
			name:          "negative renders empty",
			totalMinutes:  -5,
			wantFormatted: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFormatted, FormatDuration(tt.totalMinutes))
		})
	}
}

func TestStopsLabel(t *testing.T) {
	tests := []struct {
		stops int
		want  string
	}{
		{stops: 0, want: "Nonstop"},
		{stops: 1, want: "1 stop"},
		{stops: 2, want: "2 stops"},
		{stops: 3, want: "3 stops"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, StopsLabel(tt.stops))
		})
	}
}
