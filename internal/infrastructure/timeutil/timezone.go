package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores loaded timezone locations keyed by IANA name.
var locationCache sync.Map

// UTC is the default calendar zone.
const UTC = "UTC"

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// TodayIn returns the calendar date the clock reads in loc, at midnight.
func TodayIn(clock Clock, loc *time.Location) time.Time {
	return StartOfDay(clock.Now().In(loc))
}

// wallClockLayouts are the zone-less forms accepted after RFC 3339. Fractional
// seconds are accepted by the layouts that carry seconds.
var wallClockLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04Z07:00",
}

// ParseWallClock parses an upstream timestamp. Values with an offset keep it;
// zone-less values, with or without seconds, are read as wall-clock time in UTC.
func ParseWallClock(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	for _, layout := range wallClockLayouts {
		if parsed, layoutErr := time.Parse(layout, value); layoutErr == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q: %w", value, err)
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTime formats a time as 24-hour HH:MM.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// StartOfDay returns the start of the day (00:00:00) for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ClearLocationCache clears the cached timezone locations.
func ClearLocationCache() {
	locationCache.Range(func(key, _ any) bool {
		locationCache.Delete(key)
		return true
	})
}
