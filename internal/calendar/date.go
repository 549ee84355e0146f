package calendar

import (
	"fmt"
	"time"

	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/flight-search/flight-search-web/internal/infrastructure/timeutil"
)

// Date is a civil calendar date with no time or zone. The zero value means "unset".
// It marshals as "YYYY-MM-DD".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalized date, so NewDate(2025, 1, 32) is February 1st.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the date t falls on in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate that panics on error. Use it only on validated input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether d is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	return d.time().Compare(o.time())
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return d.time().Weekday()
}

// MonthOf returns the calendar month containing d.
func (d Date) MonthOf() Month {
	return Month{Year: d.Year, Month: d.Month}
}

func (d Date) String() string {
	return timeutil.FormatDate(d.time())
}

// MarshalText implements encoding.TextMarshaler. The zero Date marshals as "".
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty string yields the zero Date.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Month identifies one calendar month. It marshals as "YYYY-MM".
type Month struct {
	Year  int
	Month time.Month
}

const monthLayout = "2006-01"

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) first() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths shifts m by n calendar months (n may be negative).
func (m Month) AddMonths(n int) Month {
	t := m.first().AddDate(0, n, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Before reports whether m is strictly before o.
func (m Month) Before(o Month) bool {
	return m.first().Before(o.first())
}

// Days returns the number of days in m.
func (m Month) Days() int {
	return m.first().AddDate(0, 1, -1).Day()
}

// FirstDay returns the first date of m.
func (m Month) FirstDay() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

// IsZero reports whether m is unset.
func (m Month) IsZero() bool {
	return m == Month{}
}

func (m Month) String() string {
	return m.first().Format(monthLayout)
}

// MarshalText implements encoding.TextMarshaler. The zero Month marshals as "".
func (m Month) MarshalText() ([]byte, error) {
	if m.IsZero() {
		return []byte{}, nil
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty string yields the zero Month.
func (m *Month) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*m = Month{}
		return nil
	}
	parsed, err := ParseMonth(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
