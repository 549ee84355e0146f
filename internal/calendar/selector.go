// Package calendar implements the two-month date range picker used by the search form.
//
// The picker state is a plain value. Every transition takes a State and returns a
// new one, leaving the input untouched; the client holds the current State and sends
// it back with each interaction.
package calendar

import (
	"time"

	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/flight-search/flight-search-web/internal/infrastructure/timeutil"
)

// Phase summarises how far the user is through picking a range.
type Phase string

// Selection phases.
const (
	PhaseEmpty     Phase = "EMPTY"
	PhaseDepartSet Phase = "DEPART_SET"
	PhaseBothSet   Phase = "BOTH_SET"
)

// State is the picker state round-tripped by the client.
// Invariant: Return != nil implies Depart != nil and !Return.Before(*Depart).
type State struct {
	// CurrentMonth anchors the window; the picker shows it and the month after
	CurrentMonth Month `json:"currentMonth"`

	Depart *Date `json:"departDate,omitempty"`
	Return *Date `json:"returnDate,omitempty"`

	TripType domain.TripType `json:"tripType"`
	Open     bool            `json:"open"`
}

// Phase reports the selection phase of s.
func (s State) Phase() Phase {
	switch {
	case s.Depart == nil:
		return PhaseEmpty
	case s.Return == nil:
		return PhaseDepartSet
	default:
		return PhaseBothSet
	}
}

// InRange reports whether d lies strictly between the departure and return dates.
func (s State) InRange(d Date) bool {
	if s.Depart == nil || s.Return == nil {
		return false
	}
	return d.After(*s.Depart) && d.Before(*s.Return)
}

// IsSelected reports whether d is the departure or the return date.
func (s State) IsSelected(d Date) bool {
	return (s.Depart != nil && *s.Depart == d) || (s.Return != nil && *s.Return == d)
}

// Selector applies picker transitions relative to "today" in a fixed calendar zone.
type Selector struct {
	clock timeutil.Clock
	loc   *time.Location
}

// NewSelector creates a Selector. A nil location means UTC.
func NewSelector(clock timeutil.Clock, loc *time.Location) *Selector {
	if loc == nil {
		loc = time.UTC
	}
	return &Selector{clock: clock, loc: loc}
}

// Today returns the current date in the selector's zone.
func (sel *Selector) Today() Date {
	return DateOf(timeutil.TodayIn(sel.clock, sel.loc))
}

// Initial returns a closed round-trip picker anchored on the current month.
func (sel *Selector) Initial() State {
	return State{
		CurrentMonth: sel.Today().MonthOf(),
		TripType:     domain.TripRoundtrip,
	}
}

// Normalize fills defaults on a client-supplied state and repairs a broken range.
// A state whose return date precedes its departure keeps only the departure.
func (sel *Selector) Normalize(s State) State {
	if s.CurrentMonth.IsZero() {
		s.CurrentMonth = sel.Today().MonthOf()
	}
	if !s.TripType.IsValid() {
		s.TripType = domain.TripRoundtrip
	}
	if s.Depart == nil || (s.Return != nil && s.Return.Before(*s.Depart)) {
		s.Return = nil
	}
	return s
}

// Select applies a click on day d.
//
// Past days are ignored. With nothing or a full range selected, d starts a new range.
// With only a departure selected, an earlier d replaces the departure and any other d
// becomes the return date; for one-way trips that assignment also closes the picker.
func (sel *Selector) Select(s State, d Date) State {
	if d.Before(sel.Today()) {
		return s
	}

	switch s.Phase() {
	case PhaseEmpty, PhaseBothSet:
		s.Depart = datePtr(d)
		s.Return = nil
	case PhaseDepartSet:
		if d.Before(*s.Depart) {
			s.Depart = datePtr(d)
			s.Return = nil
			return s
		}
		s.Return = datePtr(d)
		if s.TripType == domain.TripOneway {
			s.Open = false
		}
	}
	return s
}

// AdvanceMonth moves the window by n months. The window never starts before the
// current month.
func (sel *Selector) AdvanceMonth(s State, n int) State {
	floor := sel.Today().MonthOf()
	next := s.CurrentMonth.AddMonths(n)
	if next.Before(floor) {
		next = floor
	}
	s.CurrentMonth = next
	return s
}

// Reset clears both dates and keeps the window and trip type.
func Reset(s State) State {
	s.Depart = nil
	s.Return = nil
	return s
}

// Open shows the picker.
func Open(s State) State {
	s.Open = true
	return s
}

// Close hides the picker.
func Close(s State) State {
	s.Open = false
	return s
}

// SetTripType switches between one-way and round trip. Switching to one-way drops
// the return date.
func SetTripType(s State, t domain.TripType) State {
	s.TripType = t
	if t == domain.TripOneway {
		s.Return = nil
	}
	return s
}

func datePtr(d Date) *Date {
	return &d
}
