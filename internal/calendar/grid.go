package calendar

import "time"

// WeekdayLabels are the column headers, Monday first.
var WeekdayLabels = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// DayCell is one real day in a month grid.
type DayCell struct {
	Date Date `json:"date"`
	Day  int  `json:"day"`

	Selected bool `json:"selected"`
	IsToday  bool `json:"isToday"`

	// InRange is never set on a selected cell
	InRange bool `json:"inRange"`

	// Disabled marks days before today
	Disabled bool `json:"disabled"`
}

// MonthGrid is one rendered month.
type MonthGrid struct {
	Month Month  `json:"month"`
	Title string `json:"title"`

	// Offset is the number of blank cells before day 1 in a Monday-first week
	Offset int `json:"offset"`

	Days []DayCell `json:"days"`
}

// View is everything the picker needs to draw itself.
type View struct {
	State    State       `json:"state"`
	Phase    Phase       `json:"phase"`
	Today    Date        `json:"today"`
	Weekdays []string    `json:"weekdays"`
	Months   []MonthGrid `json:"months"`
}

// mondayIndex maps Go's Sunday-first weekday to a Monday-first column.
func mondayIndex(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// Month renders the grid for m under state s.
func (sel *Selector) Month(s State, m Month) MonthGrid {
	today := sel.Today()
	first := m.FirstDay()

	grid := MonthGrid{
		Month:  m,
		Title:  m.first().Format("January 2006"),
		Offset: mondayIndex(first.Weekday()),
		Days:   make([]DayCell, 0, m.Days()),
	}

	for day := 1; day <= m.Days(); day++ {
		d := Date{Year: m.Year, Month: m.Month, Day: day}
		selected := s.IsSelected(d)
		grid.Days = append(grid.Days, DayCell{
			Date:     d,
			Day:      day,
			Selected: selected,
			IsToday:  d == today,
			InRange:  !selected && s.InRange(d),
			Disabled: d.Before(today),
		})
	}

	return grid
}

// View renders the two-month window anchored at s.CurrentMonth.
func (sel *Selector) View(s State) View {
	return View{
		State:    s,
		Phase:    s.Phase(),
		Today:    sel.Today(),
		Weekdays: WeekdayLabels,
		Months: []MonthGrid{
			sel.Month(s, s.CurrentMonth),
			sel.Month(s, s.CurrentMonth.AddMonths(1)),
		},
	}
}
