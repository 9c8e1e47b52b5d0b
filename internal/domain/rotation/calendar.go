// Package rotation holds the planning arithmetic: month grids, week cycles,
// template row selection and range expansion. Everything here is a pure
// function of its arguments.
package rotation

import (
	"encoding/json"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
)

// Week is one row of a month grid, Monday first. A zero entry is a padding
// cell before the first or after the last day of the month.
type Week [7]int

// MarshalJSON renders padding cells as null.
func (w Week) MarshalJSON() ([]byte, error) {
	cells := make([]*int, len(w))
	for i := range w {
		if w[i] != 0 {
			day := w[i]
			cells[i] = &day
		}
	}
	return json.Marshal(cells)
}

// MonthGrid lays out a month in Monday-first weeks of seven cells.
// Saturday and Sunday are part of the grid; callers decide whether to
// render them.
func MonthGrid(year int, month time.Month) []Week {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	lead := domain.ISOWeekday(first.Weekday()) - 1

	weeks := make([]Week, (lead+daysInMonth+6)/7)
	for day := 1; day <= daysInMonth; day++ {
		pos := lead + day - 1
		weeks[pos/7][pos%7] = day
	}
	return weeks
}

// MonthGridZeroBased is MonthGrid for a 0-11 month index.
func MonthGridZeroBased(year, month int) []Week {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	return MonthGrid(first.Year(), first.Month())
}

// WeekOfMonth returns the 1-based week of a day of the month: ceil(day/7).
func WeekOfMonth(day int) int {
	return (day + 6) / 7
}

// mondayOf returns the civil date of the Monday starting d's ISO week.
func mondayOf(d time.Time) time.Time {
	d = domain.CivilDate(d)
	return d.AddDate(0, 0, 1-domain.ISOWeekday(d.Weekday()))
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(domain.CivilDate(b).Sub(domain.CivilDate(a)).Hours() / 24)
}

// ISOWeeksBetween counts the ISO weeks between the week of start and the
// week of d. It matches isoWeek(d) - isoWeek(start) inside one ISO year and
// keeps counting across year boundaries.
func ISOWeeksBetween(start, d time.Time) int {
	return floorDiv(daysBetween(mondayOf(start), mondayOf(d)), 7)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
