package rotation

import (
	"strings"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
)

// WeekScheme numbers weeks for week-of-month templates. WeekIndex is
// 0-based and may be negative; the resolver wraps it by the row count.
type WeekScheme interface {
	WeekIndex(date time.Time) int
}

// MonthWeeks numbers weeks by their position inside the month
// (days 1-7 are week 0, 8-14 week 1, ...). Used by the calendar view.
type MonthWeeks struct{}

func (MonthWeeks) WeekIndex(date time.Time) int {
	return WeekOfMonth(date.Day()) - 1
}

// ElapsedWeeks numbers weeks by the ISO weeks elapsed since Start. Used by
// the planning generator so the first generated week is always row 1.
type ElapsedWeeks struct {
	Start time.Time
}

func (s ElapsedWeeks) WeekIndex(date time.Time) int {
	return ISOWeeksBetween(s.Start, date)
}

// SelectRow picks the template row that applies to date. fallback is true
// when a six-phase label was not found and the first row was used.
func SelectRow(t *entity.Template, date time.Time, scheme WeekScheme) (row entity.WeekRow, fallback bool) {
	switch t.Rotation.Kind {
	case entity.RotationSixPhase:
		label := SixPhaseLabel(date, referenceOr(t.Rotation.Reference))
		if r, ok := t.RowByLabel(label); ok {
			return r, false
		}
		return t.Rows[0], true
	default:
		return indexedRow(t, date, scheme), false
	}
}

// indexedRow applies the week-number rule: rows[WeekIndex mod len(rows)].
func indexedRow(t *entity.Template, date time.Time, scheme WeekScheme) entity.WeekRow {
	if scheme == nil {
		scheme = MonthWeeks{}
	}
	return t.Rows[mod(scheme.WeekIndex(date), len(t.Rows))]
}

// Resolve returns the task assigned to date by template t, or nil when the
// date is a weekend or the selected slot is empty.
func Resolve(t *entity.Template, date time.Time, scheme WeekScheme, colors ColorMap) (*entity.DayTask, bool) {
	date, weekday, ok := workday(t, date)
	if !ok {
		return nil, false
	}

	row, fallback := SelectRow(t, date, scheme)
	return dayTask(t, date, weekday, row, fallback, colors), fallback
}

// ResolveIndexed applies the week-number rule whatever the rotation kind
// of t. The planning generator numbers every template this way, so the
// first week of a range is always the first row.
func ResolveIndexed(t *entity.Template, date time.Time, scheme WeekScheme, colors ColorMap) *entity.DayTask {
	date, weekday, ok := workday(t, date)
	if !ok {
		return nil
	}

	return dayTask(t, date, weekday, indexedRow(t, date, scheme), false, colors)
}

func workday(t *entity.Template, date time.Time) (time.Time, int, bool) {
	if t == nil || len(t.Rows) == 0 {
		return date, 0, false
	}

	date = domain.CivilDate(date)
	weekday := domain.ISOWeekday(date.Weekday())
	return date, weekday, weekday <= domain.Friday
}

func dayTask(t *entity.Template, date time.Time, weekday int, row entity.WeekRow, fallback bool, colors ColorMap) *entity.DayTask {
	task := row.Task(weekday)
	if strings.TrimSpace(task) == "" {
		return nil
	}

	return &entity.DayTask{
		Date:      date,
		DayLabel:  t.DayLabel(weekday),
		WeekLabel: row.Label,
		Task:      task,
		Color:     colors.Lookup(task),
		Fallback:  fallback,
	}
}
