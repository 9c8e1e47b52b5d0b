package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
)

// RotationKind selects how a template row is picked for a given date.
type RotationKind string

const (
	// RotationWeekOfMonth cycles through the rows by week number.
	RotationWeekOfMonth RotationKind = "week_of_month"
	// RotationSixPhase follows the fixed even/odd six week cycle.
	RotationSixPhase RotationKind = "six_phase"
)

// Valid reports whether k is a known rotation kind.
func (k RotationKind) Valid() bool {
	return k == RotationWeekOfMonth || k == RotationSixPhase
}

// ParseRotationKind accepts the configuration spellings of a rotation kind.
func ParseRotationKind(s string) (RotationKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week_of_month", "weekofmonth", "modulo", "a":
		return RotationWeekOfMonth, nil
	case "six_phase", "sixphase", "even_odd", "b":
		return RotationSixPhase, nil
	}
	return "", fmt.Errorf("unknown rotation kind %q", s)
}

// Rotation carries the rotation kind and its parameters.
type Rotation struct {
	Kind RotationKind `json:"kind"`
	// Reference is the Monday anchoring the six-phase cycle. Ignored by
	// week-of-month templates.
	Reference time.Time `json:"reference,omitempty"`
}

// WeekRow is one week definition: a label and the Monday..Friday tasks.
// An empty string means no task for that day.
type WeekRow struct {
	Label string                  `json:"label"`
	Tasks [domain.WorkDays]string `json:"tasks"`
}

// Task returns the task for an ISO weekday (1 = Monday). Weekends and
// out of range values yield "".
func (r WeekRow) Task(isoWeekday int) string {
	if isoWeekday < domain.Monday || isoWeekday > domain.Friday {
		return ""
	}
	return r.Tasks[isoWeekday-1]
}

// Template is a named weekly-task table for one work group.
type Template struct {
	Name      string                  `json:"name"`
	Rotation  Rotation                `json:"rotation"`
	Header    [domain.WorkDays]string `json:"header"`
	Rows      []WeekRow               `json:"rows"`
	Edited    bool                    `json:"edited"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// RowWidth is the cell count of every template row: a label plus five days.
const RowWidth = 1 + domain.WorkDays

// ValidationError describes why a rectangular table was rejected.
type ValidationError struct {
	Template string
	Row      int
	Cells    int
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("template %q: %s", e.Template, e.Reason)
	}
	return fmt.Sprintf("template %q row %d (%d cells): %s", e.Template, e.Row, e.Cells, e.Reason)
}

// NewTemplate builds a template from its rectangular form. cells[0] is the
// header (its first cell is ignored) and every following row is
// [label, mon, tue, wed, thu, fri]. Every row must have exactly RowWidth cells.
func NewTemplate(name string, rotation Rotation, cells [][]string) (*Template, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Row: -1, Reason: "name is required"}
	}
	if !rotation.Kind.Valid() {
		return nil, &ValidationError{Template: name, Row: -1, Reason: fmt.Sprintf("unknown rotation kind %q", rotation.Kind)}
	}
	if rotation.Kind == RotationSixPhase && rotation.Reference.IsZero() {
		rotation.Reference = domain.DefaultCycleReference
	}
	if len(cells) < 2 {
		return nil, &ValidationError{Template: name, Row: -1, Reason: "a header and at least one week row are required"}
	}

	for i, row := range cells {
		if len(row) != RowWidth {
			return nil, &ValidationError{
				Template: name,
				Row:      i,
				Cells:    len(row),
				Reason:   fmt.Sprintf("expected exactly %d cells", RowWidth),
			}
		}
	}

	t := &Template{
		Name:     name,
		Rotation: rotation,
		Rows:     make([]WeekRow, 0, len(cells)-1),
	}
	copy(t.Header[:], cells[0][1:])

	for i, row := range cells[1:] {
		label := strings.TrimSpace(row[0])
		if label == "" {
			return nil, &ValidationError{Template: name, Row: i + 1, Cells: len(row), Reason: "week label is required"}
		}
		wr := WeekRow{Label: row[0]}
		copy(wr.Tasks[:], row[1:])
		t.Rows = append(t.Rows, wr)
	}

	return t, nil
}

// Cells returns the rectangular form of the template, header first.
func (t *Template) Cells() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	header := make([]string, RowWidth)
	copy(header[1:], t.Header[:])
	out = append(out, header)
	for _, r := range t.Rows {
		row := make([]string, RowWidth)
		row[0] = r.Label
		copy(row[1:], r.Tasks[:])
		out = append(out, row)
	}
	return out
}

// DayLabel returns the header label for an ISO weekday, falling back to the
// French day name when the header cell is empty.
func (t *Template) DayLabel(isoWeekday int) string {
	if isoWeekday >= domain.Monday && isoWeekday <= domain.Friday {
		if label := strings.TrimSpace(t.Header[isoWeekday-1]); label != "" {
			return label
		}
	}
	return domain.WeekdayNames[isoWeekday]
}

// RowByLabel finds the first week row whose label matches exactly.
func (t *Template) RowByLabel(label string) (WeekRow, bool) {
	for _, r := range t.Rows {
		if r.Label == label {
			return r, true
		}
	}
	return WeekRow{}, false
}

// Sheet is raw tabular data as read from a spreadsheet tab.
type Sheet struct {
	Name string
	Rows [][]string
}
