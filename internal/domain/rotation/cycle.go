package rotation

import (
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
)

// SixPhaseLabels are the week labels of the six-phase cycle, in cycle order.
var SixPhaseLabels = [6]string{
	"Semaine paire 1",
	"Semaine impaire 1",
	"Semaine paire 2",
	"Semaine impaire 2",
	"Semaine paire 3",
	"Semaine impaire 3",
}

// CyclePosition returns the 0-5 position of date in the six-phase cycle
// starting at reference. Dates before the reference wrap around.
// Arithmetic is done on calendar dates so daylight saving never shifts it.
func CyclePosition(date, reference time.Time) int {
	weekDiff := floorDiv(daysBetween(reference, date), 7)
	return mod(weekDiff, len(SixPhaseLabels))
}

// SixPhaseLabel returns the week label expected for date.
func SixPhaseLabel(date, reference time.Time) string {
	return SixPhaseLabels[CyclePosition(date, reference)]
}

// IsSixPhaseLabel reports whether label is one of the six cycle labels.
func IsSixPhaseLabel(label string) bool {
	for _, l := range SixPhaseLabels {
		if l == label {
			return true
		}
	}
	return false
}

func referenceOr(ref time.Time) time.Time {
	if ref.IsZero() {
		return domain.DefaultCycleReference
	}
	return ref
}
