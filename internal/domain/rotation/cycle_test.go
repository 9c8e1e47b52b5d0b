package rotation

import (
	"testing"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCyclePosition_Reference(t *testing.T) {
	ref := domain.DefaultCycleReference
	assert.Equal(t, 0, CyclePosition(ref, ref))
	assert.Equal(t, 0, CyclePosition(ref.AddDate(0, 0, 6), ref), "the whole reference week is position 0")
	assert.Equal(t, 5, CyclePosition(ref.AddDate(0, 0, -1), ref), "the day before wraps to the last phase")
}

func TestCyclePosition_Properties(t *testing.T) {
	ref := domain.DefaultCycleReference
	for d := date(2023, 1, 1); d.Before(date(2027, 12, 31)); d = d.AddDate(0, 0, 1) {
		pos := CyclePosition(d, ref)
		assert.GreaterOrEqual(t, pos, 0)
		assert.Less(t, pos, 6)
		assert.Equal(t, (pos+1)%6, CyclePosition(d.AddDate(0, 0, 7), ref), d.Format(time.DateOnly))
		assert.Equal(t, pos, CyclePosition(d.AddDate(0, 0, 42), ref), d.Format(time.DateOnly))
	}
}

func TestCyclePosition_IgnoresClockAndZone(t *testing.T) {
	ref := domain.DefaultCycleReference
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 31 March 2025 is the first Monday after the switch to summer time.
	local := time.Date(2025, time.March, 31, 0, 0, 0, 0, paris)
	assert.Equal(t, 4, CyclePosition(local, ref))
	assert.Equal(t, 4, CyclePosition(time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC), ref))
}

func TestSixPhaseLabel(t *testing.T) {
	ref := domain.DefaultCycleReference
	tests := []struct {
		d    time.Time
		want string
	}{
		{date(2025, 3, 3), "Semaine paire 1"},
		{date(2025, 3, 10), "Semaine impaire 1"},
		{date(2025, 3, 17), "Semaine paire 2"},
		{date(2025, 3, 24), "Semaine impaire 2"},
		{date(2025, 3, 31), "Semaine paire 3"},
		{date(2025, 4, 7), "Semaine impaire 3"},
		{date(2025, 4, 14), "Semaine paire 1"},
		{date(2025, 4, 21), "Semaine impaire 1"},
		{date(2025, 2, 24), "Semaine impaire 3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SixPhaseLabel(tt.d, ref), tt.d.Format(time.DateOnly))
	}
	assert.True(t, IsSixPhaseLabel("Semaine impaire 2"))
	assert.False(t, IsSixPhaseLabel("semaine impaire 2"))
}
