package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain/rotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hoursValues = [][]string{
	{"Date", "TTL HRS", "Interim", "Nuit", "Agt", "Ce"},
	{"03/03/2025", "100", "20", "10", "80", "20"},
	{"4/3/2025", "200", "30", "20", "170", "30"},
	{"bad", "999"},
	{"01/04/2025", "50", "0", "0", "50", "0"},
}

func TestSummarizeHours(t *testing.T) {
	got := SummarizeHours(hoursValues, date(2025, time.March, 1), date(2025, time.March, 31), DefaultHoursTarget)

	assert.Equal(t, 2, got.Rows)
	assert.Equal(t, 1, got.Dropped)
	assert.Equal(t, 300.0, got.TotalHours)
	assert.Equal(t, 50.0, got.InterimHours)
	assert.Equal(t, 250.0, got.PermanentHours)
	assert.Equal(t, 30.0, got.NightHours)
	assert.Equal(t, 250.0, got.AgentHours)
	assert.Equal(t, 50.0, got.LeaderHours)
	assert.InDelta(t, 300/151.67, got.FTE, 1e-9)
	assert.InDelta(t, 83.333, got.PermanentPercent, 1e-3)
	assert.InDelta(t, 16.667, got.InterimPercent, 1e-3)
	assert.InDelta(t, 10.0, got.NightPercent, 1e-9)
	assert.Equal(t, 3000.0, got.Target)
	assert.InDelta(t, 10.0, got.TargetPercent, 1e-9)

	require.Len(t, got.Days, 2)
	assert.Equal(t, date(2025, time.March, 4), got.Days[1].Date)
	assert.Equal(t, 200.0, got.Days[1].TotalHours)

	t.Run("Should keep percentages at zero without hours", func(t *testing.T) {
		got := SummarizeHours([][]string{{"date", "ttl hrs"}, {"03/03/2025", ""}}, date(2025, time.March, 1), date(2025, time.March, 31), 0)
		assert.Equal(t, 1, got.Rows)
		assert.Zero(t, got.InterimPercent)
		assert.Zero(t, got.TargetPercent)
	})

	t.Run("Should accept an empty sheet", func(t *testing.T) {
		got := SummarizeHours(nil, date(2025, time.March, 1), date(2025, time.March, 31), DefaultHoursTarget)
		assert.Equal(t, 0, got.Rows)
		assert.Empty(t, got.Days)
	})
}

func Test_hoursService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("Should summarize the hours tab of the staff spreadsheet", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		s := newHours(m.options(t))

		m.mockRangeReader.EXPECT().Range(ctx, "absences-sheet", DefaultHoursRange).Return(hoursValues, nil).Times(1)

		got, err := s.Summary(ctx, date(2025, time.March, 1), date(2025, time.March, 31))
		require.NoError(t, err)
		assert.Equal(t, 300.0, got.TotalHours)
		assert.Equal(t, DefaultHoursTarget, got.Target)
	})

	t.Run("Should use the configured target", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		opts := m.options(t)
		opts.HoursTarget = 600
		s := newHours(opts)

		m.mockRangeReader.EXPECT().Range(ctx, "absences-sheet", DefaultHoursRange).Return(hoursValues, nil).Times(1)

		got, err := s.Summary(ctx, date(2025, time.March, 1), date(2025, time.March, 31))
		require.NoError(t, err)
		assert.InDelta(t, 50.0, got.TargetPercent, 1e-9)
	})

	t.Run("Should return ErrNoData for an empty period", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		s := newHours(m.options(t))

		m.mockRangeReader.EXPECT().Range(ctx, "absences-sheet", DefaultHoursRange).Return(hoursValues, nil).Times(1)

		_, err := s.Summary(ctx, date(2024, time.January, 1), date(2024, time.January, 31))
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("Should surface fetch errors", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		s := newHours(m.options(t))

		m.mockRangeReader.EXPECT().Range(ctx, "absences-sheet", DefaultHoursRange).Return(nil, assert.AnError).Times(1)

		_, err := s.Summary(ctx, date(2025, time.March, 1), date(2025, time.March, 31))
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Should reject an inverted period", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		s := newHours(m.options(t))

		_, err := s.Summary(ctx, date(2025, time.March, 31), date(2025, time.March, 1))
		assert.ErrorIs(t, err, rotation.ErrInvalidRange)
	})

	t.Run("Should fail when no spreadsheet is configured", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		opts := m.options(t)
		opts.Sheets = nil
		s := newHours(opts)

		_, err := s.Summary(ctx, date(2025, time.March, 1), date(2025, time.March, 31))
		assert.ErrorIs(t, err, ErrHoursNotConfigured)
	})
}
