package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/diegoclair/gpns-planner/internal/domain/rotation"
	"go.uber.org/zap"
)

const (
	// DefaultHoursRange is the range of the worked hours tab.
	DefaultHoursRange = "Hrs!A1:K"
	// DefaultHoursTarget is the monthly hours objective.
	DefaultHoursTarget = 3000.0
	// MonthlyFTEHours is the legal monthly hours of one full-time employee.
	MonthlyFTEHours = 151.67
)

// Column headers of the hours sheet, lowercased.
const (
	colTotalHours   = "ttl hrs"
	colInterimHours = "interim"
	colNightHours   = "nuit"
	colAgentHours   = "agt"
	colLeaderHours  = "ce"
)

type hoursService struct {
	reader        contract.RangeReader
	spreadsheetID string
	rng           string
	target        float64
	log           *zap.Logger
}

func newHours(opts Options) *hoursService {
	return &hoursService{
		reader:        opts.Sheets,
		spreadsheetID: opts.AbsencesSheetID,
		rng:           opts.HoursRange,
		target:        opts.HoursTarget,
		log:           opts.Logger.Named("hours"),
	}
}

// Summary totals the hours sheet rows dated inside [start, end].
func (s *hoursService) Summary(ctx context.Context, start, end time.Time) (*entity.HoursSummary, error) {
	if s.reader == nil || s.spreadsheetID == "" {
		return nil, ErrHoursNotConfigured
	}

	start, end = domain.CivilDate(start), domain.CivilDate(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s < %s", rotation.ErrInvalidRange, end.Format(domain.DateLayout), start.Format(domain.DateLayout))
	}

	values, err := s.reader.Range(ctx, s.spreadsheetID, s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hours: %w", err)
	}

	summary := SummarizeHours(values, start, end, s.target)
	if summary.Dropped > 0 {
		s.log.Debug("hours rows without a valid date skipped", zap.Int("rows", summary.Dropped))
	}
	if summary.Rows == 0 {
		return nil, ErrNoData
	}

	return summary, nil
}

// SummarizeHours aggregates raw sheet values, header row first, against
// a monthly target of hours.
func SummarizeHours(values [][]string, start, end time.Time, target float64) *entity.HoursSummary {
	summary := &entity.HoursSummary{Start: start, End: end, Target: target, Days: []*entity.DayHours{}}

	table := newSheetTable(values)
	for _, row := range table.rows {
		date, err := parseSheetDate(table.cell(row, colDate))
		if err != nil {
			summary.Dropped++
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}

		day := &entity.DayHours{
			Date:         date,
			TotalHours:   table.number(row, colTotalHours),
			InterimHours: table.number(row, colInterimHours),
			NightHours:   table.number(row, colNightHours),
		}
		summary.Days = append(summary.Days, day)

		summary.Rows++
		summary.TotalHours += day.TotalHours
		summary.InterimHours += day.InterimHours
		summary.NightHours += day.NightHours
		summary.AgentHours += table.number(row, colAgentHours)
		summary.LeaderHours += table.number(row, colLeaderHours)
	}

	summary.PermanentHours = summary.TotalHours - summary.InterimHours
	summary.FTE = summary.TotalHours / MonthlyFTEHours
	if summary.TotalHours > 0 {
		summary.PermanentPercent = summary.PermanentHours / summary.TotalHours * 100
		summary.InterimPercent = summary.InterimHours / summary.TotalHours * 100
		summary.NightPercent = summary.NightHours / summary.TotalHours * 100
	}
	if target > 0 {
		summary.TargetPercent = summary.TotalHours / target * 100
	}

	return summary
}
