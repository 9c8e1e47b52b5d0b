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

// DefaultAbsencesRange is the range of the hours and absences tab.
const DefaultAbsencesRange = "HrsAbs!A1:P"

// Column headers of the absences sheet, lowercased.
const (
	colDate            = "date"
	colWorkedHours     = "ttl hrs"
	colUnjustifiedHrs  = "hrs abi"
	colLateHrs         = "hrs ar"
	colSickHrs         = "hrs mal"
	colPaidLeaveHrs    = "hrs cp"
	colUnjustifiedDays = "nb abi"
	colLateDays        = "nb ar"
	colSickDays        = "nb mal"
	colPaidLeaveDays   = "nb cp"
)

type absenceService struct {
	reader        contract.RangeReader
	spreadsheetID string
	rng           string
	log           *zap.Logger
}

func newAbsence(opts Options) *absenceService {
	return &absenceService{
		reader:        opts.Sheets,
		spreadsheetID: opts.AbsencesSheetID,
		rng:           opts.AbsencesRange,
		log:           opts.Logger.Named("absences"),
	}
}

// Summary totals the absences sheet rows dated inside [start, end].
func (s *absenceService) Summary(ctx context.Context, start, end time.Time) (*entity.AbsenceSummary, error) {
	if s.reader == nil || s.spreadsheetID == "" {
		return nil, ErrAbsencesNotConfigured
	}

	start, end = domain.CivilDate(start), domain.CivilDate(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s < %s", rotation.ErrInvalidRange, end.Format(domain.DateLayout), start.Format(domain.DateLayout))
	}

	values, err := s.reader.Range(ctx, s.spreadsheetID, s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch absences: %w", err)
	}

	summary := SummarizeAbsences(values, start, end)
	if summary.Dropped > 0 {
		s.log.Debug("absence rows without a valid date skipped", zap.Int("rows", summary.Dropped))
	}
	if summary.Rows == 0 {
		return nil, ErrNoData
	}

	return summary, nil
}

// SummarizeAbsences aggregates raw sheet values, header row first. Rows
// whose date is not d/m/yyyy are counted in Dropped and ignored.
func SummarizeAbsences(values [][]string, start, end time.Time) *entity.AbsenceSummary {
	summary := &entity.AbsenceSummary{Start: start, End: end}
	if len(values) == 0 {
		return summary
	}

	table := newSheetTable(values)
	number := table.number

	for _, row := range table.rows {
		date, err := parseSheetDate(table.cell(row, colDate))
		if err != nil {
			summary.Dropped++
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}

		summary.Rows++
		summary.WorkedHours += number(row, colWorkedHours)
		summary.UnjustifiedHrs += number(row, colUnjustifiedHrs)
		summary.LateHrs += number(row, colLateHrs)
		summary.SickHrs += number(row, colSickHrs)
		summary.PaidLeaveHrs += number(row, colPaidLeaveHrs)
		summary.UnjustifiedDays += number(row, colUnjustifiedDays)
		summary.LateDays += number(row, colLateDays)
		summary.SickDays += number(row, colSickDays)
		summary.PaidLeaveDays += number(row, colPaidLeaveDays)
	}

	summary.AbsenceHours = summary.UnjustifiedHrs + summary.PaidLeaveHrs + summary.SickHrs
	summary.AbsenceDays = summary.UnjustifiedDays + summary.PaidLeaveDays + summary.SickDays + summary.LateDays
	if summary.WorkedHours > 0 {
		summary.Absenteeism = summary.AbsenceHours / summary.WorkedHours * 100
	}

	return summary
}
