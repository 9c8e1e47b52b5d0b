package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/diegoclair/gpns-planner/internal/domain/rotation"
	"go.uber.org/zap"
)

// DefaultVisitsRange is the range of the sanitary block visits tab.
const DefaultVisitsRange = "Data!A:P"

// Column headers of the visits sheet, lowercased.
const (
	colBlock      = "bs"
	colVisitStart = "heure début"
	colVisitEnd   = "heure fin"
)

type visitService struct {
	reader        contract.RangeReader
	spreadsheetID string
	rng           string
	log           *zap.Logger
}

func newVisit(opts Options) *visitService {
	return &visitService{
		reader:        opts.Sheets,
		spreadsheetID: opts.VisitsSheetID,
		rng:           opts.VisitsRange,
		log:           opts.Logger.Named("visits"),
	}
}

// Summary groups the sanitary block visits dated inside [start, end].
func (s *visitService) Summary(ctx context.Context, start, end time.Time) (*entity.VisitSummary, error) {
	if s.reader == nil || s.spreadsheetID == "" {
		return nil, ErrVisitsNotConfigured
	}

	start, end = domain.CivilDate(start), domain.CivilDate(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s < %s", rotation.ErrInvalidRange, end.Format(domain.DateLayout), start.Format(domain.DateLayout))
	}

	values, err := s.reader.Range(ctx, s.spreadsheetID, s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visits: %w", err)
	}

	summary := SummarizeVisits(values, start, end)
	if summary.Dropped > 0 {
		s.log.Debug("visit rows without a valid date or time skipped", zap.Int("rows", summary.Dropped))
	}
	if summary.Rows == 0 {
		return nil, ErrNoData
	}

	return summary, nil
}

// SummarizeVisits groups raw sheet values by sanitary block, header row
// first. Rows without a block or a start and end time are ignored; rows
// with an unreadable date or time are counted in Dropped. A visit ending
// before it starts runs past midnight.
func SummarizeVisits(values [][]string, start, end time.Time) *entity.VisitSummary {
	summary := &entity.VisitSummary{Start: start, End: end, Blocks: []*entity.BlockVisits{}}

	table := newSheetTable(values)
	blocks := make(map[string]*entity.BlockVisits)
	for _, row := range table.rows {
		block := table.cell(row, colBlock)
		from, to := table.cell(row, colVisitStart), table.cell(row, colVisitEnd)
		if block == "" || from == "" || to == "" {
			continue
		}

		date, err := parseVisitDate(table.cell(row, colDate))
		if err != nil {
			summary.Dropped++
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}

		minutes, err := visitMinutes(from, to)
		if err != nil {
			summary.Dropped++
			continue
		}

		b, ok := blocks[block]
		if !ok {
			b = &entity.BlockVisits{Block: block, Visits: []*entity.Visit{}}
			blocks[block] = b
			summary.Blocks = append(summary.Blocks, b)
		}

		b.Visits = append(b.Visits, &entity.Visit{Block: block, Date: date, Start: from, End: to, Minutes: minutes})
		b.Count++
		b.TotalMinutes += minutes
		if date.After(b.LastVisit) {
			b.LastVisit = date
		}

		summary.Rows++
		summary.TotalMinutes += minutes
	}

	for _, b := range summary.Blocks {
		b.AverageMinutes = b.TotalMinutes / float64(b.Count)
		b.Total = FormatMinutes(b.TotalMinutes)
		b.Average = FormatMinutes(b.AverageMinutes)
	}
	sort.SliceStable(summary.Blocks, func(i, j int) bool {
		return summary.Blocks[i].Block < summary.Blocks[j].Block
	})
	summary.Total = FormatMinutes(summary.TotalMinutes)

	return summary
}

// FormatMinutes renders a duration in minutes as HH:MM.
func FormatMinutes(minutes float64) string {
	total := int(math.Round(minutes))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// parseVisitDate accepts d/m/yyyy and d/m/yy, two-digit years being in
// the 2000s.
func parseVisitDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) == 3 && len(strings.TrimSpace(parts[2])) == 2 {
		parts[2] = "20" + strings.TrimSpace(parts[2])
	}
	return parseSheetDate(strings.Join(parts, "/"))
}

// visitMinutes returns the minutes between two H:MM[:SS] clock times.
func visitMinutes(from, to string) (float64, error) {
	start, err := clockMinutes(from)
	if err != nil {
		return 0, err
	}
	end, err := clockMinutes(to)
	if err != nil {
		return 0, err
	}

	d := end - start
	if d < 0 {
		d += 24 * 60
	}
	return d, nil
}

func clockMinutes(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q", s)
	}

	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time %q", s)
		}
		fields[i] = n
	}
	if fields[0] > 23 || fields[1] > 59 || fields[2] > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}

	return float64(fields[0]*60+fields[1]) + float64(fields[2])/60, nil
}
