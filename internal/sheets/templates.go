package sheets

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/diegoclair/gpns-planner/internal/domain/rotation"
)

// ErrNoTemplates is returned when a workbook holds no usable tab.
var ErrNoTemplates = errors.New("workbook contains no template")

// RotationConfig tells BuildTemplates which rotation each template follows.
type RotationConfig struct {
	// Kinds maps template names to their rotation kind. Names missing from
	// the map are inferred from their week labels.
	Kinds map[string]entity.RotationKind
	// Reference anchors six-phase templates. Zero means the default Monday.
	Reference time.Time
}

// ParseRotationKinds parses the "Name:kind,Name:kind" form used in the
// environment.
func ParseRotationKinds(s string) (map[string]entity.RotationKind, error) {
	kinds := make(map[string]entity.RotationKind)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, value, ok := strings.Cut(pair, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid template rotation %q, expected Name:kind", pair)
		}

		kind, err := entity.ParseRotationKind(value)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", strings.TrimSpace(name), err)
		}
		kinds[strings.TrimSpace(name)] = kind
	}
	return kinds, nil
}

// RotationFor returns the rotation of the named template whose cleaned rows
// are given (header first).
func (c RotationConfig) RotationFor(name string, rows [][]string) entity.Rotation {
	kind, ok := c.Kinds[name]
	if !ok {
		kind = inferKind(rows)
	}

	r := entity.Rotation{Kind: kind}
	if kind == entity.RotationSixPhase {
		r.Reference = c.Reference
		if r.Reference.IsZero() {
			r.Reference = domain.DefaultCycleReference
		}
	}
	return r
}

func inferKind(rows [][]string) entity.RotationKind {
	if len(rows) < 2 {
		return entity.RotationWeekOfMonth
	}
	for _, row := range rows[1:] {
		if len(row) == 0 || !rotation.IsSixPhaseLabel(row[0]) {
			return entity.RotationWeekOfMonth
		}
	}
	return entity.RotationSixPhase
}

// BuildTemplates converts raw sheets into validated templates. Empty rows
// are dropped and short rows padded to the template width; tabs with no
// content are skipped. Any invalid tab fails the whole build.
func BuildTemplates(sheets []entity.Sheet, cfg RotationConfig) ([]*entity.Template, error) {
	var (
		templates []*entity.Template
		errs      []error
	)

	for _, s := range sheets {
		rows := CleanRows(s.Rows)
		if len(rows) == 0 {
			continue
		}

		t, err := entity.NewTemplate(s.Name, cfg.RotationFor(s.Name, rows), rows)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		templates = append(templates, t)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}

	return templates, nil
}

// CleanRows drops rows whose cells are all blank, trims trailing blank
// cells and pads every row to entity.RowWidth. Rows wider than that are kept
// as is so validation can report them.
func CleanRows(raw [][]string) [][]string {
	out := make([][]string, 0, len(raw))
	for _, row := range raw {
		last := -1
		for i, cell := range row {
			if strings.TrimSpace(cell) != "" {
				last = i
			}
		}
		if last < 0 {
			continue
		}

		width := max(last+1, entity.RowWidth)
		cleaned := make([]string, width)
		copy(cleaned, row[:last+1])
		out = append(out, cleaned)
	}
	return out
}
