package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/diegoclair/gpns-planner/internal/domain/rotation"
	"github.com/diegoclair/gpns-planner/internal/sheets"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type planner struct {
	dm        contract.DataManager
	source    contract.TemplateSource
	rotations sheets.RotationConfig
	log       *zap.Logger
	loc       *time.Location
	now       func() time.Time
	newID     func() string

	mu sync.RWMutex
	// base holds the templates of the last load or import, before local
	// edits are applied.
	base      []*entity.Template
	templates map[string]*entity.Template
	colors    rotation.ColorMap

	fallbacks atomic.Int64
}

func newPlanner(opts Options) *planner {
	p := &planner{
		dm:        opts.DataManager,
		source:    opts.Templates,
		rotations: opts.Rotations,
		log:       opts.Logger.Named("planner"),
		loc:       opts.Location,
		now:       opts.Now,
		newID:     uuid.NewString,
		templates: map[string]*entity.Template{},
		colors:    rotation.ColorMap{},
	}

	// the store is never empty, even before the first load
	if defaults, err := sheets.Defaults(p.rotations.Reference); err == nil {
		p.install(defaults, nil)
	}
	return p
}

// LoadTemplates fetches the templates from the configured source, falling
// back to the built-in set on any failure, then applies the local edits.
func (p *planner) LoadTemplates(ctx context.Context) error {
	templates, err := p.fetch(ctx)
	if err != nil {
		p.log.Warn("template source unavailable, using built-in templates", zap.Error(err))

		templates, err = sheets.Defaults(p.rotations.Reference)
		if err != nil {
			return fmt.Errorf("failed to load built-in templates: %w", err)
		}
	}

	edits, err := p.dm.Template().GetAll()
	if err != nil {
		p.log.Error("failed to read local template edits", zap.Error(err))
		edits = nil
	}

	p.install(templates, edits)
	p.log.Info("templates loaded", zap.Int("count", len(templates)), zap.Int("edited", len(edits)))
	return nil
}

func (p *planner) fetch(ctx context.Context) ([]*entity.Template, error) {
	if p.source == nil {
		return nil, errors.New("no template source configured")
	}

	raw, err := p.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	return sheets.BuildTemplates(raw, p.rotations)
}

// ImportWorkbook replaces the templates with the tabs of an uploaded xlsx
// document. Local edits of the imported templates are discarded.
func (p *planner) ImportWorkbook(ctx context.Context, r io.Reader) error {
	raw, err := sheets.ReadWorkbook(ctx, r)
	if err != nil {
		return err
	}

	templates, err := sheets.BuildTemplates(raw, p.rotations)
	if err != nil {
		return err
	}

	err = p.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, t := range templates {
			if err := tx.Template().Delete(t.Name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to discard local edits: %w", err)
	}

	edits, err := p.dm.Template().GetAll()
	if err != nil {
		return fmt.Errorf("failed to read local template edits: %w", err)
	}

	p.install(templates, edits)
	p.log.Info("workbook imported", zap.Int("count", len(templates)))
	return nil
}

// EditTemplate replaces the rows of an existing template. The new rows are
// validated before anything is stored; on error the template is unchanged.
func (p *planner) EditTemplate(ctx context.Context, name string, cells [][]string) (*entity.Template, error) {
	current, err := p.Template(name)
	if err != nil {
		return nil, err
	}

	edited, err := entity.NewTemplate(current.Name, current.Rotation, cells)
	if err != nil {
		return nil, err
	}

	if err := p.dm.Template().Save(edited); err != nil {
		return nil, err
	}

	p.mu.Lock()
	next := make(map[string]*entity.Template, len(p.templates))
	for k, v := range p.templates {
		next[k] = v
	}
	next[edited.Name] = edited
	p.swapLocked(next)
	p.mu.Unlock()

	p.log.Info("template edited", zap.String("template", edited.Name), zap.Int("rows", len(edited.Rows)))
	return edited, nil
}

// ResetTemplate drops the local edit of a template and restores the loaded
// version.
func (p *planner) ResetTemplate(ctx context.Context, name string) error {
	if _, err := p.Template(name); err != nil {
		return err
	}

	if err := p.dm.Template().Delete(name); err != nil {
		return err
	}

	edits, err := p.dm.Template().GetAll()
	if err != nil {
		return fmt.Errorf("failed to read local template edits: %w", err)
	}

	p.mu.RLock()
	base := p.base
	p.mu.RUnlock()

	p.install(base, edits)
	return nil
}

// Templates returns the templates sorted by name.
func (p *planner) Templates() []*entity.Template {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return sortedTemplates(p.templates)
}

func (p *planner) Template(name string) (*entity.Template, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	t, ok := p.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return t, nil
}

// Colors returns a copy of the task color map.
func (p *planner) Colors() map[string]entity.Color {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string]entity.Color, len(p.colors))
	for k, v := range p.colors {
		out[k] = v
	}
	return out
}

func (p *planner) colorMap() rotation.ColorMap {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.colors
}

// install replaces the whole store: base templates overlaid by edits. Edits
// of templates absent from base are kept.
func (p *planner) install(base, edits []*entity.Template) {
	next := make(map[string]*entity.Template, len(base)+len(edits))
	for _, t := range base {
		next[t.Name] = t
	}
	for _, t := range edits {
		next[t.Name] = t
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.base = base
	p.swapLocked(next)
}

func (p *planner) swapLocked(next map[string]*entity.Template) {
	p.templates = next
	p.colors = rotation.BuildColorMap(sortedTemplates(next), rotation.Palette)
}

func sortedTemplates(m map[string]*entity.Template) []*entity.Template {
	out := make([]*entity.Template, 0, len(m))
	for _, t := range m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
