package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/diegoclair/gpns-planner/internal/domain/rotation"
	"github.com/diegoclair/gpns-planner/internal/export"
	"go.uber.org/zap"
)

// Calendar resolves every weekday of a month for the named template.
func (p *planner) Calendar(ctx context.Context, name string, year int, month time.Month) (*entity.CalendarMonth, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}

	t, err := p.Template(name)
	if err != nil {
		return nil, err
	}
	colors := p.colorMap()

	grid := rotation.MonthGrid(year, month)
	cm := &entity.CalendarMonth{
		Template:  t.Name,
		Year:      year,
		Month:     month,
		MonthName: domain.MonthNames[month-1],
		Weeks:     make([]entity.CalendarWeek, len(grid)),
	}

	for w, week := range grid {
		for i, day := range week {
			if day == 0 {
				continue
			}
			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			cell := entity.CalendarDay{Day: day, Date: date}
			cell.Task = p.resolve(t, date, rotation.MonthWeeks{}, colors)
			cm.Weeks[w][i] = cell
		}
	}

	return cm, nil
}

// Today returns the task of date, or nil on weekends and empty slots.
func (p *planner) Today(ctx context.Context, name string, date time.Time) (*entity.DayTask, error) {
	t, err := p.Template(name)
	if err != nil {
		return nil, err
	}

	return p.resolve(t, p.civil(date), rotation.MonthWeeks{}, p.colorMap()), nil
}

// Week returns the Monday to Friday tasks of date's week. Days without a
// task are nil.
func (p *planner) Week(ctx context.Context, name string, date time.Time) ([]*entity.DayTask, error) {
	t, err := p.Template(name)
	if err != nil {
		return nil, err
	}
	colors := p.colorMap()

	date = p.civil(date)
	monday := date.AddDate(0, 0, domain.Monday-domain.ISOWeekday(date.Weekday()))

	days := make([]*entity.DayTask, domain.WorkDays)
	for i := range days {
		days[i] = p.resolve(t, monday.AddDate(0, 0, i), rotation.MonthWeeks{}, colors)
	}
	return days, nil
}

// GeneratePlanning expands the named template over [start, end] and
// attaches the stored sub-tasks. Weeks are numbered from start for every
// rotation kind, so six-phase labels never fall back here.
func (p *planner) GeneratePlanning(ctx context.Context, name string, start, end time.Time) (*entity.Planning, error) {
	t, err := p.Template(name)
	if err != nil {
		return nil, err
	}

	start, end = p.civil(start), p.civil(end)
	tasks, err := rotation.Expand(t, start, end, p.colorMap())
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}

	subTasks, err := p.dm.SubTask().GetByTaskIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if st, ok := subTasks[task.ID]; ok {
			task.SubTasks = st
		}
	}

	return &entity.Planning{
		Template: t.Name,
		Start:    start,
		End:      end,
		Tasks:    tasks,
	}, nil
}

func (p *planner) AddSubTask(ctx context.Context, taskID, text string) (*entity.SubTask, error) {
	text = strings.Join(strings.FieldsFunc(text, unicode.IsControl), " ")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptySubTask
	}
	if strings.TrimSpace(taskID) == "" {
		return nil, fmt.Errorf("task id is required")
	}

	subTask := &entity.SubTask{
		ID:        p.newID(),
		TaskID:    taskID,
		Text:      text,
		CreatedAt: p.now().UTC(),
	}
	if err := p.dm.SubTask().Create(subTask); err != nil {
		return nil, err
	}

	return subTask, nil
}

func (p *planner) RemoveSubTask(ctx context.Context, id string) error {
	subTask, err := p.dm.SubTask().GetByID(id)
	if err != nil {
		return err
	}
	if subTask == nil {
		return fmt.Errorf("%w: %s", ErrSubTaskNotFound, id)
	}

	return p.dm.SubTask().Delete(id)
}

func (p *planner) ListSubTasks(ctx context.Context, taskIDs []string) (map[string][]*entity.SubTask, error) {
	return p.dm.SubTask().GetByTaskIDs(taskIDs)
}

// ExportPlanning generates the planning and writes it in format.
func (p *planner) ExportPlanning(ctx context.Context, w io.Writer, format, name string, start, end time.Time) error {
	if format != export.FormatXLSX && format != export.FormatText {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	planning, err := p.GeneratePlanning(ctx, name, start, end)
	if err != nil {
		return err
	}

	return export.Write(w, format, planning)
}

// FallbackCount is the number of days resolved with the first row because
// their six-phase label was missing.
func (p *planner) FallbackCount() int64 {
	return p.fallbacks.Load()
}

func (p *planner) resolve(t *entity.Template, date time.Time, scheme rotation.WeekScheme, colors rotation.ColorMap) *entity.DayTask {
	task, fallback := rotation.Resolve(t, date, scheme, colors)
	if fallback {
		p.fallbacks.Add(1)
		p.log.Warn("six-phase label missing from template, first row used",
			zap.String("template", t.Name),
			zap.String("label", rotation.SixPhaseLabel(date, t.Rotation.Reference)),
			zap.String("date", date.Format(domain.ISODate)),
		)
	}
	return task
}

// civil converts an instant to its calendar date in the service timezone.
func (p *planner) civil(t time.Time) time.Time {
	if t.Location() == time.UTC && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t
	}
	return domain.CivilDate(t.In(p.loc))
}
