package rotation

import (
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
)

// MaxRangeDays bounds the length of a generated planning.
const MaxRangeDays = 731

var (
	ErrInvalidRange = errors.New("rotation: end date is before start date")
	ErrRangeTooLong = fmt.Errorf("rotation: range longer than %d days", MaxRangeDays)
)

// TaskID builds the key sub-tasks are attached to.
func TaskID(date time.Time, task string) string {
	return domain.CivilDate(date).Format("2006-01-02T15:04:05.000Z") + "-" + task
}

// Expand resolves every weekday of [start, end] and returns the assigned
// tasks in date order. Every template, six-phase ones included, is indexed
// by the ISO weeks elapsed since start.
func Expand(t *entity.Template, start, end time.Time, colors ColorMap) ([]*entity.PlannedTask, error) {
	start, end = domain.CivilDate(start), domain.CivilDate(end)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}
	if daysBetween(start, end) >= MaxRangeDays {
		return nil, ErrRangeTooLong
	}

	scheme := ElapsedWeeks{Start: start}
	var tasks []*entity.PlannedTask
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dt := ResolveIndexed(t, d, scheme, colors)
		if dt == nil {
			continue
		}
		tasks = append(tasks, &entity.PlannedTask{
			ID:       TaskID(d, dt.Task),
			DayTask:  *dt,
			SubTasks: []*entity.SubTask{},
		})
	}
	return tasks, nil
}
