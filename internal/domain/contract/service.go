package contract

import (
	"context"
	"io"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain/entity"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/service_mock.go -package=mocks . PlanningService,SubscriptionService,AbsenceService,HoursService,VisitService

type PlanningService interface {
	LoadTemplates(ctx context.Context) error
	Templates() []*entity.Template
	Template(name string) (*entity.Template, error)
	Colors() map[string]entity.Color
	EditTemplate(ctx context.Context, name string, cells [][]string) (*entity.Template, error)
	ResetTemplate(ctx context.Context, name string) error
	ImportWorkbook(ctx context.Context, r io.Reader) error
	Calendar(ctx context.Context, name string, year int, month time.Month) (*entity.CalendarMonth, error)
	Today(ctx context.Context, name string, date time.Time) (*entity.DayTask, error)
	Week(ctx context.Context, name string, date time.Time) ([]*entity.DayTask, error)
	GeneratePlanning(ctx context.Context, name string, start, end time.Time) (*entity.Planning, error)
	AddSubTask(ctx context.Context, taskID, text string) (*entity.SubTask, error)
	RemoveSubTask(ctx context.Context, id string) error
	ListSubTasks(ctx context.Context, taskIDs []string) (map[string][]*entity.SubTask, error)
	ExportPlanning(ctx context.Context, w io.Writer, format, name string, start, end time.Time) error
	FallbackCount() int64
}

type SubscriptionService interface {
	Subscribe(slackChannelID, template, notificationTime string) (*entity.Subscription, error)
	Unsubscribe(slackChannelID string) error
	Pause(slackChannelID string) error
	Resume(slackChannelID string) error
	Subscription(slackChannelID string) (*entity.Subscription, error)
}

type AbsenceService interface {
	Summary(ctx context.Context, start, end time.Time) (*entity.AbsenceSummary, error)
}

type HoursService interface {
	Summary(ctx context.Context, start, end time.Time) (*entity.HoursSummary, error)
}

type VisitService interface {
	Summary(ctx context.Context, start, end time.Time) (*entity.VisitSummary, error)
}
