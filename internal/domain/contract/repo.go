package contract

import (
	"context"

	"github.com/diegoclair/gpns-planner/internal/domain/entity"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/repo_mock.go -package=mocks . DataManager,TemplateRepo,SubTaskRepo,SubscriptionRepo

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Template() TemplateRepo
	SubTask() SubTaskRepo
	Subscription() SubscriptionRepo
}

// TemplateRepo stores the templates edited locally. Edited templates take
// precedence over the ones fetched from the source.
type TemplateRepo interface {
	Save(template *entity.Template) error
	GetByName(name string) (*entity.Template, error)
	GetAll() ([]*entity.Template, error)
	Delete(name string) error
}

// SubTaskRepo defines the contract for sub-task annotations of planned tasks
type SubTaskRepo interface {
	Create(subTask *entity.SubTask) error
	GetByID(id string) (*entity.SubTask, error)
	GetByTaskIDs(taskIDs []string) (map[string][]*entity.SubTask, error)
	Delete(id string) error
}

// SubscriptionRepo defines the contract for Slack reminder subscriptions
type SubscriptionRepo interface {
	Create(subscription *entity.Subscription) error
	GetByChannelID(slackChannelID string) (*entity.Subscription, error)
	Update(subscription *entity.Subscription) error
	Delete(slackChannelID string) error
	GetEnabled() ([]*entity.Subscription, error)
	SetEnabled(slackChannelID string, enabled bool) error
}
