package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockTemplateRepo     *mocks.MockTemplateRepo
	mockSubTaskRepo      *mocks.MockSubTaskRepo
	mockSubscriptionRepo *mocks.MockSubscriptionRepo
	mockSlackClient      *mocks.MockSlackClient
	mockTemplateSource   *mocks.MockTemplateSource
	mockRangeReader      *mocks.MockRangeReader
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	templateRepo := mocks.NewMockTemplateRepo(ctrl)
	dm.EXPECT().Template().Return(templateRepo).AnyTimes()

	subTaskRepo := mocks.NewMockSubTaskRepo(ctrl)
	dm.EXPECT().SubTask().Return(subTaskRepo).AnyTimes()

	subscriptionRepo := mocks.NewMockSubscriptionRepo(ctrl)
	dm.EXPECT().Subscription().Return(subscriptionRepo).AnyTimes()

	dm.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:      dm,
		mockTemplateRepo:     templateRepo,
		mockSubTaskRepo:      subTaskRepo,
		mockSubscriptionRepo: subscriptionRepo,
		mockSlackClient:      mocks.NewMockSlackClient(ctrl),
		mockTemplateSource:   mocks.NewMockTemplateSource(ctrl),
		mockRangeReader:      mocks.NewMockRangeReader(ctrl),
	}

	// validate service creation
	instance := NewInstance(m.options(t))
	require.NotNil(t, instance.Planning)
	require.NotNil(t, instance.Subscription)
	require.NotNil(t, instance.Absence)
	require.NotNil(t, instance.Hours)
	require.NotNil(t, instance.Visits)
	require.NotNil(t, instance.Scheduler)

	return
}

func (m allMocks) options(t *testing.T) Options {
	opts := Options{
		DataManager:     m.mockDataManager,
		Slack:           m.mockSlackClient,
		Logger:          zaptest.NewLogger(t),
		Templates:       m.mockTemplateSource,
		Sheets:          m.mockRangeReader,
		AbsencesSheetID: "absences-sheet",
		VisitsSheetID:   "visits-sheet",
		Location:        time.UTC,
	}
	opts.setDefaults()
	return opts
}

func newTestPlanner(t *testing.T, m allMocks) *planner {
	t.Helper()

	p := newPlanner(m.options(t))
	p.newID = func() string { return "subtask-id" }
	require.Len(t, p.Templates(), 2, "planner starts with the built-in templates")
	return p
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
