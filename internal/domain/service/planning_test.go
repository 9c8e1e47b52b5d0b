package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/diegoclair/gpns-planner/internal/domain/rotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_planner_Calendar(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	p := newTestPlanner(t, m)

	t.Run("Should lay out March 2025 for Ouest", func(t *testing.T) {
		cm, err := p.Calendar(context.Background(), "Ouest", 2025, time.March)
		require.NoError(t, err)

		assert.Equal(t, "Mars", cm.MonthName)
		require.Len(t, cm.Weeks, 6)

		// March 1st 2025 is a Saturday
		assert.Equal(t, 0, cm.Weeks[0][0].Day)
		assert.Equal(t, 1, cm.Weeks[0][5].Day)
		assert.Nil(t, cm.Weeks[0][5].Task, "Weekends have no task")

		monday := cm.Weeks[1][0]
		assert.Equal(t, 3, monday.Day)
		require.NotNil(t, monday.Task)
		assert.Equal(t, "TERMINAL1", monday.Task.Task)
		assert.Equal(t, "Semaine paire 1", monday.Task.WeekLabel)
		assert.NotEqual(t, rotation.Neutral, monday.Task.Color)
	})

	t.Run("Should wrap the fifth week of Est", func(t *testing.T) {
		cm, err := p.Calendar(context.Background(), "Est", 2025, time.March)
		require.NoError(t, err)

		last := cm.Weeks[5][0]
		assert.Equal(t, 31, last.Day)
		require.NotNil(t, last.Task)
		assert.Equal(t, "Semaine 1", last.Task.WeekLabel)
		assert.Equal(t, "TDS3", last.Task.Task)
	})

	t.Run("Should reject an invalid month", func(t *testing.T) {
		_, err := p.Calendar(context.Background(), "Est", 2025, 13)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})

	t.Run("Should fail for an unknown template", func(t *testing.T) {
		_, err := p.Calendar(context.Background(), "Sud", 2025, time.March)
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})
}

func Test_planner_Today(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	p := newTestPlanner(t, m)

	tests := []struct {
		name     string
		template string
		date     time.Time
		wantTask string
	}{
		{"Should resolve a Monday", "Ouest", date(2025, time.March, 3), "TERMINAL1"},
		{"Should ignore the clock", "Ouest", time.Date(2025, time.March, 3, 23, 30, 0, 0, time.UTC), "TERMINAL1"},
		{"Should return nothing on Saturday", "Est", date(2025, time.March, 8), ""},
		{"Should resolve Est by week of month", "Est", date(2025, time.March, 14), "TBM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Today(context.Background(), tt.template, tt.date)
			require.NoError(t, err)

			if tt.wantTask == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantTask, got.Task)
		})
	}
}

func Test_planner_Week(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	p := newTestPlanner(t, m)

	days, err := p.Week(context.Background(), "Ouest", date(2025, time.March, 5))
	require.NoError(t, err)
	require.Len(t, days, 5)

	want := []string{"TERMINAL1", "TERMINAL1", "TERMINAL 3", "T2AC", "T2BD"}
	for i, d := range days {
		require.NotNil(t, d)
		assert.Equal(t, want[i], d.Task)
		assert.Equal(t, date(2025, time.March, 3+i), d.Date)
	}

	t.Run("Should use the previous Monday on a Sunday", func(t *testing.T) {
		days, err := p.Week(context.Background(), "Ouest", date(2025, time.March, 9))
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.March, 3), days[0].Date)
	})
}

func Test_planner_GeneratePlanning(t *testing.T) {
	t.Run("Should expand the range and attach sub-tasks", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		firstID := "2025-03-03T00:00:00.000Z-TDS3"
		m.mockSubTaskRepo.EXPECT().
			GetByTaskIDs(gomock.Any()).
			DoAndReturn(func(ids []string) (map[string][]*entity.SubTask, error) {
				assert.Len(t, ids, 10)
				assert.Equal(t, firstID, ids[0])
				return map[string][]*entity.SubTask{
					firstID: {{ID: "s1", TaskID: firstID, Text: "Ouvrir"}},
				}, nil
			}).Times(1)

		planning, err := p.GeneratePlanning(context.Background(), "Est", date(2025, time.March, 3), date(2025, time.March, 14))
		require.NoError(t, err)

		assert.Equal(t, "Est", planning.Template)
		require.Len(t, planning.Tasks, 10)
		assert.Equal(t, "Semaine 1", planning.Tasks[0].WeekLabel)
		assert.Equal(t, "Semaine 2", planning.Tasks[5].WeekLabel)
		require.Len(t, planning.Tasks[0].SubTasks, 1)
		assert.Equal(t, "Ouvrir", planning.Tasks[0].SubTasks[0].Text)
		assert.Empty(t, planning.Tasks[1].SubTasks)
	})

	t.Run("Should start Est plannings on the first row", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		m.mockSubTaskRepo.EXPECT().GetByTaskIDs(gomock.Any()).Return(map[string][]*entity.SubTask{}, nil).Times(1)

		// the third week of March is row 3 in the calendar, row 1 in a planning
		planning, err := p.GeneratePlanning(context.Background(), "Est", date(2025, time.March, 17), date(2025, time.March, 17))
		require.NoError(t, err)
		require.Len(t, planning.Tasks, 1)
		assert.Equal(t, "Semaine 1", planning.Tasks[0].WeekLabel)
	})

	t.Run("Should reject an inverted range", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		_, err := p.GeneratePlanning(context.Background(), "Est", date(2025, time.March, 14), date(2025, time.March, 3))
		assert.ErrorIs(t, err, rotation.ErrInvalidRange)
	})

	t.Run("Should surface repository errors", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		m.mockSubTaskRepo.EXPECT().GetByTaskIDs(gomock.Any()).Return(nil, assert.AnError).Times(1)

		_, err := p.GeneratePlanning(context.Background(), "Est", date(2025, time.March, 3), date(2025, time.March, 7))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func Test_planner_FallbackCount(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	p := newTestPlanner(t, m)

	partial, err := entity.NewTemplate("Partiel", entity.Rotation{Kind: entity.RotationSixPhase}, [][]string{
		testHeader,
		{"Semaine paire 1", "A", "A", "A", "A", "A"},
		{"Semaine impaire 1", "B", "B", "B", "B", "B"},
	})
	require.NoError(t, err)
	p.install([]*entity.Template{partial}, nil)

	got, err := p.Today(context.Background(), "Partiel", date(2025, time.March, 10))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "B", got.Task)
	assert.False(t, got.Fallback)
	assert.Equal(t, int64(0), p.FallbackCount())

	// 2025-03-17 is "Semaine paire 2", missing from the template
	got, err = p.Today(context.Background(), "Partiel", date(2025, time.March, 17))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A", got.Task)
	assert.True(t, got.Fallback)
	assert.Equal(t, int64(1), p.FallbackCount())

	m.mockSubTaskRepo.EXPECT().GetByTaskIDs(gomock.Any()).Return(map[string][]*entity.SubTask{}, nil).Times(1)
	planning, err := p.GeneratePlanning(context.Background(), "Partiel", date(2025, time.March, 17), date(2025, time.March, 21))
	require.NoError(t, err)
	require.Len(t, planning.Tasks, 5)
	for _, task := range planning.Tasks {
		assert.Equal(t, "Semaine paire 1", task.WeekLabel)
		assert.Equal(t, "A", task.Task)
		assert.False(t, task.Fallback)
	}
	assert.Equal(t, int64(1), p.FallbackCount())
}

func Test_planner_SubTasks(t *testing.T) {
	taskID := "2025-03-03T00:00:00.000Z-TDS3"

	t.Run("Should add a trimmed sub-task", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		m.mockSubTaskRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(st *entity.SubTask) error {
				assert.Equal(t, "subtask-id", st.ID)
				assert.Equal(t, taskID, st.TaskID)
				assert.Equal(t, "Vider les poubelles", st.Text)
				st.Position = 2
				return nil
			}).Times(1)

		got, err := p.AddSubTask(context.Background(), taskID, "  Vider les poubelles ")
		require.NoError(t, err)
		assert.Equal(t, 2, got.Position)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("Should reject an empty text", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		_, err := p.AddSubTask(context.Background(), taskID, "   ")
		assert.ErrorIs(t, err, ErrEmptySubTask)
	})

	t.Run("Should replace line breaks and tabs in the text", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		m.mockSubTaskRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(st *entity.SubTask) error {
				assert.Equal(t, "ligne 1 ligne 2 col", st.Text)
				return nil
			}).Times(1)

		got, err := p.AddSubTask(context.Background(), taskID, "ligne 1\nligne 2\tcol\r\n")
		require.NoError(t, err)
		assert.Equal(t, "ligne 1 ligne 2 col", got.Text)
	})

	t.Run("Should reject a text made of control characters", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		_, err := p.AddSubTask(context.Background(), taskID, "\n\t\r")
		assert.ErrorIs(t, err, ErrEmptySubTask)
	})

	t.Run("Should remove an existing sub-task", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		gomock.InOrder(
			m.mockSubTaskRepo.EXPECT().GetByID("s1").Return(&entity.SubTask{ID: "s1"}, nil),
			m.mockSubTaskRepo.EXPECT().Delete("s1").Return(nil),
		)

		require.NoError(t, p.RemoveSubTask(context.Background(), "s1"))
	})

	t.Run("Should report a missing sub-task", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		m.mockSubTaskRepo.EXPECT().GetByID("missing").Return(nil, nil).Times(1)

		err := p.RemoveSubTask(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrSubTaskNotFound)
	})

	t.Run("Should list sub-tasks by task", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		want := map[string][]*entity.SubTask{taskID: {{ID: "s1"}}}
		m.mockSubTaskRepo.EXPECT().GetByTaskIDs([]string{taskID}).Return(want, nil).Times(1)

		got, err := p.ListSubTasks(context.Background(), []string{taskID})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func Test_planner_ExportPlanning(t *testing.T) {
	t.Run("Should write the text export", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		m.mockSubTaskRepo.EXPECT().GetByTaskIDs(gomock.Any()).Return(map[string][]*entity.SubTask{}, nil).Times(1)

		var buf bytes.Buffer
		err := p.ExportPlanning(context.Background(), &buf, "txt", "Est", date(2025, time.March, 3), date(2025, time.March, 4))
		require.NoError(t, err)

		expected := "Planning Est - Du 03/03/2025 au 04/03/2025\n\n" +
			"Date\tJour\tType de Semaine\tTâche\tSous-tâches\n" +
			"03/03/2025\tLundi\tSemaine 1\tTDS3\t\n" +
			"04/03/2025\tMardi\tSemaine 1\tTDS3\t\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("Should reject an unknown format before generating", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		p := newTestPlanner(t, m)

		err := p.ExportPlanning(context.Background(), &bytes.Buffer{}, "pdf", "Est", date(2025, time.March, 3), date(2025, time.March, 4))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
