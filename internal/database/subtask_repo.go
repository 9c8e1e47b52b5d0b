package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
)

type subTaskRepo struct {
	db dbConn
}

func newSubTaskRepo(db dbConn) contract.SubTaskRepo {
	return &subTaskRepo{db: db}
}

// Create appends the sub-task after the existing ones of the same task and
// sets its Position.
func (r *subTaskRepo) Create(subTask *entity.SubTask) error {
	query := `
		INSERT INTO subtasks (id, task_id, text, position, created_at)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM subtasks WHERE task_id = ?), ?)
	`

	if subTask.CreatedAt.IsZero() {
		subTask.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(query,
		subTask.ID,
		subTask.TaskID,
		subTask.Text,
		subTask.TaskID,
		subTask.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create sub-task: %w", err)
	}

	err = r.db.QueryRow(`SELECT position FROM subtasks WHERE id = ?`, subTask.ID).Scan(&subTask.Position)
	if err != nil {
		return fmt.Errorf("failed to read sub-task position: %w", err)
	}

	return nil
}

func (r *subTaskRepo) GetByID(id string) (*entity.SubTask, error) {
	subTask := &entity.SubTask{}
	query := `
		SELECT id, task_id, text, position, created_at
		FROM subtasks
		WHERE id = ?
	`

	err := r.db.QueryRow(query, id).Scan(
		&subTask.ID,
		&subTask.TaskID,
		&subTask.Text,
		&subTask.Position,
		&subTask.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sub-task: %w", err)
	}

	return subTask, nil
}

// GetByTaskIDs groups the sub-tasks of the given tasks by task id, each
// group ordered by position. Tasks without sub-tasks are absent from the map.
func (r *subTaskRepo) GetByTaskIDs(taskIDs []string) (map[string][]*entity.SubTask, error) {
	result := make(map[string][]*entity.SubTask)
	if len(taskIDs) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(taskIDs)), ",")
	query := fmt.Sprintf(`
		SELECT id, task_id, text, position, created_at
		FROM subtasks
		WHERE task_id IN (%s)
		ORDER BY task_id, position
	`, placeholders)

	args := make([]interface{}, len(taskIDs))
	for i, id := range taskIDs {
		args[i] = id
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get sub-tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		subTask := &entity.SubTask{}
		err := rows.Scan(
			&subTask.ID,
			&subTask.TaskID,
			&subTask.Text,
			&subTask.Position,
			&subTask.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sub-task: %w", err)
		}
		result[subTask.TaskID] = append(result[subTask.TaskID], subTask)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sub-tasks: %w", err)
	}

	return result, nil
}

func (r *subTaskRepo) Delete(id string) error {
	query := `DELETE FROM subtasks WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete sub-task: %w", err)
	}

	return nil
}
