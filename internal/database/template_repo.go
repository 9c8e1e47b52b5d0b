package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
)

type templateRepo struct {
	db dbConn
}

func newTemplateRepo(db dbConn) contract.TemplateRepo {
	return &templateRepo{db: db}
}

// Save inserts the template or replaces the stored version with the same name.
func (r *templateRepo) Save(template *entity.Template) error {
	query := `
		INSERT INTO templates (name, rotation_kind, cycle_reference, cells, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			rotation_kind = excluded.rotation_kind,
			cycle_reference = excluded.cycle_reference,
			cells = excluded.cells,
			updated_at = excluded.updated_at
	`

	cellsJSON, err := json.Marshal(template.Cells())
	if err != nil {
		return fmt.Errorf("failed to marshal template cells: %w", err)
	}

	var reference string
	if !template.Rotation.Reference.IsZero() {
		reference = template.Rotation.Reference.Format(domain.ISODate)
	}

	now := time.Now().UTC()
	_, err = r.db.Exec(query,
		template.Name,
		string(template.Rotation.Kind),
		reference,
		string(cellsJSON),
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	template.Edited = true
	template.UpdatedAt = now
	return nil
}

func (r *templateRepo) GetByName(name string) (*entity.Template, error) {
	query := `
		SELECT name, rotation_kind, cycle_reference, cells, updated_at
		FROM templates
		WHERE name = ?
	`

	template, err := scanTemplate(r.db.QueryRow(query, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	return template, nil
}

func (r *templateRepo) GetAll() ([]*entity.Template, error) {
	query := `
		SELECT name, rotation_kind, cycle_reference, cells, updated_at
		FROM templates
		ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}
	defer rows.Close()

	var templates []*entity.Template
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate templates: %w", err)
	}

	return templates, nil
}

func (r *templateRepo) Delete(name string) error {
	query := `DELETE FROM templates WHERE name = ?`

	_, err := r.db.Exec(query, name)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*entity.Template, error) {
	var (
		name, kind, reference, cellsJSON string
		updatedAt                        time.Time
	)
	if err := row.Scan(&name, &kind, &reference, &cellsJSON, &updatedAt); err != nil {
		return nil, err
	}

	var cells [][]string
	if err := json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cells of %q: %w", name, err)
	}

	rotation := entity.Rotation{Kind: entity.RotationKind(kind)}
	if reference != "" {
		ref, err := time.Parse(domain.ISODate, reference)
		if err != nil {
			return nil, fmt.Errorf("invalid cycle reference of %q: %w", name, err)
		}
		rotation.Reference = ref
	}

	template, err := entity.NewTemplate(name, rotation, cells)
	if err != nil {
		return nil, err
	}
	template.Edited = true
	template.UpdatedAt = updatedAt

	return template, nil
}
