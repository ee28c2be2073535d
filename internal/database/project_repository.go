package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/slotask/internal/models"
)

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	db *sql.DB
}

const projectColumns = `id, name, color, description, owner_id, created_at`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	p := &models.Project{}
	var description sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &p.Color, &description, &p.OwnerID, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Description = NullStringToString(description)
	return p, nil
}

// Create inserts a new project owned by ownerID
func (r *ProjectRepo) Create(ctx context.Context, name, color, description, ownerID string) (*models.Project, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, color, description, owner_id) VALUES (?, ?, ?, ?)`,
		name, color, nullString(description), ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project '%s': %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get project ID after insert: %w", err)
	}

	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a project. Returns a wrapped sql.ErrNoRows when absent.
func (r *ProjectRepo) GetByID(ctx context.Context, id int) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return p, nil
}

// GetAll retrieves all projects ordered by creation
func (r *ProjectRepo) GetAll(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Update overwrites a project's editable fields
func (r *ProjectRepo) Update(ctx context.Context, id int, name, color, description string) error {
	err := execOne(ctx, r.db,
		`UPDATE projects SET name = ?, color = ?, description = ? WHERE id = ?`,
		name, color, nullString(description), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %d: %w", id, err)
	}
	return nil
}

// Delete removes a project; boards, cards, notes, links and invites cascade
func (r *ProjectRepo) Delete(ctx context.Context, id int) error {
	if err := execOne(ctx, r.db, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	return nil
}
