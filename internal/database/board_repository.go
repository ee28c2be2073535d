package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/slotask/internal/models"
)

// BoardRepo handles board rows
type BoardRepo struct {
	db *sql.DB
}

// Insert creates a board at the given position
func (r *BoardRepo) Insert(ctx context.Context, projectID int, name string, position int) (*models.Board, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO boards (project_id, name, position) VALUES (?, ?, ?)`,
		projectID, name, position,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert board '%s' into project %d: %w", name, projectID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get board ID after insert: %w", err)
	}

	return &models.Board{
		ID:        int(id),
		ProjectID: projectID,
		Name:      name,
		Position:  position,
	}, nil
}

// GetByID retrieves a single board
func (r *BoardRepo) GetByID(ctx context.Context, id int) (*models.Board, error) {
	b := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, name, position FROM boards WHERE id = ?`, id,
	).Scan(&b.ID, &b.ProjectID, &b.Name, &b.Position)
	if err != nil {
		return nil, fmt.Errorf("failed to get board %d: %w", id, err)
	}
	return b, nil
}

// List returns a project's boards ordered by stored position.
// Ties are broken by id so the order is stable.
func (r *BoardRepo) List(ctx context.Context, projectID int) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, name, position
		 FROM boards
		 WHERE project_id = ?
		 ORDER BY position, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards for project %d: %w", projectID, err)
	}
	defer func() { _ = rows.Close() }()

	boards := make([]*models.Board, 0)
	for rows.Next() {
		b := &models.Board{}
		if err := rows.Scan(&b.ID, &b.ProjectID, &b.Name, &b.Position); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

// UpdateName renames a board
func (r *BoardRepo) UpdateName(ctx context.Context, id int, name string) error {
	if err := execOne(ctx, r.db, `UPDATE boards SET name = ? WHERE id = ?`, name, id); err != nil {
		return fmt.Errorf("failed to rename board %d: %w", id, err)
	}
	return nil
}
