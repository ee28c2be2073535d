package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/slotask/internal/models"
)

// LinkRepo handles a project's link repository
type LinkRepo struct {
	db *sql.DB
}

// Create stores a link
func (r *LinkRepo) Create(ctx context.Context, projectID int, title, url, description string) (*models.Link, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO links (project_id, title, url, description) VALUES (?, ?, ?, ?)`,
		projectID, title, url, nullString(description),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert link '%s': %w", title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get link ID after insert: %w", err)
	}

	l := &models.Link{}
	var desc sql.NullString
	err = r.db.QueryRowContext(ctx,
		`SELECT id, project_id, title, url, description, created_at FROM links WHERE id = ?`, id,
	).Scan(&l.ID, &l.ProjectID, &l.Title, &l.URL, &desc, &l.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read back link %d: %w", id, err)
	}
	l.Description = NullStringToString(desc)
	return l, nil
}

// GetByProject lists a project's links in insertion order
func (r *LinkRepo) GetByProject(ctx context.Context, projectID int) ([]*models.Link, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, title, url, description, created_at
		 FROM links
		 WHERE project_id = ?
		 ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links for project %d: %w", projectID, err)
	}
	defer func() { _ = rows.Close() }()

	links := make([]*models.Link, 0)
	for rows.Next() {
		l := &models.Link{}
		var desc sql.NullString
		if err := rows.Scan(&l.ID, &l.ProjectID, &l.Title, &l.URL, &desc, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		l.Description = NullStringToString(desc)
		links = append(links, l)
	}
	return links, rows.Err()
}

// Delete removes a link
func (r *LinkRepo) Delete(ctx context.Context, id int) error {
	if err := execOne(ctx, r.db, `DELETE FROM links WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete link %d: %w", id, err)
	}
	return nil
}
