package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/slotask/internal/models"
)

// NoteRepo handles project notes
type NoteRepo struct {
	db *sql.DB
}

func scanNote(row interface{ Scan(...any) error }) (*models.Note, error) {
	n := &models.Note{}
	if err := row.Scan(&n.ID, &n.ProjectID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return n, nil
}

// Create inserts a note into a project
func (r *NoteRepo) Create(ctx context.Context, projectID int, title, content string) (*models.Note, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (project_id, title, content) VALUES (?, ?, ?)`,
		projectID, title, content,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note '%s': %w", title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get note ID after insert: %w", err)
	}
	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a single note
func (r *NoteRepo) GetByID(ctx context.Context, id int) (*models.Note, error) {
	n, err := scanNote(r.db.QueryRowContext(ctx,
		`SELECT id, project_id, title, content, created_at, updated_at FROM notes WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get note %d: %w", id, err)
	}
	return n, nil
}

// GetByProject lists a project's notes, most recently updated first
func (r *NoteRepo) GetByProject(ctx context.Context, projectID int) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, title, content, created_at, updated_at
		 FROM notes
		 WHERE project_id = ?
		 ORDER BY updated_at DESC, id DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes for project %d: %w", projectID, err)
	}
	defer func() { _ = rows.Close() }()

	notes := make([]*models.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Update overwrites a note's title and content
func (r *NoteRepo) Update(ctx context.Context, id int, title, content string) error {
	err := execOne(ctx, r.db,
		`UPDATE notes SET title = ?, content = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		title, content, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update note %d: %w", id, err)
	}
	return nil
}

// Delete removes a note
func (r *NoteRepo) Delete(ctx context.Context, id int) error {
	if err := execOne(ctx, r.db, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}
	return nil
}
