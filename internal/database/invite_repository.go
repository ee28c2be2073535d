package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/slotask/internal/models"
)

// InviteRepo records collaborator invitations
type InviteRepo struct {
	db *sql.DB
}

// Create stores an invitation; (project, email) is unique
func (r *InviteRepo) Create(ctx context.Context, projectID int, email, role, token string) (*models.Invite, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO invites (project_id, email, role, token) VALUES (?, ?, ?, ?)`,
		projectID, email, role, token,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert invite for '%s': %w", email, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get invite ID after insert: %w", err)
	}

	inv := &models.Invite{}
	err = r.db.QueryRowContext(ctx,
		`SELECT id, project_id, email, role, token, created_at FROM invites WHERE id = ?`, id,
	).Scan(&inv.ID, &inv.ProjectID, &inv.Email, &inv.Role, &inv.Token, &inv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read back invite %d: %w", id, err)
	}
	return inv, nil
}

// ExistsForEmail reports whether email was already invited to the project
func (r *InviteRepo) ExistsForEmail(ctx context.Context, projectID int, email string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invites WHERE project_id = ? AND email = ?`, projectID, email,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check invite for '%s': %w", email, err)
	}
	return n > 0, nil
}

// GetByProject lists a project's invitations
func (r *InviteRepo) GetByProject(ctx context.Context, projectID int) ([]*models.Invite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, email, role, token, created_at
		 FROM invites
		 WHERE project_id = ?
		 ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invites for project %d: %w", projectID, err)
	}
	defer func() { _ = rows.Close() }()

	invites := make([]*models.Invite, 0)
	for rows.Next() {
		inv := &models.Invite{}
		if err := rows.Scan(&inv.ID, &inv.ProjectID, &inv.Email, &inv.Role, &inv.Token, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}
