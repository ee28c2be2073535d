package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/slotask/internal/models"
)

// CommentRepo handles card comments
type CommentRepo struct {
	db *sql.DB
}

// Create appends a comment to a card
func (r *CommentRepo) Create(ctx context.Context, cardID int, authorID, content string) (*models.Comment, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (card_id, author_id, content) VALUES (?, ?, ?)`,
		cardID, authorID, content,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment on card %d: %w", cardID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get comment ID after insert: %w", err)
	}

	c := &models.Comment{}
	err = r.db.QueryRowContext(ctx,
		`SELECT id, card_id, author_id, content, created_at FROM comments WHERE id = ?`, id,
	).Scan(&c.ID, &c.CardID, &c.AuthorID, &c.Content, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read back comment %d: %w", id, err)
	}
	return c, nil
}

// GetByCard returns a card's comments oldest first
func (r *CommentRepo) GetByCard(ctx context.Context, cardID int) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, card_id, author_id, content, created_at
		 FROM comments
		 WHERE card_id = ?
		 ORDER BY created_at, id`, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for card %d: %w", cardID, err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		c := &models.Comment{}
		if err := rows.Scan(&c.ID, &c.CardID, &c.AuthorID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
