package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/slotask/internal/models"
)

// CardRepo handles cards, their tags and their positions
type CardRepo struct {
	db *sql.DB
}

const cardColumns = `c.id, c.board_id, c.title, c.description, c.priority, c.position,
	c.due_date, c.created_at, c.updated_at`

func scanCard(row interface{ Scan(...any) error }) (*models.Card, error) {
	c := &models.Card{}
	var (
		description sql.NullString
		priority    string
		due         sql.NullTime
	)
	err := row.Scan(&c.ID, &c.BoardID, &c.Title, &description, &priority, &c.Position,
		&due, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Description = NullStringToString(description)
	c.Priority = models.Priority(priority)
	c.DueDate = nullTimeToPtr(due)
	c.Tags = []string{}
	return c, nil
}

// Insert creates a card on boardID at position
func (r *CardRepo) Insert(ctx context.Context, boardID int, fields models.CardFields, position int) (*models.Card, error) {
	priority := fields.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (board_id, title, description, priority, position, due_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		boardID, fields.Title, nullString(fields.Description), string(priority), position,
		timePtrToNull(fields.DueDate),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert card '%s' on board %d: %w", fields.Title, boardID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get card ID after insert: %w", err)
	}

	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a card with its tags
func (r *CardRepo) GetByID(ctx context.Context, id int) (*models.Card, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+cardColumns+` FROM cards c WHERE c.id = ?`, id)
	c, err := scanCard(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get card %d: %w", id, err)
	}

	tags, err := r.tagsFor(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	if t, ok := tags[id]; ok {
		c.Tags = t
	}
	return c, nil
}

// GetDetail retrieves a card together with its board name, project and comments
func (r *CardRepo) GetDetail(ctx context.Context, id int) (*models.CardDetail, error) {
	card, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.CardDetail{Card: *card}
	err = r.db.QueryRowContext(ctx,
		`SELECT name, project_id FROM boards WHERE id = ?`, card.BoardID,
	).Scan(&detail.BoardName, &detail.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get board for card %d: %w", id, err)
	}

	comments, err := (&CommentRepo{db: r.db}).GetByCard(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Comments = comments
	return detail, nil
}

// List returns every card on the given boards ordered by board, then position.
// Ties are broken by id.
func (r *CardRepo) List(ctx context.Context, boardIDs []int) ([]*models.Card, error) {
	cards := make([]*models.Card, 0)
	if len(boardIDs) == 0 {
		return cards, nil
	}

	query := `SELECT ` + cardColumns + `
		FROM cards c
		WHERE c.board_id IN (` + placeholders(len(boardIDs)) + `)
		ORDER BY c.board_id, c.position, c.id`
	rows, err := r.db.QueryContext(ctx, query, intsToArgs(boardIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cards: %w", err)
	}
	// Release the connection before the tag query
	_ = rows.Close()

	if len(cards) == 0 {
		return cards, nil
	}

	ids := make([]int, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	tags, err := r.tagsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range cards {
		if t, ok := tags[c.ID]; ok {
			c.Tags = t
		}
	}
	return cards, nil
}

func (r *CardRepo) tagsFor(ctx context.Context, cardIDs []int) (map[int][]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT card_id, tag FROM card_tags
		 WHERE card_id IN (`+placeholders(len(cardIDs))+`)
		 ORDER BY card_id, tag`, intsToArgs(cardIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query card tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make(map[int][]string)
	for rows.Next() {
		var (
			cardID int
			tag    string
		)
		if err := rows.Scan(&cardID, &tag); err != nil {
			return nil, fmt.Errorf("failed to scan card tag: %w", err)
		}
		tags[cardID] = append(tags[cardID], tag)
	}
	return tags, rows.Err()
}

// UpdatePosition persists a card's board and position in a single statement
func (r *CardRepo) UpdatePosition(ctx context.Context, cardID, boardID, position int) error {
	err := execOne(ctx, r.db,
		`UPDATE cards SET board_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		boardID, position, cardID,
	)
	if err != nil {
		return fmt.Errorf("failed to update position of card %d: %w", cardID, err)
	}
	return nil
}

// ApplyPositions writes every position update in one transaction.
// Either all updates land or none do.
func (r *CardRepo) ApplyPositions(ctx context.Context, updates []models.CardPosition) error {
	if len(updates) == 0 {
		return nil
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`UPDATE cards SET board_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`)
		if err != nil {
			return fmt.Errorf("failed to prepare position update: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, u := range updates {
			result, err := stmt.ExecContext(ctx, u.BoardID, u.Position, u.CardID)
			if err != nil {
				return fmt.Errorf("failed to update position of card %d: %w", u.CardID, err)
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to check position update of card %d: %w", u.CardID, err)
			}
			if affected == 0 {
				return fmt.Errorf("failed to update position of card %d: %w", u.CardID, sql.ErrNoRows)
			}
		}
		return nil
	})
}

// UpdateFields overwrites the user-editable fields of a card
func (r *CardRepo) UpdateFields(ctx context.Context, id int, fields models.CardFields) error {
	err := execOne(ctx, r.db,
		`UPDATE cards
		 SET title = ?, description = ?, priority = ?, due_date = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		fields.Title, nullString(fields.Description), string(fields.Priority),
		timePtrToNull(fields.DueDate), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update card %d: %w", id, err)
	}
	return nil
}

// AddTag attaches tag to a card
func (r *CardRepo) AddTag(ctx context.Context, cardID int, tag string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO card_tags (card_id, tag) VALUES (?, ?)`, cardID, tag)
	if err != nil {
		return fmt.Errorf("failed to tag card %d with '%s': %w", cardID, tag, err)
	}
	return nil
}

// RemoveTag detaches tag from a card. Returns a wrapped sql.ErrNoRows if the card lacked it.
func (r *CardRepo) RemoveTag(ctx context.Context, cardID int, tag string) error {
	err := execOne(ctx, r.db,
		`DELETE FROM card_tags WHERE card_id = ? AND tag = ?`, cardID, tag)
	if err != nil {
		return fmt.Errorf("failed to remove tag '%s' from card %d: %w", tag, cardID, err)
	}
	return nil
}
