package models

import "time"

// Comment represents an immutable remark on a card
type Comment struct {
	ID        int       `json:"id"`
	CardID    int       `json:"card_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the comment ID (used by quiet CLI output)
func (c *Comment) GetID() int {
	return c.ID
}
