package models

import (
	"slices"
	"time"
)

// Card represents a single task on a board.
// Position orders cards top to bottom within BoardID and is kept dense (0..N-1).
type Card struct {
	ID          int        `json:"id"`
	BoardID     int        `json:"board_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Position    int        `json:"position"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GetID returns the card ID (used by quiet CLI output)
func (c *Card) GetID() int {
	return c.ID
}

// HasTag reports whether the card carries tag. Comparison is case-sensitive.
func (c *Card) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// Clone returns a deep copy of the card
func (c Card) Clone() Card {
	out := c
	if c.DueDate != nil {
		due := *c.DueDate
		out.DueDate = &due
	}
	out.Tags = slices.Clone(c.Tags)
	return out
}

// CardFields holds the user-editable fields supplied when a card is created
type CardFields struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
}

// CardPosition is a single persistent position/ownership write for a card
type CardPosition struct {
	CardID   int `json:"card_id"`
	BoardID  int `json:"board_id"`
	Position int `json:"position"`
}

// CardDetail is the full card view including its comments
type CardDetail struct {
	Card
	BoardName string     `json:"board_name"`
	ProjectID int        `json:"project_id"`
	Comments  []*Comment `json:"comments"`
}
