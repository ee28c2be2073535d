package models

import "time"

// Note is a free-text page attached to a project
type Note struct {
	ID        int       `json:"id"`
	ProjectID int       `json:"project_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the note ID (used by quiet CLI output)
func (n *Note) GetID() int {
	return n.ID
}
