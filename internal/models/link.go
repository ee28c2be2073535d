package models

import "time"

// Link is an entry in a project's link repository
type Link struct {
	ID          int       `json:"id"`
	ProjectID   int       `json:"project_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetID returns the link ID (used by quiet CLI output)
func (l *Link) GetID() int {
	return l.ID
}
