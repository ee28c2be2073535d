package models

import "time"

// Project represents the top-level container for boards, notes and links
type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"` // Hex color code (e.g., "#7D56F4")
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetID returns the project ID (used by quiet CLI output)
func (p *Project) GetID() int {
	return p.ID
}
