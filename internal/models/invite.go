package models

import "time"

// Collaborator roles
const (
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Invite records a pending collaborator invitation to a project
type Invite struct {
	ID        int       `json:"id"`
	ProjectID int       `json:"project_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the invite ID (used by quiet CLI output)
func (i *Invite) GetID() int {
	return i.ID
}
