package models

// Board represents a kanban column within a project.
// Position orders boards left to right and is kept dense (0..N-1).
type Board struct {
	ID        int    `json:"id"`
	ProjectID int    `json:"project_id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
}

// GetID returns the board ID (used by quiet CLI output)
func (b *Board) GetID() int {
	return b.ID
}
