package database

// DataStore defines the unified interface for all data operations.
// It is composed of smaller, domain-specific interfaces; consumers should
// depend on the smallest one they need.
type DataStore interface {
	ProjectRepository
	BoardRepository
	CardRepository
	CommentRepository
	NoteRepository
	LinkRepository
	InviteRepository
}

var _ DataStore = (*Repository)(nil)
