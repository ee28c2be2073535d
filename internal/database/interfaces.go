// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/slotask/internal/models"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	CreateProject(ctx context.Context, name, color, description, ownerID string) (*models.Project, error)
	UpdateProject(ctx context.Context, id int, name, color, description string) error
	DeleteProject(ctx context.Context, id int) error
}

// ProjectRepository combines all project-related operations.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}

// BoardRepository covers board rows.
type BoardRepository interface {
	ListBoards(ctx context.Context, projectID int) ([]*models.Board, error)
	GetBoardByID(ctx context.Context, id int) (*models.Board, error)
	InsertBoard(ctx context.Context, projectID int, name string, position int) (*models.Board, error)
	UpdateBoardName(ctx context.Context, id int, name string) error
}

// CardReader defines read operations for cards.
type CardReader interface {
	ListCards(ctx context.Context, boardIDs []int) ([]*models.Card, error)
	GetCardByID(ctx context.Context, id int) (*models.Card, error)
	GetCardDetail(ctx context.Context, id int) (*models.CardDetail, error)
}

// CardWriter defines write operations for cards.
type CardWriter interface {
	InsertCard(ctx context.Context, boardID int, fields models.CardFields, position int) (*models.Card, error)
	UpdateCardPosition(ctx context.Context, cardID, boardID, position int) error
	ApplyCardPositions(ctx context.Context, updates []models.CardPosition) error
	UpdateCardFields(ctx context.Context, id int, fields models.CardFields) error
	AddCardTag(ctx context.Context, cardID int, tag string) error
	RemoveCardTag(ctx context.Context, cardID int, tag string) error
}

// CardRepository combines all card-related operations.
type CardRepository interface {
	CardReader
	CardWriter
}

// CommentRepository covers card comments.
type CommentRepository interface {
	CreateComment(ctx context.Context, cardID int, authorID, content string) (*models.Comment, error)
	GetCommentsByCard(ctx context.Context, cardID int) ([]*models.Comment, error)
}

// NoteRepository covers project notes.
type NoteRepository interface {
	CreateNote(ctx context.Context, projectID int, title, content string) (*models.Note, error)
	GetNoteByID(ctx context.Context, id int) (*models.Note, error)
	GetNotesByProject(ctx context.Context, projectID int) ([]*models.Note, error)
	UpdateNote(ctx context.Context, id int, title, content string) error
	DeleteNote(ctx context.Context, id int) error
}

// LinkRepository covers project links.
type LinkRepository interface {
	CreateLink(ctx context.Context, projectID int, title, url, description string) (*models.Link, error)
	GetLinksByProject(ctx context.Context, projectID int) ([]*models.Link, error)
	DeleteLink(ctx context.Context, id int) error
}

// InviteRepository covers collaborator invitations.
type InviteRepository interface {
	CreateInvite(ctx context.Context, projectID int, email, role, token string) (*models.Invite, error)
	InviteExists(ctx context.Context, projectID int, email string) (bool, error)
	GetInvitesByProject(ctx context.Context, projectID int) ([]*models.Invite, error)
}
