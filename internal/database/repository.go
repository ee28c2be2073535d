package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/slotask/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ProjectRepo
	*BoardRepo
	*CardRepo
	*CommentRepo
	*NoteRepo
	*LinkRepo
	*InviteRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ProjectRepo: &ProjectRepo{db: db},
		BoardRepo:   &BoardRepo{db: db},
		CardRepo:    &CardRepo{db: db},
		CommentRepo: &CommentRepo{db: db},
		NoteRepo:    &NoteRepo{db: db},
		LinkRepo:    &LinkRepo{db: db},
		InviteRepo:  &InviteRepo{db: db},
	}
}

// Wrapper methods for ProjectRepo to maintain existing API
func (r *Repository) CreateProject(ctx context.Context, name, color, description, ownerID string) (*models.Project, error) {
	return r.ProjectRepo.Create(ctx, name, color, description, ownerID)
}

func (r *Repository) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return r.ProjectRepo.GetAll(ctx)
}

func (r *Repository) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	return r.ProjectRepo.GetByID(ctx, id)
}

func (r *Repository) UpdateProject(ctx context.Context, id int, name, color, description string) error {
	return r.ProjectRepo.Update(ctx, id, name, color, description)
}

func (r *Repository) DeleteProject(ctx context.Context, id int) error {
	return r.ProjectRepo.Delete(ctx, id)
}

// Wrapper methods for BoardRepo
func (r *Repository) ListBoards(ctx context.Context, projectID int) ([]*models.Board, error) {
	return r.BoardRepo.List(ctx, projectID)
}

func (r *Repository) GetBoardByID(ctx context.Context, id int) (*models.Board, error) {
	return r.BoardRepo.GetByID(ctx, id)
}

func (r *Repository) InsertBoard(ctx context.Context, projectID int, name string, position int) (*models.Board, error) {
	return r.BoardRepo.Insert(ctx, projectID, name, position)
}

func (r *Repository) UpdateBoardName(ctx context.Context, id int, name string) error {
	return r.BoardRepo.UpdateName(ctx, id, name)
}

// Wrapper methods for CardRepo
func (r *Repository) ListCards(ctx context.Context, boardIDs []int) ([]*models.Card, error) {
	return r.CardRepo.List(ctx, boardIDs)
}

func (r *Repository) GetCardByID(ctx context.Context, id int) (*models.Card, error) {
	return r.CardRepo.GetByID(ctx, id)
}

func (r *Repository) GetCardDetail(ctx context.Context, id int) (*models.CardDetail, error) {
	return r.CardRepo.GetDetail(ctx, id)
}

func (r *Repository) InsertCard(ctx context.Context, boardID int, fields models.CardFields, position int) (*models.Card, error) {
	return r.CardRepo.Insert(ctx, boardID, fields, position)
}

func (r *Repository) UpdateCardPosition(ctx context.Context, cardID, boardID, position int) error {
	return r.CardRepo.UpdatePosition(ctx, cardID, boardID, position)
}

func (r *Repository) ApplyCardPositions(ctx context.Context, updates []models.CardPosition) error {
	return r.CardRepo.ApplyPositions(ctx, updates)
}

func (r *Repository) UpdateCardFields(ctx context.Context, id int, fields models.CardFields) error {
	return r.CardRepo.UpdateFields(ctx, id, fields)
}

func (r *Repository) AddCardTag(ctx context.Context, cardID int, tag string) error {
	return r.CardRepo.AddTag(ctx, cardID, tag)
}

func (r *Repository) RemoveCardTag(ctx context.Context, cardID int, tag string) error {
	return r.CardRepo.RemoveTag(ctx, cardID, tag)
}

// Wrapper methods for CommentRepo
func (r *Repository) CreateComment(ctx context.Context, cardID int, authorID, content string) (*models.Comment, error) {
	return r.CommentRepo.Create(ctx, cardID, authorID, content)
}

func (r *Repository) GetCommentsByCard(ctx context.Context, cardID int) ([]*models.Comment, error) {
	return r.CommentRepo.GetByCard(ctx, cardID)
}

// Wrapper methods for NoteRepo
func (r *Repository) CreateNote(ctx context.Context, projectID int, title, content string) (*models.Note, error) {
	return r.NoteRepo.Create(ctx, projectID, title, content)
}

func (r *Repository) GetNoteByID(ctx context.Context, id int) (*models.Note, error) {
	return r.NoteRepo.GetByID(ctx, id)
}

func (r *Repository) GetNotesByProject(ctx context.Context, projectID int) ([]*models.Note, error) {
	return r.NoteRepo.GetByProject(ctx, projectID)
}

func (r *Repository) UpdateNote(ctx context.Context, id int, title, content string) error {
	return r.NoteRepo.Update(ctx, id, title, content)
}

func (r *Repository) DeleteNote(ctx context.Context, id int) error {
	return r.NoteRepo.Delete(ctx, id)
}

// Wrapper methods for LinkRepo
func (r *Repository) CreateLink(ctx context.Context, projectID int, title, url, description string) (*models.Link, error) {
	return r.LinkRepo.Create(ctx, projectID, title, url, description)
}

func (r *Repository) GetLinksByProject(ctx context.Context, projectID int) ([]*models.Link, error) {
	return r.LinkRepo.GetByProject(ctx, projectID)
}

func (r *Repository) DeleteLink(ctx context.Context, id int) error {
	return r.LinkRepo.Delete(ctx, id)
}

// Wrapper methods for InviteRepo
func (r *Repository) CreateInvite(ctx context.Context, projectID int, email, role, token string) (*models.Invite, error) {
	return r.InviteRepo.Create(ctx, projectID, email, role, token)
}

func (r *Repository) InviteExists(ctx context.Context, projectID int, email string) (bool, error) {
	return r.InviteRepo.ExistsForEmail(ctx, projectID, email)
}

func (r *Repository) GetInvitesByProject(ctx context.Context, projectID int) ([]*models.Invite, error) {
	return r.InviteRepo.GetByProject(ctx, projectID)
}
