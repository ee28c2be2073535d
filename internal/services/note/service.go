package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/slotask/internal/events"
	"github.com/thenoetrevino/slotask/internal/models"
)

// Service manages a project's plain-text notes
type Service interface {
	ListNotes(ctx context.Context, projectID int) ([]*models.Note, error)
	GetNote(ctx context.Context, id int) (*models.Note, error)
	CreateNote(ctx context.Context, req CreateNoteRequest) (*models.Note, error)
	UpdateNote(ctx context.Context, req UpdateNoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, id int) error
}

// CreateNoteRequest encapsulates data for creating a note
type CreateNoteRequest struct {
	ProjectID int
	Title     string
	Content   string
}

// UpdateNoteRequest edits a note; nil fields are left unchanged
type UpdateNoteRequest struct {
	ID      int
	Title   *string
	Content *string
}

type repository interface {
	CreateNote(ctx context.Context, projectID int, title, content string) (*models.Note, error)
	GetNoteByID(ctx context.Context, id int) (*models.Note, error)
	GetNotesByProject(ctx context.Context, projectID int) ([]*models.Note, error)
	UpdateNote(ctx context.Context, id int, title, content string) error
	DeleteNote(ctx context.Context, id int) error
}

type service struct {
	repo        repository
	eventClient events.EventPublisher
}

// NewService creates a new note service
func NewService(repo repository, eventClient events.EventPublisher) Service {
	return &service{repo: repo, eventClient: eventClient}
}

func (s *service) ListNotes(ctx context.Context, projectID int) ([]*models.Note, error) {
	if projectID <= 0 {
		return nil, ErrInvalidProjectID
	}
	return s.repo.GetNotesByProject(ctx, projectID)
}

func (s *service) GetNote(ctx context.Context, id int) (*models.Note, error) {
	if id <= 0 {
		return nil, ErrInvalidNoteID
	}
	n, err := s.repo.GetNoteByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return n, nil
}

func (s *service) CreateNote(ctx context.Context, req CreateNoteRequest) (*models.Note, error) {
	if req.ProjectID <= 0 {
		return nil, ErrInvalidProjectID
	}
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}

	n, err := s.repo.CreateNote(ctx, req.ProjectID, title, req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	s.publish(n.ProjectID)
	return n, nil
}

func (s *service) UpdateNote(ctx context.Context, req UpdateNoteRequest) (*models.Note, error) {
	existing, err := s.GetNote(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	title, content := existing.Title, existing.Content
	if req.Title != nil {
		if title, err = validateTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Content != nil {
		content = *req.Content
	}

	if err := s.repo.UpdateNote(ctx, req.ID, title, content); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	s.publish(existing.ProjectID)
	return s.GetNote(ctx, req.ID)
}

func (s *service) DeleteNote(ctx context.Context, id int) error {
	existing, err := s.GetNote(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteNote(ctx, id); err != nil {
		return notFound(err)
	}
	s.publish(existing.ProjectID)
	return nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if len(title) > 255 {
		return "", ErrTitleTooLong
	}
	return title, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoteNotFound
	}
	return fmt.Errorf("failed to get note: %w", err)
}

func (s *service) publish(projectID int) {
	if s.eventClient == nil {
		return
	}
	if err := s.eventClient.SendEvent(events.Event{
		Type:      events.EventDatabaseChanged,
		ProjectID: projectID,
	}); err != nil {
		slog.Warn("failed to send note event", "project_id", projectID, "error", err)
	}
}
