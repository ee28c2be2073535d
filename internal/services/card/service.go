package card

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/slotask/internal/events"
	"github.com/thenoetrevino/slotask/internal/models"
	"github.com/thenoetrevino/slotask/internal/user"
)

// Field limits
const (
	MaxTitleLength   = 255
	MaxTagLength     = 50
	MaxCommentLength = 1000
)

// Service covers card field edits, tags and comments.
// Creating and moving cards belongs to the board engine.
type Service interface {
	GetCardDetail(ctx context.Context, cardID int) (*models.CardDetail, error)
	UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error)
	AddTag(ctx context.Context, cardID int, tag string) (*models.Card, error)
	RemoveTag(ctx context.Context, cardID int, tag string) (*models.Card, error)
	AddComment(ctx context.Context, req CreateCommentRequest) (*models.Comment, error)
}

// UpdateCardRequest encapsulates a field edit.
// Fields with pointers are optional - nil means don't update.
type UpdateCardRequest struct {
	CardID       int
	Title        *string
	Description  *string
	Priority     *string
	DueDate      *time.Time
	ClearDueDate bool
}

// CreateCommentRequest encapsulates a new comment
type CreateCommentRequest struct {
	CardID  int
	Author  string // Optional: empty means the current user
	Content string
}

type repository interface {
	GetCardByID(ctx context.Context, id int) (*models.Card, error)
	GetCardDetail(ctx context.Context, id int) (*models.CardDetail, error)
	GetBoardByID(ctx context.Context, id int) (*models.Board, error)
	UpdateCardFields(ctx context.Context, id int, fields models.CardFields) error
	AddCardTag(ctx context.Context, cardID int, tag string) error
	RemoveCardTag(ctx context.Context, cardID int, tag string) error
	CreateComment(ctx context.Context, cardID int, authorID, content string) (*models.Comment, error)
}

type service struct {
	repo        repository
	eventClient events.EventPublisher
}

// NewService creates a new card service
func NewService(repo repository, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// GetCardDetail retrieves a card with its comments
func (s *service) GetCardDetail(ctx context.Context, cardID int) (*models.CardDetail, error) {
	if cardID <= 0 {
		return nil, ErrInvalidCardID
	}
	detail, err := s.repo.GetCardDetail(ctx, cardID)
	if err != nil {
		return nil, notFound(err)
	}
	return detail, nil
}

// UpdateCard edits a card's fields. Position and board never change here.
func (s *service) UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error) {
	if req.CardID <= 0 {
		return nil, ErrInvalidCardID
	}

	existing, err := s.getCard(ctx, req.CardID)
	if err != nil {
		return nil, err
	}

	fields := models.CardFields{
		Title:       existing.Title,
		Description: existing.Description,
		Priority:    existing.Priority,
		DueDate:     existing.DueDate,
	}
	if req.Title != nil {
		fields.Title = strings.TrimSpace(*req.Title)
		if fields.Title == "" {
			return nil, ErrEmptyTitle
		}
		if utf8.RuneCountInString(fields.Title) > MaxTitleLength {
			return nil, ErrTitleTooLong
		}
	}
	if req.Description != nil {
		fields.Description = *req.Description
	}
	if req.Priority != nil {
		p, err := models.ParsePriority(*req.Priority)
		if err != nil {
			return nil, ErrInvalidPriority
		}
		fields.Priority = p
	}
	if req.ClearDueDate {
		fields.DueDate = nil
	} else if req.DueDate != nil {
		fields.DueDate = req.DueDate
	}

	if err := s.repo.UpdateCardFields(ctx, req.CardID, fields); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	s.publishCardEvent(ctx, existing.BoardID)
	return s.getCard(ctx, req.CardID)
}

// AddTag attaches a tag. Tags are case-sensitive; an exact duplicate is rejected.
func (s *service) AddTag(ctx context.Context, cardID int, tag string) (*models.Card, error) {
	tag, err := validateTag(tag)
	if err != nil {
		return nil, err
	}
	if cardID <= 0 {
		return nil, ErrInvalidCardID
	}

	card, err := s.getCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.HasTag(tag) {
		return nil, ErrDuplicateTag
	}

	if err := s.repo.AddCardTag(ctx, cardID, tag); err != nil {
		return nil, fmt.Errorf("failed to add tag: %w", err)
	}

	s.publishCardEvent(ctx, card.BoardID)
	return s.getCard(ctx, cardID)
}

// RemoveTag detaches a tag
func (s *service) RemoveTag(ctx context.Context, cardID int, tag string) (*models.Card, error) {
	tag, err := validateTag(tag)
	if err != nil {
		return nil, err
	}
	if cardID <= 0 {
		return nil, ErrInvalidCardID
	}

	card, err := s.getCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RemoveCardTag(ctx, cardID, tag); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to remove tag: %w", err)
	}

	s.publishCardEvent(ctx, card.BoardID)
	return s.getCard(ctx, cardID)
}

// AddComment appends an immutable comment to a card
func (s *service) AddComment(ctx context.Context, req CreateCommentRequest) (*models.Comment, error) {
	if req.CardID <= 0 {
		return nil, ErrInvalidCardID
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyComment
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return nil, ErrCommentTooLong
	}

	card, err := s.getCard(ctx, req.CardID)
	if err != nil {
		return nil, err
	}

	author := req.Author
	if author == "" {
		author = user.GetCurrentUsername()
	}

	comment, err := s.repo.CreateComment(ctx, req.CardID, author, content)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.publishCardEvent(ctx, card.BoardID)
	return comment, nil
}

func (s *service) getCard(ctx context.Context, id int) (*models.Card, error) {
	card, err := s.repo.GetCardByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return card, nil
}

func validateTag(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", ErrEmptyTag
	}
	if utf8.RuneCountInString(tag) > MaxTagLength {
		return "", ErrTagTooLong
	}
	return tag, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCardNotFound
	}
	return fmt.Errorf("failed to get card: %w", err)
}

// publishCardEvent notifies viewers of the card's project
func (s *service) publishCardEvent(ctx context.Context, boardID int) {
	if s.eventClient == nil {
		return
	}

	b, err := s.repo.GetBoardByID(ctx, boardID)
	if err != nil {
		slog.Warn("failed to resolve project for card event", "board_id", boardID, "error", err)
		return
	}

	if err := s.eventClient.SendEvent(events.Event{
		Type:      events.EventDatabaseChanged,
		ProjectID: b.ProjectID,
	}); err != nil {
		slog.Warn("failed to send event for card", "board_id", boardID, "error", err)
	}
}
