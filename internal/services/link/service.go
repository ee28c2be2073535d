package link

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/thenoetrevino/slotask/internal/events"
	"github.com/thenoetrevino/slotask/internal/models"
)

// Service manages a project's link repository
type Service interface {
	ListLinks(ctx context.Context, projectID int) ([]*models.Link, error)
	CreateLink(ctx context.Context, req CreateLinkRequest) (*models.Link, error)
	DeleteLink(ctx context.Context, id int) error
}

// CreateLinkRequest encapsulates data for storing a link
type CreateLinkRequest struct {
	ProjectID   int
	Title       string // Optional: empty means the URL host
	URL         string
	Description string
}

type repository interface {
	CreateLink(ctx context.Context, projectID int, title, url, description string) (*models.Link, error)
	GetLinksByProject(ctx context.Context, projectID int) ([]*models.Link, error)
	DeleteLink(ctx context.Context, id int) error
}

type service struct {
	repo        repository
	eventClient events.EventPublisher
}

// NewService creates a new link service
func NewService(repo repository, eventClient events.EventPublisher) Service {
	return &service{repo: repo, eventClient: eventClient}
}

func (s *service) ListLinks(ctx context.Context, projectID int) ([]*models.Link, error) {
	if projectID <= 0 {
		return nil, ErrInvalidProjectID
	}
	return s.repo.GetLinksByProject(ctx, projectID)
}

func (s *service) CreateLink(ctx context.Context, req CreateLinkRequest) (*models.Link, error) {
	if req.ProjectID <= 0 {
		return nil, ErrInvalidProjectID
	}

	u, err := NormalizeURL(req.URL)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = u.Host
	}

	l, err := s.repo.CreateLink(ctx, req.ProjectID, title, u.String(), strings.TrimSpace(req.Description))
	if err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	s.publish(req.ProjectID)
	return l, nil
}

func (s *service) DeleteLink(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidLinkID
	}
	if err := s.repo.DeleteLink(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("failed to delete link: %w", err)
	}
	// Project unknown after delete; viewers of every project refresh
	s.publish(0)
	return nil
}

// NormalizeURL parses raw, adding https:// when no scheme is given
func NormalizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidURL
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidURL
	}
	return u, nil
}

func (s *service) publish(projectID int) {
	if s.eventClient == nil {
		return
	}
	if err := s.eventClient.SendEvent(events.Event{
		Type:      events.EventDatabaseChanged,
		ProjectID: projectID,
	}); err != nil {
		slog.Warn("failed to send link event", "project_id", projectID, "error", err)
	}
}
