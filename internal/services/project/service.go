package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/slotask/internal/events"
	"github.com/thenoetrevino/slotask/internal/models"
)

// DefaultColor is used when a project is created without one
const DefaultColor = "#7D56F4"

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	ListInvites(ctx context.Context, projectID int) ([]*models.Invite, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) error
	DeleteProject(ctx context.Context, id int) error
	InviteCollaborator(ctx context.Context, req InviteRequest) (*models.Invite, error)
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name        string
	Color       string // Optional: empty means DefaultColor
	Description string
	OwnerID     string
}

// UpdateProjectRequest encapsulates data for updating a project.
// Nil fields are left unchanged.
type UpdateProjectRequest struct {
	ID          int
	Name        *string
	Color       *string
	Description *string
}

// InviteRequest asks for a collaborator to be added to a project
type InviteRequest struct {
	ProjectID int
	Email     string
	Role      string // Optional: empty means editor
}

// repository defines the data access methods needed by the project service
type repository interface {
	CreateProject(ctx context.Context, name, color, description, ownerID string) (*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, id int, name, color, description string) error
	DeleteProject(ctx context.Context, id int) error

	CreateInvite(ctx context.Context, projectID int, email, role, token string) (*models.Invite, error)
	InviteExists(ctx context.Context, projectID int, email string) (bool, error)
	GetInvitesByProject(ctx context.Context, projectID int) ([]*models.Invite, error)
}

// service implements Service interface with private repository
type service struct {
	repo        repository
	eventClient events.EventPublisher
}

// NewService creates a new project service
func NewService(repo repository, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// GetAllProjects retrieves all projects
func (s *service) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repo.GetAllProjects(ctx)
}

// GetProjectByID retrieves a specific project
func (s *service) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	if id <= 0 {
		return nil, ErrInvalidProjectID
	}
	p, err := s.repo.GetProjectByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// CreateProject creates a new project with validation
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Color == "" {
		req.Color = DefaultColor
	}
	if err := validateFields(req.Name, req.Color, req.Description); err != nil {
		return nil, err
	}

	project, err := s.repo.CreateProject(ctx, req.Name, req.Color, req.Description, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.publishProjectEvent(project.ID)
	return project, nil
}

// UpdateProject updates an existing project
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) error {
	if req.ID <= 0 {
		return ErrInvalidProjectID
	}

	// Get existing project to fill in missing fields
	existing, err := s.repo.GetProjectByID(ctx, req.ID)
	if err != nil {
		return notFound(err)
	}

	name := existing.Name
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	color := existing.Color
	if req.Color != nil {
		color = *req.Color
	}
	description := existing.Description
	if req.Description != nil {
		description = *req.Description
	}

	if err := validateFields(name, color, description); err != nil {
		return err
	}

	if err := s.repo.UpdateProject(ctx, req.ID, name, color, description); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	s.publishProjectEvent(req.ID)
	return nil
}

// DeleteProject deletes a project and everything it owns
func (s *service) DeleteProject(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidProjectID
	}

	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return notFound(err)
	}

	s.publishProjectEvent(id)
	return nil
}

// InviteCollaborator records an invitation with a fresh token.
// Delivering the invitation is left to the caller.
func (s *service) InviteCollaborator(ctx context.Context, req InviteRequest) (*models.Invite, error) {
	if req.ProjectID <= 0 {
		return nil, ErrInvalidProjectID
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return nil, ErrInvalidEmail
	}
	email := strings.ToLower(addr.Address)

	role := req.Role
	if role == "" {
		role = models.RoleEditor
	}
	if role != models.RoleEditor && role != models.RoleViewer {
		return nil, ErrInvalidRole
	}

	if _, err := s.repo.GetProjectByID(ctx, req.ProjectID); err != nil {
		return nil, notFound(err)
	}

	exists, err := s.repo.InviteExists(ctx, req.ProjectID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing invites: %w", err)
	}
	if exists {
		return nil, ErrAlreadyInvited
	}

	invite, err := s.repo.CreateInvite(ctx, req.ProjectID, email, role, uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	slog.Info("collaborator invited", "project_id", req.ProjectID, "role", role)
	return invite, nil
}

// ListInvites lists a project's invitations
func (s *service) ListInvites(ctx context.Context, projectID int) ([]*models.Invite, error) {
	if projectID <= 0 {
		return nil, ErrInvalidProjectID
	}
	return s.repo.GetInvitesByProject(ctx, projectID)
}

func validateFields(name, color, description string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > 100 {
		return ErrNameTooLong
	}
	if !hexColor.MatchString(color) {
		return ErrInvalidColor
	}
	if len(description) > 1000 {
		return ErrDescriptionTooLong
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProjectNotFound
	}
	return fmt.Errorf("failed to get project: %w", err)
}

// publishProjectEvent publishes a project event
func (s *service) publishProjectEvent(projectID int) {
	if s.eventClient == nil {
		return
	}

	if err := s.eventClient.SendEvent(events.Event{
		Type:      events.EventDatabaseChanged,
		ProjectID: projectID,
	}); err != nil {
		slog.Warn("failed to send event for project", "project_id", projectID, "error", err)
	}
}
