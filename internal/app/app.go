package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/slotask/internal/board"
	"github.com/thenoetrevino/slotask/internal/database"
	"github.com/thenoetrevino/slotask/internal/events"
	cardservice "github.com/thenoetrevino/slotask/internal/services/card"
	linkservice "github.com/thenoetrevino/slotask/internal/services/link"
	noteservice "github.com/thenoetrevino/slotask/internal/services/note"
	projectservice "github.com/thenoetrevino/slotask/internal/services/project"
)

// App holds all application services and the per-project board engines.
type App struct {
	repo        *database.Repository
	eventClient events.EventPublisher
	logger      *slog.Logger

	ProjectService projectservice.Service
	CardService    cardservice.Service
	NoteService    noteservice.Service
	LinkService    linkservice.Service

	mu      sync.Mutex
	engines map[int]*board.Engine
}

// New creates a new App with all services initialized.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)

	return &App{
		repo:           repo,
		eventClient:    cfg.eventClient,
		logger:         cfg.logger,
		ProjectService: projectservice.NewService(repo, cfg.eventClient),
		CardService:    cardservice.NewService(repo, cfg.eventClient),
		NoteService:    noteservice.NewService(repo, cfg.eventClient),
		LinkService:    linkservice.NewService(repo, cfg.eventClient),
		engines:        make(map[int]*board.Engine),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// EventClient returns the configured publisher, which may be nil
func (a *App) EventClient() events.EventPublisher {
	return a.eventClient
}

// OpenBoard returns the loaded engine for a project, creating it on first
// use. Engines are cached so every caller in this process shares one
// arrangement per project.
func (a *App) OpenBoard(ctx context.Context, projectID int) (*board.Engine, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if e, ok := a.engines[projectID]; ok {
		return e, nil
	}

	if _, err := a.ProjectService.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	e := board.New(a.repo, projectID,
		board.WithPublisher(a.eventClient),
		board.WithLogger(a.logger.With("project_id", projectID)))
	if err := e.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to open board for project %d: %w", projectID, err)
	}

	a.engines[projectID] = e
	return e, nil
}

// BoardEngine opens the engine of the project that owns boardID
func (a *App) BoardEngine(ctx context.Context, boardID int) (*board.Engine, error) {
	b, err := a.repo.GetBoardByID(ctx, boardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("board %d: %w", boardID, board.ErrUnknownBoard)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up board %d: %w", boardID, err)
	}
	return a.OpenBoard(ctx, b.ProjectID)
}

// CardEngine opens the engine of the project that owns cardID
func (a *App) CardEngine(ctx context.Context, cardID int) (*board.Engine, error) {
	c, err := a.repo.GetCardByID(ctx, cardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card %d: %w", cardID, cardservice.ErrCardNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up card %d: %w", cardID, err)
	}
	return a.BoardEngine(ctx, c.BoardID)
}

// MoveCard moves a card to destIndex on destBoardID, reading the source
// position from the engine's current arrangement. A negative destIndex
// appends to the destination board.
func (a *App) MoveCard(ctx context.Context, cardID, destBoardID, destIndex int) (board.Snapshot, error) {
	e, err := a.CardEngine(ctx, cardID)
	if err != nil {
		return board.Snapshot{}, err
	}

	cmd, ok := e.Snapshot().MoveCommandFor(cardID, destBoardID, destIndex)
	if !ok {
		// The card exists in the store but not in the cached arrangement
		if err := e.Load(ctx); err != nil {
			return board.Snapshot{}, err
		}
		if cmd, ok = e.Snapshot().MoveCommandFor(cardID, destBoardID, destIndex); !ok {
			return board.Snapshot{}, fmt.Errorf("card %d: %w", cardID, cardservice.ErrCardNotFound)
		}
	}

	err = e.Move(ctx, cmd)
	return e.Snapshot(), err
}

// Refresh reloads the cached engine for projectID; 0 reloads every engine.
// Projects that were never opened are skipped.
func (a *App) Refresh(ctx context.Context, projectID int) error {
	a.mu.Lock()
	var targets []*board.Engine
	for id, e := range a.engines {
		if projectID == 0 || id == projectID {
			targets = append(targets, e)
		}
	}
	a.mu.Unlock()

	for _, e := range targets {
		if err := e.Load(ctx); err != nil {
			return err
		}
	}
	return nil
}

// RefreshBoard reloads the cached engine of the project owning boardID.
// Card field edits go through the card service and call this afterwards.
func (a *App) RefreshBoard(ctx context.Context, boardID int) error {
	b, err := a.repo.GetBoardByID(ctx, boardID)
	if err != nil {
		return fmt.Errorf("failed to look up board %d: %w", boardID, err)
	}
	return a.Refresh(ctx, b.ProjectID)
}

// WatchEvents reloads cached engines whenever the daemon reports a change
// made by another process. It returns when ctx is done or the listen loop
// gives up.
func (a *App) WatchEvents(ctx context.Context) error {
	if a.eventClient == nil {
		return nil
	}

	ch, err := a.eventClient.Listen(ctx)
	if err != nil {
		return fmt.Errorf("failed to listen for events: %w", err)
	}

	for ev := range ch {
		if ev.Type != events.EventDatabaseChanged {
			continue
		}
		if err := a.Refresh(ctx, ev.ProjectID); err != nil {
			a.logger.Warn("failed to reload board after event",
				"error", err,
				"project_id", ev.ProjectID)
		}
	}
	return ctx.Err()
}

// Close releases the event client
func (a *App) Close() error {
	if a.eventClient == nil {
		return nil
	}
	return a.eventClient.Close()
}
