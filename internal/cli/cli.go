// Package cli holds the shared plumbing of the slotask command line:
// app construction, output formatting, flags and exit codes.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/slotask/internal/app"
	"github.com/thenoetrevino/slotask/internal/config"
	"github.com/thenoetrevino/slotask/internal/database"
	"github.com/thenoetrevino/slotask/internal/events"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config

	db       *sql.DB
	injected bool
}

// NewCLI opens the configured database and, when the daemon is running,
// connects an event client so other viewers see this command's writes.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var publisher events.EventPublisher
	client := events.NewClient(cfg.SocketPath,
		events.WithDebounce(time.Duration(cfg.EventDebounceMS)*time.Millisecond))
	if err := client.Connect(ctx); err != nil {
		// The daemon is optional
		slog.Debug("daemon unavailable", "error", events.ClassifyDaemonError(err))
		_ = client.Close()
	} else {
		publisher = client
	}

	return &CLI{
		App: app.New(db,
			app.WithEventPublisher(publisher),
			app.WithLogger(slog.Default().With("component", "app"))),
		Config: cfg,
		db:     db,
	}, nil
}

// Close flushes pending events and closes the database. An injected App
// belongs to the caller and is left open.
func (c *CLI) Close() error {
	if c.injected {
		return nil
	}
	if err := c.App.Close(); err != nil {
		slog.Warn("failed to close event client", "error", err)
	}
	return c.db.Close()
}
