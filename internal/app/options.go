package app

import (
	"log/slog"

	"github.com/thenoetrevino/slotask/internal/events"
)

// Option configures an App built by New
type Option func(*appConfig)

type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// WithEventPublisher hands change notifications to ec. Services and board
// engines stay silent when it is nil.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger routes the App's logging, and that of every board engine it
// opens, through logger. Engines add their project_id. A nil logger keeps
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
