package board

import (
	"log/slog"

	"github.com/thenoetrevino/slotask/internal/events"
)

// Option configures an Engine
type Option func(*Engine)

// WithPublisher sends a db_changed event after every mutation
func WithPublisher(p events.EventPublisher) Option {
	return func(e *Engine) {
		e.publisher = p
	}
}

// WithLogger sets the logger used for persistence failures
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
