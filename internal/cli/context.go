package cli

import (
	"context"

	"github.com/thenoetrevino/slotask/internal/app"
	"github.com/thenoetrevino/slotask/internal/config"
)

type appContextKey struct{}

// WithApp returns a context that makes GetCLIFromContext reuse a instead of
// opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appContextKey{}, a)
}

// GetCLIFromContext returns a CLI around the App stored by WithApp, or a
// fresh one built from the user's config.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appContextKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default(), injected: true}, nil
	}
	return NewCLI(ctx)
}
