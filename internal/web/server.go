// Package web serves the board over a JSON HTTP API
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/slotask/internal/app"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP front end of an App. Engines are cached per project by
// the App, so every request for a project sees one arrangement.
type Server struct {
	app    *app.App
	router *gin.Engine
	logger *slog.Logger
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the request logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer builds the router for a
func NewServer(a *app.App, opts ...Option) *Server {
	s := &Server{app: a, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	s.router = router

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/projects", s.handleListProjects)
		api.POST("/projects", s.handleCreateProject)
		api.GET("/projects/:id/board", s.handleGetBoard)
		api.POST("/projects/:id/boards", s.handleCreateBoard)
		api.POST("/projects/:id/moves", s.handleMove)
		api.GET("/projects/:id/notes", s.handleListNotes)
		api.POST("/projects/:id/notes", s.handleCreateNote)
		api.GET("/projects/:id/links", s.handleListLinks)
		api.POST("/projects/:id/links", s.handleCreateLink)

		api.PATCH("/boards/:id", s.handleRenameBoard)
		api.POST("/boards/:id/cards", s.handleCreateCard)

		api.GET("/cards/:id", s.handleGetCard)
		api.PATCH("/cards/:id", s.handleUpdateCard)
		api.POST("/cards/:id/tags", s.handleAddTag)
		api.DELETE("/cards/:id/tags/:tag", s.handleRemoveTag)
		api.POST("/cards/:id/comments", s.handleAddComment)

		api.DELETE("/notes/:id", s.handleDeleteNote)
		api.DELETE("/links/:id", s.handleDeleteLink)
	}

	return s
}

// Handler returns the router
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
