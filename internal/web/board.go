package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/slotask/internal/board"
	"github.com/thenoetrevino/slotask/internal/models"
)

type boardNameRequest struct {
	Name string `json:"name" binding:"required"`
}

type createCardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"` // YYYY-MM-DD
}

func (s *Server) handleGetBoard(c *gin.Context) {
	projectID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	engine, err := s.app.OpenBoard(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, engine.Snapshot())
}

func (s *Server) handleCreateBoard(c *gin.Context) {
	projectID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req boardNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest("%v", err))
		return
	}

	ctx := c.Request.Context()
	engine, err := s.app.OpenBoard(ctx, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	b, err := engine.CreateBoard(ctx, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, b)
}

func (s *Server) handleRenameBoard(c *gin.Context) {
	boardID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req boardNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest("%v", err))
		return
	}

	ctx := c.Request.Context()
	engine, err := s.app.BoardEngine(ctx, boardID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := engine.RenameBoard(ctx, boardID, req.Name); err != nil {
		respondError(c, err)
		return
	}

	snap := engine.Snapshot()
	respond(c, http.StatusOK, snap.Boards[snap.BoardIndex(boardID)])
}

func (s *Server) handleCreateCard(c *gin.Context) {
	boardID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest("%v", err))
		return
	}

	fields := models.CardFields{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Priority != "" {
		p, err := models.ParsePriority(req.Priority)
		if err != nil {
			respondError(c, board.ErrInvalidPriority)
			return
		}
		fields.Priority = p
	}
	if req.DueDate != "" {
		due, err := parseDate(req.DueDate)
		if err != nil {
			respondError(c, err)
			return
		}
		fields.DueDate = due
	}

	ctx := c.Request.Context()
	engine, err := s.app.BoardEngine(ctx, boardID)
	if err != nil {
		respondError(c, err)
		return
	}
	card, err := engine.CreateCard(ctx, boardID, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, card)
}

// handleMove applies a drag-end payload. The response carries the
// arrangement after the move, or after the reload when the move failed.
func (s *Server) handleMove(c *gin.Context) {
	projectID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var cmd board.MoveCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondError(c, badRequest("%v", err))
		return
	}
	if cmd.CardID <= 0 {
		respondError(c, badRequest("card_id is required"))
		return
	}

	ctx := c.Request.Context()
	engine, err := s.app.OpenBoard(ctx, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := engine.Move(ctx, cmd); err != nil {
		respondBoardError(c, err, engine.Snapshot())
		return
	}
	respond(c, http.StatusOK, engine.Snapshot())
}

func parseDate(s string) (*time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return nil, badRequest("invalid date %q, want YYYY-MM-DD", s)
	}
	return &t, nil
}
