package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	noteservice "github.com/thenoetrevino/slotask/internal/services/note"
)

type createNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func (s *Server) handleListNotes(c *gin.Context) {
	projectID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	notes, err := s.app.NoteService.ListNotes(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, notes)
}

func (s *Server) handleCreateNote(c *gin.Context) {
	projectID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest("%v", err))
		return
	}

	ctx := c.Request.Context()
	if _, err := s.app.ProjectService.GetProjectByID(ctx, projectID); err != nil {
		respondError(c, err)
		return
	}
	n, err := s.app.NoteService.CreateNote(ctx, noteservice.CreateNoteRequest{
		ProjectID: projectID,
		Title:     req.Title,
		Content:   req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, n)
}

func (s *Server) handleDeleteNote(c *gin.Context) {
	noteID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := s.app.NoteService.DeleteNote(c.Request.Context(), noteID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
