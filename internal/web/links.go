package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	linkservice "github.com/thenoetrevino/slotask/internal/services/link"
)

type createLinkRequest struct {
	URL         string `json:"url" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleListLinks(c *gin.Context) {
	projectID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	links, err := s.app.LinkService.ListLinks(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, links)
}

func (s *Server) handleCreateLink(c *gin.Context) {
	projectID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req createLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest("%v", err))
		return
	}

	ctx := c.Request.Context()
	if _, err := s.app.ProjectService.GetProjectByID(ctx, projectID); err != nil {
		respondError(c, err)
		return
	}
	l, err := s.app.LinkService.CreateLink(ctx, linkservice.CreateLinkRequest{
		ProjectID:   projectID,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, l)
}

func (s *Server) handleDeleteLink(c *gin.Context) {
	linkID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := s.app.LinkService.DeleteLink(c.Request.Context(), linkID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
