package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	projectservice "github.com/thenoetrevino/slotask/internal/services/project"
	"github.com/thenoetrevino/slotask/internal/user"
)

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
}

func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := s.app.ProjectService.GetAllProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, projects)
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest("%v", err))
		return
	}
	if req.Owner == "" {
		req.Owner = user.GetCurrentUsername()
	}

	p, err := s.app.ProjectService.CreateProject(c.Request.Context(), projectservice.CreateProjectRequest{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
		OwnerID:     req.Owner,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, p)
}
