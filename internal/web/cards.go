package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/slotask/internal/models"
	cardservice "github.com/thenoetrevino/slotask/internal/services/card"
)

// updateCardRequest edits card fields; absent fields are left unchanged
type updateCardRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Priority     *string `json:"priority"`
	DueDate      *string `json:"due_date"`
	ClearDueDate bool    `json:"clear_due_date"`
}

type tagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

type commentRequest struct {
	Author  string `json:"author"`
	Content string `json:"content" binding:"required"`
}

func (s *Server) handleGetCard(c *gin.Context) {
	cardID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	detail, err := s.app.CardService.GetCardDetail(c.Request.Context(), cardID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, detail)
}

func (s *Server) handleUpdateCard(c *gin.Context) {
	cardID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var body updateCardRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, badRequest("%v", err))
		return
	}

	req := cardservice.UpdateCardRequest{
		CardID:       cardID,
		Title:        body.Title,
		Description:  body.Description,
		Priority:     body.Priority,
		ClearDueDate: body.ClearDueDate,
	}
	if body.DueDate != nil && !body.ClearDueDate {
		due, err := parseDate(*body.DueDate)
		if err != nil {
			respondError(c, err)
			return
		}
		req.DueDate = due
	}

	card, err := s.app.CardService.UpdateCard(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	s.refreshAfterEdit(c, card)
	respond(c, http.StatusOK, card)
}

func (s *Server) handleAddTag(c *gin.Context) {
	cardID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest("%v", err))
		return
	}

	card, err := s.app.CardService.AddTag(c.Request.Context(), cardID, req.Tag)
	if err != nil {
		respondError(c, err)
		return
	}
	s.refreshAfterEdit(c, card)
	respond(c, http.StatusOK, card)
}

func (s *Server) handleRemoveTag(c *gin.Context) {
	cardID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	card, err := s.app.CardService.RemoveTag(c.Request.Context(), cardID, c.Param("tag"))
	if err != nil {
		respondError(c, err)
		return
	}
	s.refreshAfterEdit(c, card)
	respond(c, http.StatusOK, card)
}

func (s *Server) handleAddComment(c *gin.Context) {
	cardID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest("%v", err))
		return
	}

	comment, err := s.app.CardService.AddComment(c.Request.Context(), cardservice.CreateCommentRequest{
		CardID:  cardID,
		Author:  req.Author,
		Content: req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, comment)
}

// refreshAfterEdit brings the cached engine in line with a field edit
func (s *Server) refreshAfterEdit(c *gin.Context, card *models.Card) {
	if err := s.app.RefreshBoard(c.Request.Context(), card.BoardID); err != nil {
		s.logger.Warn("failed to refresh board after card edit", "error", err, "card_id", card.ID)
	}
}
