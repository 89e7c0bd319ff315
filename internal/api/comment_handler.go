package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/service"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListPublic returns approved comments for an article
func (h *CommentHandler) ListPublic(c *gin.Context) {
	comments, err := h.services.Comment.ListPublic(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create submits a comment into the moderation queue
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), c.Param("slug"), userID, body.Content)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// AdminList returns the moderation queue filtered by status
func (h *CommentHandler) AdminList(c *gin.Context) {
	comments, err := h.services.Comment.ListByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Moderate approves or rejects a comment
func (h *CommentHandler) Moderate(c *gin.Context) {
	var body struct {
		Approved *bool `json:"approved"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Approved == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approved must be a boolean"})
		return
	}

	comment, err := h.services.Comment.Moderate(c.Request.Context(), c.Param("id"), *body.Approved)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// Delete removes a comment
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.services.Comment.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
