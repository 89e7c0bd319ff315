package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/repository"
	"github.com/newsdesk-cms/internal/service"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// List returns published articles, optionally filtered by category slug
func (h *ArticleHandler) List(c *gin.Context) {
	filter := repository.ArticleListFilter{
		PublishedOnly: true,
		Limit:         parseIntQuery(c, "limit", 20),
		Offset:        parseIntQuery(c, "offset", 0),
	}

	if categorySlug := c.Query("category"); categorySlug != "" {
		category, err := h.services.Category.GetBySlug(c.Request.Context(), categorySlug)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		filter.CategoryID = category.ID
	}

	articles, err := h.services.Article.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// Featured returns the featured article, if one is set
func (h *ArticleHandler) Featured(c *gin.Context) {
	article, err := h.services.Article.Featured(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// GetBySlug returns a single published article
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.services.Article.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// AdminList returns all articles including drafts
func (h *ArticleHandler) AdminList(c *gin.Context) {
	filter := repository.ArticleListFilter{
		CategoryID: c.Query("category"),
		EditorID:   c.Query("editor"),
		Limit:      parseIntQuery(c, "limit", 0),
		Offset:     parseIntQuery(c, "offset", 0),
	}

	articles, err := h.services.Article.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// Create creates a new article
func (h *ArticleHandler) Create(c *gin.Context) {
	var input service.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// Update updates an existing article
func (h *ArticleHandler) Update(c *gin.Context) {
	var input service.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Delete removes an article
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.services.Article.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}

// PublishDueDryRun reports which scheduled articles are due without publishing them
func (h *ArticleHandler) PublishDueDryRun(c *gin.Context) {
	articles, err := h.services.Article.DueForPublish(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"due": articles, "count": len(articles)})
}

// PublishDue publishes every scheduled article whose time has passed
func (h *ArticleHandler) PublishDue(c *gin.Context) {
	published, err := h.services.Article.PublishDue(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"published": published, "count": len(published)})
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
