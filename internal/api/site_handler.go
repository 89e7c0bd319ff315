package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/repository"
	"github.com/newsdesk-cms/internal/service"
)

// SiteHandler handles the public site surface: categories, editors,
// static pages, banners, settings and subscriptions.
type SiteHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(services *service.Services, log zerolog.Logger) *SiteHandler {
	return &SiteHandler{
		services: services,
		log:      log.With().Str("handler", "site").Logger(),
	}
}

// ListCategories returns all categories in display order
func (h *SiteHandler) ListCategories(c *gin.Context) {
	categories, err := h.services.Category.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategory returns a category with its published articles
func (h *SiteHandler) GetCategory(c *gin.Context) {
	ctx := c.Request.Context()

	category, err := h.services.Category.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	articles, err := h.services.Article.List(ctx, repository.ArticleListFilter{
		PublishedOnly: true,
		CategoryID:    category.ID,
		Limit:         parseIntQuery(c, "limit", 20),
		Offset:        parseIntQuery(c, "offset", 0),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category, "articles": articles})
}

// ListEditors returns all editors
func (h *SiteHandler) ListEditors(c *gin.Context) {
	editors, err := h.services.Editor.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"editors": editors})
}

// GetEditor returns an editor with their published articles
func (h *SiteHandler) GetEditor(c *gin.Context) {
	ctx := c.Request.Context()

	editor, err := h.services.Editor.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	articles, err := h.services.Article.List(ctx, repository.ArticleListFilter{
		PublishedOnly: true,
		EditorID:      editor.ID,
		Limit:         parseIntQuery(c, "limit", 20),
		Offset:        parseIntQuery(c, "offset", 0),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"editor": editor, "articles": articles})
}

// GetPage returns a static page
func (h *SiteHandler) GetPage(c *gin.Context) {
	page, err := h.services.Page.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// LiveBanners returns the banners currently in their display window
func (h *SiteHandler) LiveBanners(c *gin.Context) {
	banners, err := h.services.Banner.Live(c.Request.Context(), c.Query("type"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

// GetSettings returns the site settings
func (h *SiteHandler) GetSettings(c *gin.Context) {
	settings, err := h.services.Settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// Subscribe registers a newsletter subscriber
func (h *SiteHandler) Subscribe(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	subscriber, err := h.services.Subscriber.Subscribe(c.Request.Context(), body.Email)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subscriber": subscriber})
}
