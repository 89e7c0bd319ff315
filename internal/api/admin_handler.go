package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/auth"
	"github.com/newsdesk-cms/internal/config"
	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/service"
)

// AdminHandler handles the admin session and admin-only CRUD endpoints
type AdminHandler struct {
	services *service.Services
	cfg      *config.Config
	tokens   *auth.TokenManager
	log      zerolog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(services *service.Services, cfg *config.Config, tokens *auth.TokenManager, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		cfg:      cfg,
		tokens:   tokens,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// Login verifies the admin password and issues the admin session cookie
func (h *AdminHandler) Login(c *gin.Context) {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(body.Password), []byte(h.cfg.Auth.AdminPassword)) != 1 {
		h.log.Warn().Str("client_ip", c.ClientIP()).Msg("Admin login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := h.tokens.IssueAdmin(h.cfg.Auth.AdminCookieTTL)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminCookieName, token, int(h.cfg.Auth.AdminCookieTTL.Seconds()), "/", "", h.cfg.Server.Production, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged in"})
}

// Logout clears the admin session cookie
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie(adminCookieName, "", -1, "/", "", h.cfg.Server.Production, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CreateCategory creates a category
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	category, err := h.services.Category.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateCategory updates a category
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	category, err := h.services.Category.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory removes an empty category
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.services.Category.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// ReorderCategories applies a new display order to all categories
func (h *AdminHandler) ReorderCategories(c *gin.Context) {
	var body struct {
		Orders []models.CategoryOrder `json:"orders"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.services.Category.Reorder(c.Request.Context(), body.Orders); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Categories reordered"})
}

// CreateEditor creates an editor
func (h *AdminHandler) CreateEditor(c *gin.Context) {
	var input service.EditorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	editor, err := h.services.Editor.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"editor": editor})
}

// UpdateEditor updates an editor
func (h *AdminHandler) UpdateEditor(c *gin.Context) {
	var input service.EditorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	editor, err := h.services.Editor.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"editor": editor})
}

// DeleteEditor removes an editor
func (h *AdminHandler) DeleteEditor(c *gin.Context) {
	if err := h.services.Editor.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Editor deleted"})
}

// ListBanners returns every banner regardless of window
func (h *AdminHandler) ListBanners(c *gin.Context) {
	banners, err := h.services.Banner.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

// CreateBanner creates a sponsored banner
func (h *AdminHandler) CreateBanner(c *gin.Context) {
	var input service.BannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	banner, err := h.services.Banner.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"banner": banner})
}

// UpdateBanner updates a sponsored banner
func (h *AdminHandler) UpdateBanner(c *gin.Context) {
	var input service.BannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	banner, err := h.services.Banner.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"banner": banner})
}

// DeleteBanner removes a sponsored banner
func (h *AdminHandler) DeleteBanner(c *gin.Context) {
	if err := h.services.Banner.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}

// ListPages returns all static pages
func (h *AdminHandler) ListPages(c *gin.Context) {
	pages, err := h.services.Page.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// CreatePage creates a static page
func (h *AdminHandler) CreatePage(c *gin.Context) {
	var input service.PageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	page, err := h.services.Page.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

// UpdatePage updates a static page
func (h *AdminHandler) UpdatePage(c *gin.Context) {
	var input service.PageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	page, err := h.services.Page.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// DeletePage removes a static page
func (h *AdminHandler) DeletePage(c *gin.Context) {
	if err := h.services.Page.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Page deleted"})
}

// UpdateSettings replaces the site settings
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.services.Settings.Update(c.Request.Context(), &settings)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": updated})
}

// ListSubscribers returns all subscribers
func (h *AdminHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := h.services.Subscriber.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers})
}

// ExportSubscribers streams the subscriber list as CSV
func (h *AdminHandler) ExportSubscribers(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="subscribers.csv"`)

	if err := h.services.Subscriber.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		h.log.Error().Err(err).Msg("Subscriber export failed")
	}
}

// DeleteSubscriber removes a subscriber
func (h *AdminHandler) DeleteSubscriber(c *gin.Context) {
	if err := h.services.Subscriber.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscriber deleted"})
}
