package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/config"
	"github.com/newsdesk-cms/internal/service"
)

const anonCookieMaxAge = 365 * 24 * 60 * 60

// EngagementHandler handles likes, views and recommendations
type EngagementHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *EngagementHandler {
	return &EngagementHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "engagement").Logger(),
	}
}

// ToggleLike flips the caller's like on an article
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}

	status, err := h.services.Engagement.ToggleLike(c.Request.Context(), c.Param("slug"), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// LikeStatus returns the like count and whether the caller has liked the article
func (h *EngagementHandler) LikeStatus(c *gin.Context) {
	userID, _ := currentUserID(c)

	status, err := h.services.Engagement.LikeStatus(c.Request.Context(), c.Param("slug"), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// RecordView records a deduplicated view for the caller
func (h *EngagementHandler) RecordView(c *gin.Context) {
	userID, _ := currentUserID(c)
	var anonymousID string
	if userID == "" {
		anonymousID = h.ensureAnonymousID(c)
	}

	counted, err := h.services.Engagement.RecordView(c.Request.Context(), c.Param("slug"), userID, anonymousID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"counted": counted})
}

// Recommendations returns a personalized feed for the caller
func (h *EngagementHandler) Recommendations(c *gin.Context) {
	userID, _ := currentUserID(c)
	var anonymousID string
	if userID == "" {
		anonymousID = h.ensureAnonymousID(c)
	}

	count := parseIntQuery(c, "count", 0)

	feed, err := h.services.Recommend.Feed(c.Request.Context(), userID, anonymousID, count)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// ensureAnonymousID returns the caller's anonymous ID, issuing the cookie first
// when the request does not carry one.
func (h *EngagementHandler) ensureAnonymousID(c *gin.Context) string {
	if id, err := c.Cookie(anonCookieName); err == nil && id != "" {
		return id
	}

	id := fmt.Sprintf("anon_%d_%s", time.Now().UnixMilli(), uuid.New().String()[:8])
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(anonCookieName, id, anonCookieMaxAge, "/", "", h.cfg.Server.Production, true)
	return id
}
