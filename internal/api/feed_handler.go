package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/service"
)

// FeedHandler serves the RSS feed and sitemap
type FeedHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(services *service.Services, log zerolog.Logger) *FeedHandler {
	return &FeedHandler{
		services: services,
		log:      log.With().Str("handler", "feed").Logger(),
	}
}

// RSS serves the RSS 2.0 feed of recent published articles
func (h *FeedHandler) RSS(c *gin.Context) {
	feed, err := h.services.Feed.RSS(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(feed))
}

// Sitemap serves the XML sitemap
func (h *FeedHandler) Sitemap(c *gin.Context) {
	sitemap, err := h.services.Feed.Sitemap(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", sitemap)
}
