package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/auth"
	"github.com/newsdesk-cms/internal/config"
	"github.com/newsdesk-cms/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, tokens *auth.TokenManager, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(identityMiddleware(tokens))

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	engagementHandler := NewEngagementHandler(services, cfg, log)
	commentHandler := NewCommentHandler(services, log)
	siteHandler := NewSiteHandler(services, log)
	adminHandler := NewAdminHandler(services, cfg, tokens, log)
	authHandler := NewAuthHandler(services, cfg, tokens, log)
	feedHandler := NewFeedHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// Feeds
	router.GET("/rss.xml", feedHandler.RSS)
	router.GET("/sitemap.xml", feedHandler.Sitemap)

	// Reader session
	authRoutes := router.Group("/auth")
	{
		authRoutes.GET("/login", authHandler.Login)
		authRoutes.GET("/callback", authHandler.Callback)
		authRoutes.GET("/me", authHandler.Me)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	// Public API
	api := router.Group("/api")
	{
		api.GET("/articles", articleHandler.List)
		api.GET("/articles/featured", articleHandler.Featured)
		api.GET("/articles/:slug", articleHandler.GetBySlug)

		api.GET("/articles/:slug/comments", commentHandler.ListPublic)
		api.POST("/articles/:slug/comments", commentHandler.Create)

		// Engagement endpoints carry a per-client rate limit
		engagement := api.Group("")
		engagement.Use(rateLimitMiddleware(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
		{
			engagement.POST("/articles/:slug/like", engagementHandler.ToggleLike)
			engagement.GET("/articles/:slug/like", engagementHandler.LikeStatus)
			engagement.POST("/articles/:slug/view", engagementHandler.RecordView)
		}

		api.GET("/recommendations", engagementHandler.Recommendations)

		api.GET("/categories", siteHandler.ListCategories)
		api.GET("/categories/:slug", siteHandler.GetCategory)
		api.GET("/editors", siteHandler.ListEditors)
		api.GET("/editors/:slug", siteHandler.GetEditor)
		api.GET("/pages/:slug", siteHandler.GetPage)
		api.GET("/banners", siteHandler.LiveBanners)
		api.GET("/settings", siteHandler.GetSettings)
		api.POST("/subscribe", siteHandler.Subscribe)
	}

	// Admin session
	router.POST("/admin/login", adminHandler.Login)
	router.POST("/admin/logout", adminHandler.Logout)

	// Admin API behind the session gate
	admin := router.Group("/admin/api")
	admin.Use(adminRequired(tokens))
	{
		admin.GET("/articles", articleHandler.AdminList)
		admin.POST("/articles", articleHandler.Create)
		admin.PUT("/articles/:id", articleHandler.Update)
		admin.DELETE("/articles/:id", articleHandler.Delete)

		admin.GET("/publish-scheduled", articleHandler.PublishDueDryRun)
		admin.POST("/publish-scheduled", articleHandler.PublishDue)

		admin.GET("/comments", commentHandler.AdminList)
		admin.PUT("/comments/:id", commentHandler.Moderate)
		admin.DELETE("/comments/:id", commentHandler.Delete)

		admin.POST("/categories", adminHandler.CreateCategory)
		admin.PUT("/categories/reorder", adminHandler.ReorderCategories)
		admin.PUT("/categories/:id", adminHandler.UpdateCategory)
		admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

		admin.POST("/editors", adminHandler.CreateEditor)
		admin.PUT("/editors/:id", adminHandler.UpdateEditor)
		admin.DELETE("/editors/:id", adminHandler.DeleteEditor)

		admin.GET("/banners", adminHandler.ListBanners)
		admin.POST("/banners", adminHandler.CreateBanner)
		admin.PUT("/banners/:id", adminHandler.UpdateBanner)
		admin.DELETE("/banners/:id", adminHandler.DeleteBanner)

		admin.GET("/pages", adminHandler.ListPages)
		admin.POST("/pages", adminHandler.CreatePage)
		admin.PUT("/pages/:id", adminHandler.UpdatePage)
		admin.DELETE("/pages/:id", adminHandler.DeletePage)

		admin.PUT("/settings", adminHandler.UpdateSettings)

		admin.GET("/subscribers", adminHandler.ListSubscribers)
		admin.GET("/subscribers/export", adminHandler.ExportSubscribers)
		admin.DELETE("/subscribers/:id", adminHandler.DeleteSubscriber)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "newsdesk-cms",
	})
}
