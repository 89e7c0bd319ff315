package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/auth"
	"github.com/newsdesk-cms/internal/config"
	"github.com/newsdesk-cms/internal/service"
)

// AuthHandler handles the reader OAuth flow
type AuthHandler struct {
	services *service.Services
	cfg      *config.Config
	tokens   *auth.TokenManager
	log      zerolog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(services *service.Services, cfg *config.Config, tokens *auth.TokenManager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		cfg:      cfg,
		tokens:   tokens,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Login redirects the reader to the OAuth provider
func (h *AuthHandler) Login(c *gin.Context) {
	state := uuid.New().String()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, 600, "/", "", h.cfg.Server.Production, true)
	c.Redirect(http.StatusTemporaryRedirect, h.services.Auth.LoginURL(state))
}

// Callback completes the OAuth flow and issues the session cookie
func (h *AuthHandler) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != c.Query("state") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", h.cfg.Server.Production, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	user, err := h.services.Auth.HandleCallback(c.Request.Context(), code)
	if err != nil {
		h.log.Error().Err(err).Msg("OAuth callback failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed"})
		return
	}

	token, err := h.tokens.IssueSession(user.ID, h.cfg.Auth.SessionCookieTTL)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, int(h.cfg.Auth.SessionCookieTTL.Seconds()), "/", "", h.cfg.Server.Production, true)
	c.Redirect(http.StatusTemporaryRedirect, h.cfg.Server.BaseURL)
}

// Me returns the authenticated reader's profile
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}

	user, err := h.services.Auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout clears the reader session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", h.cfg.Server.Production, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
