package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/newsdesk-cms/internal/config"
	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
)

// authService resolves reader identities through the OAuth provider
type authService struct {
	repos       *repository.Repositories
	oauth       *oauth2.Config
	userInfoURL string
	log         zerolog.Logger
}

func newAuthService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *authService {
	return &authService{
		repos: repos,
		oauth: &oauth2.Config{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			RedirectURL:  cfg.OAuth.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuth.AuthURL,
				TokenURL: cfg.OAuth.TokenURL,
			},
		},
		userInfoURL: cfg.OAuth.UserInfoURL,
		log:         log.With().Str("service", "auth").Logger(),
	}
}

// LoginURL returns the provider authorization URL for the given state
func (s *authService) LoginURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// HandleCallback exchanges the authorization code, fetches the
// provider profile and upserts the local user keyed by email
func (s *authService) HandleCallback(ctx context.Context, code string) (*models.User, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("provider returned no email")
	}

	user, err := s.repos.User.UpsertByEmail(ctx, &models.User{
		ID:        uuid.New().String(),
		Email:     strings.ToLower(profile.Email),
		Name:      profile.Name,
		AvatarURL: profile.Picture,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("Reader signed in")
	return user, nil
}

// GetUser retrieves the reader behind a session
func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repos.User.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

type oauthProfile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (s *authService) fetchProfile(ctx context.Context, token *oauth2.Token) (*oauthProfile, error) {
	client := s.oauth.Client(ctx, token)

	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var profile oauthProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	return &profile, nil
}
