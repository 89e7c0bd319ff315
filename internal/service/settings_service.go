package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
)

// settingsService is the concrete implementation of SettingsService
type settingsService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newSettingsService(repos *repository.Repositories, log zerolog.Logger) *settingsService {
	return &settingsService{
		repos: repos,
		log:   log.With().Str("service", "settings").Logger(),
	}
}

// Ensure creates the settings row if missing. Runs once at startup so
// the singleton never races lazy creation across requests.
func (s *settingsService) Ensure(ctx context.Context) error {
	if err := s.repos.Settings.Ensure(ctx); err != nil {
		return fmt.Errorf("failed to ensure settings row: %w", err)
	}
	return nil
}

// Get retrieves the site settings
func (s *settingsService) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.repos.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		// Startup ensures the row; reaching here means it was removed
		// out of band. Recreate and retry once.
		if err := s.repos.Settings.Ensure(ctx); err != nil {
			return nil, err
		}
		return s.repos.Settings.Get(ctx)
	}
	return settings, nil
}

// Update rewrites the site settings
func (s *settingsService) Update(ctx context.Context, settings *models.Settings) (*models.Settings, error) {
	if settings.SiteName == "" {
		return nil, Invalid("site_name is required")
	}
	if err := s.repos.Settings.Update(ctx, settings); err != nil {
		return nil, err
	}
	s.log.Info().Msg("Site settings updated")
	return s.repos.Settings.Get(ctx)
}
