package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
)

// bannerService is the concrete implementation of BannerService
type bannerService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newBannerService(repos *repository.Repositories, log zerolog.Logger) *bannerService {
	return &bannerService{
		repos: repos,
		log:   log.With().Str("service", "banner").Logger(),
	}
}

// Create inserts a new sponsored banner
func (s *bannerService) Create(ctx context.Context, input *BannerInput) (*models.SponsoredBanner, error) {
	if err := validateBannerInput(input); err != nil {
		return nil, err
	}

	banner := &models.SponsoredBanner{
		ID:           uuid.New().String(),
		Title:        strings.TrimSpace(input.Title),
		ImageURL:     input.ImageURL,
		LinkURL:      input.LinkURL,
		Type:         input.Type,
		Active:       input.Active,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    time.Now(),
	}

	if err := s.repos.Banner.Create(ctx, banner); err != nil {
		return nil, err
	}

	s.log.Info().Str("banner_id", banner.ID).Str("type", banner.Type).Msg("Banner created")
	return banner, nil
}

// Update rewrites a sponsored banner
func (s *bannerService) Update(ctx context.Context, id string, input *BannerInput) (*models.SponsoredBanner, error) {
	existing, err := s.repos.Banner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if err := validateBannerInput(input); err != nil {
		return nil, err
	}

	banner := *existing
	banner.Title = strings.TrimSpace(input.Title)
	banner.ImageURL = input.ImageURL
	banner.LinkURL = input.LinkURL
	banner.Type = input.Type
	banner.Active = input.Active
	banner.StartDate = input.StartDate
	banner.EndDate = input.EndDate
	banner.DisplayOrder = input.DisplayOrder

	if err := s.repos.Banner.Update(ctx, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

// Delete removes a banner
func (s *bannerService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repos.Banner.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.log.Info().Str("banner_id", id).Msg("Banner deleted")
	return nil
}

// List retrieves all banners for the admin surface
func (s *bannerService) List(ctx context.Context) ([]*models.SponsoredBanner, error) {
	return s.repos.Banner.List(ctx)
}

// Live retrieves the currently servable banners, optionally narrowed to
// one placement type
func (s *bannerService) Live(ctx context.Context, bannerType string) ([]*models.SponsoredBanner, error) {
	if bannerType != "" && !models.ValidBannerTypes[bannerType] {
		return nil, Invalid("type must be one of: homepage-main, homepage-side, article-side")
	}
	return s.repos.Banner.ListLive(ctx, bannerType, time.Now())
}

func validateBannerInput(input *BannerInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return Invalid("title is required")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return Invalid("image_url is required")
	}
	if !models.ValidBannerTypes[input.Type] {
		return Invalid("type must be one of: homepage-main, homepage-side, article-side")
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return Invalid("end_date must not precede start_date")
	}
	return nil
}
