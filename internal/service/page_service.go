package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
	"github.com/newsdesk-cms/internal/slug"
)

// pageService is the concrete implementation of PageService
type pageService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newPageService(repos *repository.Repositories, log zerolog.Logger) *pageService {
	return &pageService{
		repos: repos,
		log:   log.With().Str("service", "page").Logger(),
	}
}

// Create inserts a new static page
func (s *pageService) Create(ctx context.Context, input *PageInput) (*models.StaticPage, error) {
	if err := validatePageInput(input); err != nil {
		return nil, err
	}

	pageSlug, err := s.resolveSlug(ctx, input, "")
	if err != nil {
		return nil, err
	}

	page := &models.StaticPage{
		ID:              uuid.New().String(),
		Title:           strings.TrimSpace(input.Title),
		Slug:            pageSlug,
		Content:         input.Content,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		CreatedAt:       time.Now(),
	}

	if err := s.repos.Page.Create(ctx, page); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, Conflict("a page with slug %q already exists", pageSlug)
		}
		return nil, err
	}

	s.log.Info().Str("page_id", page.ID).Str("slug", page.Slug).Msg("Static page created")
	return page, nil
}

// Update rewrites a static page. A slug change re-checks uniqueness
// against all other pages.
func (s *pageService) Update(ctx context.Context, id string, input *PageInput) (*models.StaticPage, error) {
	existing, err := s.repos.Page.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if err := validatePageInput(input); err != nil {
		return nil, err
	}

	pageSlug, err := s.resolveSlug(ctx, input, id)
	if err != nil {
		return nil, err
	}

	page := *existing
	page.Title = strings.TrimSpace(input.Title)
	page.Slug = pageSlug
	page.Content = input.Content
	page.MetaTitle = input.MetaTitle
	page.MetaDescription = input.MetaDescription

	if err := s.repos.Page.Update(ctx, &page); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, Conflict("a page with slug %q already exists", pageSlug)
		}
		return nil, err
	}
	return &page, nil
}

// Delete removes a static page
func (s *pageService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repos.Page.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.log.Info().Str("page_id", id).Msg("Static page deleted")
	return nil
}

// GetBySlug retrieves a static page by slug
func (s *pageService) GetBySlug(ctx context.Context, slug string) (*models.StaticPage, error) {
	page, err := s.repos.Page.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}
	return page, nil
}

// List retrieves all static pages
func (s *pageService) List(ctx context.Context) ([]*models.StaticPage, error) {
	return s.repos.Page.List(ctx)
}

func (s *pageService) resolveSlug(ctx context.Context, input *PageInput, excludeID string) (string, error) {
	name := input.Slug
	if name == "" {
		name = input.Title
	}
	return slug.Unique(ctx, name, func(ctx context.Context, candidate string) (bool, error) {
		return s.repos.Page.SlugExists(ctx, candidate, excludeID)
	})
}

func validatePageInput(input *PageInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return Invalid("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return Invalid("content is required")
	}
	return nil
}
