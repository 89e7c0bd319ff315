package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
	"github.com/newsdesk-cms/internal/slug"
)

// categoryService is the concrete implementation of CategoryService
type categoryService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newCategoryService(repos *repository.Repositories, log zerolog.Logger) *categoryService {
	return &categoryService{
		repos: repos,
		log:   log.With().Str("service", "category").Logger(),
	}
}

// Create inserts a new category with a slug derived from its name
func (s *categoryService) Create(ctx context.Context, input *CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, Invalid("name is required")
	}

	categorySlug, err := slug.Unique(ctx, input.Name, func(ctx context.Context, candidate string) (bool, error) {
		return s.repos.Category.SlugExists(ctx, candidate, "")
	})
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		Slug:         categorySlug,
		Description:  input.Description,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    time.Now(),
	}

	if err := s.repos.Category.Create(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, Conflict("a category with slug %q already exists", categorySlug)
		}
		return nil, err
	}

	s.log.Info().Str("category_id", category.ID).Str("slug", category.Slug).Msg("Category created")
	return category, nil
}

// Update rewrites a category, re-deriving the slug from the new name
// with this row excluded from the uniqueness probe
func (s *categoryService) Update(ctx context.Context, id string, input *CategoryInput) (*models.Category, error) {
	existing, err := s.repos.Category.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, Invalid("name is required")
	}

	categorySlug, err := slug.Unique(ctx, input.Name, func(ctx context.Context, candidate string) (bool, error) {
		return s.repos.Category.SlugExists(ctx, candidate, id)
	})
	if err != nil {
		return nil, err
	}

	category := *existing
	category.Name = strings.TrimSpace(input.Name)
	category.Slug = categorySlug
	category.Description = input.Description
	category.DisplayOrder = input.DisplayOrder

	if err := s.repos.Category.Update(ctx, &category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, Conflict("a category with slug %q already exists", categorySlug)
		}
		return nil, err
	}

	return &category, nil
}

// Delete removes a category. Refused while any article still
// references it.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	category, err := s.repos.Category.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}

	count, err := s.repos.Article.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return Conflict("category %q still has %d articles", category.Name, count)
	}

	deleted, err := s.repos.Category.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info().Str("category_id", id).Msg("Category deleted")
	return nil
}

// GetBySlug retrieves a category by slug
func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.repos.Category.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// List retrieves all categories in display order
func (s *categoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.repos.Category.List(ctx)
}

// Reorder applies a full set of display-order updates atomically
func (s *categoryService) Reorder(ctx context.Context, orders []models.CategoryOrder) error {
	if len(orders) == 0 {
		return Invalid("orders must not be empty")
	}
	for _, o := range orders {
		if o.ID == "" {
			return Invalid("every order entry needs an id")
		}
	}

	if err := s.repos.Category.Reorder(ctx, orders); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Invalid("orders reference an unknown category")
		}
		return err
	}

	s.log.Info().Int("count", len(orders)).Msg("Categories reordered")
	return nil
}
