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

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newArticleService(repos *repository.Repositories, log zerolog.Logger) *articleService {
	return &articleService{
		repos: repos,
		log:   log.With().Str("service", "article").Logger(),
	}
}

// Create validates the input, resolves a unique slug and inserts the
// article. Draft, scheduled and published states all start here:
// published=true stamps the publication time, a future scheduled_at
// leaves the article for the publish sweep.
func (s *articleService) Create(ctx context.Context, input *ArticleInput) (*models.Article, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	articleSlug, err := s.resolveSlug(ctx, input, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	article := &models.Article{
		ID:              uuid.New().String(),
		Title:           strings.TrimSpace(input.Title),
		Slug:            articleSlug,
		Excerpt:         input.Excerpt,
		Content:         input.Content,
		FeaturedImage:   input.FeaturedImage,
		CategoryID:      input.CategoryID,
		EditorID:        input.EditorID,
		Published:       input.Published,
		ScheduledAt:     input.ScheduledAt,
		Featured:        input.Featured,
		ReadTime:        models.EstimateReadTime(input.Content),
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		CreatedAt:       now,
	}
	if input.Published {
		article.PublishedAt = &now
		article.ScheduledAt = nil
	}

	if err := s.repos.Article.Create(ctx, article); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, Conflict("an article with slug %q already exists", articleSlug)
		}
		return nil, err
	}

	s.log.Info().
		Str("article_id", article.ID).
		Str("slug", article.Slug).
		Bool("published", article.Published).
		Msg("Article created")

	return article, nil
}

// Update rewrites an article's editable fields. The slug is
// re-resolved with this row excluded from the uniqueness probe, so an
// unchanged title keeps its slug.
func (s *articleService) Update(ctx context.Context, id string, input *ArticleInput) (*models.Article, error) {
	existing, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	articleSlug, err := s.resolveSlug(ctx, input, id)
	if err != nil {
		return nil, err
	}

	article := *existing
	article.Title = strings.TrimSpace(input.Title)
	article.Slug = articleSlug
	article.Excerpt = input.Excerpt
	article.Content = input.Content
	article.FeaturedImage = input.FeaturedImage
	article.CategoryID = input.CategoryID
	article.EditorID = input.EditorID
	article.Featured = input.Featured
	article.ReadTime = models.EstimateReadTime(input.Content)
	article.MetaTitle = input.MetaTitle
	article.MetaDescription = input.MetaDescription

	// Publish/unpublish transitions
	if input.Published && !existing.Published {
		now := time.Now()
		article.Published = true
		article.PublishedAt = &now
		article.ScheduledAt = nil
	} else if !input.Published {
		article.Published = false
		if !existing.Published {
			article.ScheduledAt = input.ScheduledAt
		}
	}

	if err := s.repos.Article.Update(ctx, &article); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, Conflict("an article with slug %q already exists", articleSlug)
		}
		return nil, err
	}

	s.log.Info().Str("article_id", article.ID).Str("slug", article.Slug).Msg("Article updated")
	return &article, nil
}

// Delete removes an article. Administrative escape hatch, not part of
// the publication workflow.
func (s *articleService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repos.Article.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.log.Info().Str("article_id", id).Msg("Article deleted")
	return nil
}

// GetByID retrieves an article by ID
func (s *articleService) GetByID(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// GetBySlug retrieves an article by slug
func (s *articleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.repos.Article.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// GetPublishedBySlug retrieves a published article by slug. Drafts and
// scheduled articles resolve to ErrNotFound so embargoed content never
// leaks through the public surface.
func (s *articleService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.repos.Article.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// List retrieves articles matching the filter
func (s *articleService) List(ctx context.Context, filter repository.ArticleListFilter) ([]*models.Article, error) {
	return s.repos.Article.List(ctx, filter)
}

// Featured retrieves the current featured article, if any
func (s *articleService) Featured(ctx context.Context) (*models.Article, error) {
	return s.repos.Article.GetFeatured(ctx)
}

// DueForPublish lists scheduled articles the sweep would publish now
func (s *articleService) DueForPublish(ctx context.Context) ([]*models.Article, error) {
	return s.repos.Article.ListDue(ctx, time.Now())
}

// PublishDue promotes every due scheduled article to published. Each
// row is updated independently and the update re-checks the published
// flag, so the sweep is idempotent and safe to re-run after partial
// failure.
func (s *articleService) PublishDue(ctx context.Context) ([]*models.Article, error) {
	due, err := s.repos.Article.ListDue(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	var published []*models.Article
	for _, article := range due {
		publishedAt := time.Now()
		if article.ScheduledAt != nil {
			publishedAt = *article.ScheduledAt
		}

		ok, err := s.repos.Article.MarkPublished(ctx, article.ID, publishedAt)
		if err != nil {
			s.log.Error().Err(err).Str("article_id", article.ID).Msg("Failed to publish scheduled article")
			continue
		}
		if !ok {
			// Already published by a concurrent sweep or manual action.
			continue
		}

		article.Published = true
		article.PublishedAt = &publishedAt
		article.ScheduledAt = nil
		published = append(published, article)

		s.log.Info().
			Str("article_id", article.ID).
			Str("slug", article.Slug).
			Time("published_at", publishedAt).
			Msg("Scheduled article published")
	}

	return published, nil
}

func (s *articleService) validate(ctx context.Context, input *ArticleInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return Invalid("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return Invalid("content is required")
	}
	if input.CategoryID == "" {
		return Invalid("category_id is required")
	}
	if input.EditorID == "" {
		return Invalid("editor_id is required")
	}

	category, err := s.repos.Category.GetByID(ctx, input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return Invalid("category %s does not exist", input.CategoryID)
	}

	editor, err := s.repos.Editor.GetByID(ctx, input.EditorID)
	if err != nil {
		return err
	}
	if editor == nil {
		return Invalid("editor %s does not exist", input.EditorID)
	}

	return nil
}

func (s *articleService) resolveSlug(ctx context.Context, input *ArticleInput, excludeID string) (string, error) {
	name := input.Slug
	if name == "" {
		name = input.Title
	}
	return slug.Unique(ctx, name, func(ctx context.Context, candidate string) (bool, error) {
		return s.repos.Article.SlugExists(ctx, candidate, excludeID)
	})
}
