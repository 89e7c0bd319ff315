package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
)

// approvedListLimit caps the admin approved-comments listing; the
// pending queue stays unbounded so nothing waiting is hidden.
const approvedListLimit = 50

// commentService is the concrete implementation of CommentService
type commentService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newCommentService(repos *repository.Repositories, log zerolog.Logger) *commentService {
	return &commentService{
		repos: repos,
		log:   log.With().Str("service", "comment").Logger(),
	}
}

// Create adds a pending comment from an authenticated reader
func (s *commentService) Create(ctx context.Context, articleSlug, userID, content string) (*models.Comment, error) {
	if userID == "" {
		return nil, Invalid("authentication is required to comment")
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, Invalid("content must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > models.MaxCommentLength {
		return nil, Invalid("content exceeds %d characters", models.MaxCommentLength)
	}

	article, err := s.repos.Article.GetPublishedBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		ArticleID: article.ID,
		UserID:    userID,
		Content:   trimmed,
		Status:    models.CommentStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("comment_id", comment.ID).
		Str("article_id", article.ID).
		Msg("Comment created, awaiting moderation")

	return comment, nil
}

// ListPublic retrieves the approved comments for an article
func (s *commentService) ListPublic(ctx context.Context, articleSlug string) ([]*models.Comment, error) {
	article, err := s.repos.Article.GetPublishedBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return s.repos.Comment.ListByArticle(ctx, article.ID, models.CommentStatusApproved, 0)
}

// ListByStatus retrieves the admin moderation queue. The approved
// listing is capped at the most recent entries.
func (s *commentService) ListByStatus(ctx context.Context, status string) ([]*models.Comment, error) {
	if status == "" {
		status = models.CommentStatusPending
	}
	if !models.ValidCommentStatuses[status] {
		return nil, Invalid("status must be one of: pending, approved, rejected")
	}

	limit := 0
	if status == models.CommentStatusApproved {
		limit = approvedListLimit
	}
	return s.repos.Comment.ListByStatus(ctx, status, limit)
}

// Moderate moves a comment to approved or rejected
func (s *commentService) Moderate(ctx context.Context, id string, approved bool) (*models.Comment, error) {
	status := models.CommentStatusRejected
	if approved {
		status = models.CommentStatusApproved
	}

	ok, err := s.repos.Comment.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	s.log.Info().Str("comment_id", id).Str("status", status).Msg("Comment moderated")
	return s.repos.Comment.GetByID(ctx, id)
}

// Delete removes a comment outright
func (s *commentService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repos.Comment.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.log.Info().Str("comment_id", id).Msg("Comment deleted")
	return nil
}
