package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
)

// engagementService is the concrete implementation of EngagementService
type engagementService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newEngagementService(repos *repository.Repositories, log zerolog.Logger) *engagementService {
	return &engagementService{
		repos: repos,
		log:   log.With().Str("service", "engagement").Logger(),
	}
}

// ToggleLike flips the like state for an authenticated reader
func (s *engagementService) ToggleLike(ctx context.Context, articleSlug, userID string) (*models.LikeStatus, error) {
	if userID == "" {
		return nil, Invalid("authentication is required to like")
	}

	article, err := s.repos.Article.GetPublishedBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	liked, count, err := s.repos.Engagement.ToggleLike(ctx, userID, article.ID)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("article_id", article.ID).
		Bool("liked", liked).
		Int64("likes_count", count).
		Msg("Like toggled")

	return &models.LikeStatus{LikesCount: count, IsLiked: liked}, nil
}

// LikeStatus reports the like count and whether this actor liked the
// article. Anonymous actors always report is_liked = false.
func (s *engagementService) LikeStatus(ctx context.Context, articleSlug, userID string) (*models.LikeStatus, error) {
	article, err := s.repos.Article.GetPublishedBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	status, err := s.repos.Engagement.LikeStatus(ctx, userID, article.ID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, ErrNotFound
	}
	return status, nil
}

// RecordView counts a view for the actor unless one was already
// counted inside the dedup window. A suppressed repeat view is still a
// success.
func (s *engagementService) RecordView(ctx context.Context, articleSlug, userID, anonymousID string) (bool, error) {
	if userID == "" && anonymousID == "" {
		return false, Invalid("an actor identity is required")
	}

	article, err := s.repos.Article.GetPublishedBySlug(ctx, articleSlug)
	if err != nil {
		return false, err
	}
	if article == nil {
		return false, ErrNotFound
	}

	view := &models.ArticleView{
		ID:        uuid.New().String(),
		ArticleID: article.ID,
		ViewedAt:  time.Now(),
	}
	if userID != "" {
		view.UserID = &userID
	} else {
		view.AnonymousID = &anonymousID
	}

	counted, err := s.repos.Engagement.RecordView(ctx, view, models.ViewDedupWindow)
	if err != nil {
		return false, err
	}

	if counted {
		s.log.Debug().Str("article_id", article.ID).Msg("View counted")
	}
	return counted, nil
}
