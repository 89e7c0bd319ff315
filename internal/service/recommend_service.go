package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
)

// defaultFeedCount is the feed size when the caller does not ask for one
const defaultFeedCount = 10

// maxFeedCount bounds a single feed request
const maxFeedCount = 50

// recommendService is the concrete implementation of RecommendService
type recommendService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newRecommendService(repos *repository.Repositories, log zerolog.Logger) *recommendService {
	return &recommendService{
		repos: repos,
		log:   log.With().Str("service", "recommend").Logger(),
	}
}

// Feed produces up to count published articles for the actor. The
// personalized ranking is tried first; a new actor or a ranking
// failure falls back to the most-viewed articles, flagged
// is_recommended=false so consumers can tell a cold-start feed from a
// tailored one.
func (s *recommendService) Feed(ctx context.Context, userID, anonymousID string, count int) (*RecommendationFeed, error) {
	if count <= 0 {
		count = defaultFeedCount
	}
	if count > maxFeedCount {
		count = maxFeedCount
	}

	ids, err := s.repos.Engagement.Recommend(ctx, userID, anonymousID, count)
	if err != nil {
		s.log.Error().Err(err).Msg("Personalized ranking failed, falling back to trending")
		ids = nil
	}

	if len(ids) == 0 {
		articles, err := s.repos.Article.MostViewed(ctx, count)
		if err != nil {
			return nil, err
		}
		return &RecommendationFeed{Articles: articles, IsRecommended: false}, nil
	}

	articles, err := s.repos.Article.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// The bulk fetch does not preserve input order; restore the ranking.
	byID := make(map[string]*models.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}
	ordered := make([]*models.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, a)
		}
	}

	return &RecommendationFeed{Articles: ordered, IsRecommended: true}, nil
}
