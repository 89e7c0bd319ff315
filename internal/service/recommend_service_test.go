package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/newsdesk-cms/internal/mocks"
)

func TestRecommendService_ColdStartFallback(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	ctx := context.Background()

	quiet := createPublished(t, services, catID, edID, "Quiet")
	popular := createPublished(t, services, catID, edID, "Popular")

	// Give the popular article some views
	for _, anon := range []string{"a", "b", "c"} {
		if _, err := services.Engagement.RecordView(ctx, popular, "", anon); err != nil {
			t.Fatalf("RecordView failed: %v", err)
		}
	}

	feed, err := services.Recommend.Feed(ctx, "", "brand-new-actor", 10)
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if feed.IsRecommended {
		t.Error("Cold-start feed must report is_recommended=false")
	}
	if len(feed.Articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(feed.Articles))
	}
	if feed.Articles[0].Slug != popular {
		t.Errorf("Most viewed should lead the fallback, got %q then %q (quiet=%q)",
			feed.Articles[0].Slug, feed.Articles[1].Slug, quiet)
	}
}

func TestRecommendService_PersonalizedOrderPreserved(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	ctx := context.Background()

	first := createPublished(t, services, catID, edID, "First Pick")
	second := createPublished(t, services, catID, edID, "Second Pick")

	a1, _ := services.Article.GetBySlug(ctx, first)
	a2, _ := services.Article.GetBySlug(ctx, second)

	engagement := repos.Engagement.(*mocks.MockEngagementRepo)
	// Rank the later insert first to prove order comes from the ranking
	engagement.RecommendIDs = []string{a2.ID, a1.ID}

	feed, err := services.Recommend.Feed(ctx, "user-1", "", 10)
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if !feed.IsRecommended {
		t.Error("Personalized feed must report is_recommended=true")
	}
	if len(feed.Articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(feed.Articles))
	}
	if feed.Articles[0].ID != a2.ID || feed.Articles[1].ID != a1.ID {
		t.Error("Feed must preserve the ranking order")
	}
}

func TestRecommendService_RankingFailureFallsBack(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	ctx := context.Background()

	createPublished(t, services, catID, edID, "Anything")

	engagement := repos.Engagement.(*mocks.MockEngagementRepo)
	engagement.RecommendErr = errors.New("ranking query exploded")

	feed, err := services.Recommend.Feed(ctx, "user-1", "", 10)
	if err != nil {
		t.Fatalf("Feed should degrade, not fail: %v", err)
	}
	if feed.IsRecommended {
		t.Error("Degraded feed must report is_recommended=false")
	}
	if len(feed.Articles) != 1 {
		t.Errorf("Expected fallback articles, got %d", len(feed.Articles))
	}
}

func TestRecommendService_CountBounds(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		createPublished(t, services, catID, edID, title)
	}

	feed, err := services.Recommend.Feed(ctx, "", "anon", 2)
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if len(feed.Articles) != 2 {
		t.Errorf("Expected 2 articles, got %d", len(feed.Articles))
	}
}
