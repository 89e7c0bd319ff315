package service_test

import (
	"context"
	"testing"

	"github.com/newsdesk-cms/internal/service"
)

func createPublished(t *testing.T, services *service.Services, catID, edID, title string) string {
	t.Helper()
	article, err := services.Article.Create(context.Background(), &service.ArticleInput{
		Title: title, Content: "<p>body</p>", CategoryID: catID, EditorID: edID,
		Published: true,
	})
	if err != nil {
		t.Fatalf("seed article: %v", err)
	}
	return article.Slug
}

func TestEngagementService_ToggleLike_RoundTrip(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	slug := createPublished(t, services, catID, edID, "Likeable")
	ctx := context.Background()

	status, err := services.Engagement.ToggleLike(ctx, slug, "user-1")
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if !status.IsLiked || status.LikesCount != 1 {
		t.Errorf("Expected liked with count 1, got %+v", status)
	}

	// Toggling again must restore the original state exactly
	status, err = services.Engagement.ToggleLike(ctx, slug, "user-1")
	if err != nil {
		t.Fatalf("Second ToggleLike failed: %v", err)
	}
	if status.IsLiked || status.LikesCount != 0 {
		t.Errorf("Expected unliked with count 0, got %+v", status)
	}
}

func TestEngagementService_ToggleLike_RequiresAuth(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	slug := createPublished(t, services, catID, edID, "Likeable")

	_, err := services.Engagement.ToggleLike(context.Background(), slug, "")
	if !service.IsValidation(err) {
		t.Errorf("Expected validation error for anonymous like, got %v", err)
	}
}

func TestEngagementService_LikeStatus_Anonymous(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	slug := createPublished(t, services, catID, edID, "Likeable")
	ctx := context.Background()

	if _, err := services.Engagement.ToggleLike(ctx, slug, "user-1"); err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}

	status, err := services.Engagement.LikeStatus(ctx, slug, "")
	if err != nil {
		t.Fatalf("LikeStatus failed: %v", err)
	}
	if status.LikesCount != 1 {
		t.Errorf("Expected count 1, got %d", status.LikesCount)
	}
	if status.IsLiked {
		t.Error("Anonymous caller must never report is_liked")
	}
}

func TestEngagementService_RecordView_Dedup(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	slug := createPublished(t, services, catID, edID, "Viewable")
	ctx := context.Background()

	counted, err := services.Engagement.RecordView(ctx, slug, "", "anon-1")
	if err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}
	if !counted {
		t.Fatal("First view should count")
	}

	// Same actor inside the window is suppressed, not an error
	counted, err = services.Engagement.RecordView(ctx, slug, "", "anon-1")
	if err != nil {
		t.Fatalf("Repeat RecordView failed: %v", err)
	}
	if counted {
		t.Error("Repeat view inside the window should not count")
	}

	// A different actor still counts
	counted, err = services.Engagement.RecordView(ctx, slug, "", "anon-2")
	if err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}
	if !counted {
		t.Error("A different actor's view should count")
	}

	article, err := services.Article.GetBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if article.Views != 2 {
		t.Errorf("Expected 2 views, got %d", article.Views)
	}
}

func TestEngagementService_RecordView_RequiresActor(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	slug := createPublished(t, services, catID, edID, "Viewable")

	_, err := services.Engagement.RecordView(context.Background(), slug, "", "")
	if !service.IsValidation(err) {
		t.Errorf("Expected validation error without an actor, got %v", err)
	}
}

func TestEngagementService_UnknownArticle(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.Engagement.ToggleLike(context.Background(), "missing", "user-1")
	if err != service.ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
