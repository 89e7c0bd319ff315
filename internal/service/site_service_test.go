package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/service"
)

func TestEditorService_DuplicateEmail(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	input := &service.EditorInput{Name: "Jane Doe", Email: "jane@example.com"}
	if _, err := services.Editor.Create(ctx, input); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	input.Name = "Another Jane"
	_, err := services.Editor.Create(ctx, input)
	if !service.IsConflict(err) {
		t.Errorf("Expected conflict on duplicate email, got %v", err)
	}
}

func TestBannerService_Validation(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	start := time.Now()
	end := start.Add(-time.Hour)

	cases := []struct {
		name  string
		input service.BannerInput
	}{
		{"missing title", service.BannerInput{ImageURL: "x", Type: models.BannerTypeHomepageMain}},
		{"missing image", service.BannerInput{Title: "t", Type: models.BannerTypeHomepageMain}},
		{"bad type", service.BannerInput{Title: "t", ImageURL: "x", Type: "popups-everywhere"}},
		{"inverted window", service.BannerInput{
			Title: "t", ImageURL: "x", Type: models.BannerTypeHomepageMain,
			StartDate: &start, EndDate: &end,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := services.Banner.Create(ctx, &tc.input); !service.IsValidation(err) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}
}

func TestBannerService_LiveWindow(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	if _, err := services.Banner.Create(ctx, &service.BannerInput{
		Title: "Running", ImageURL: "x", Type: models.BannerTypeHomepageMain,
		Active: true, StartDate: &past, EndDate: &future,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := services.Banner.Create(ctx, &service.BannerInput{
		Title: "Expired", ImageURL: "x", Type: models.BannerTypeHomepageMain,
		Active: true, EndDate: &past,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := services.Banner.Create(ctx, &service.BannerInput{
		Title: "Disabled", ImageURL: "x", Type: models.BannerTypeHomepageMain,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	live, err := services.Banner.Live(ctx, models.BannerTypeHomepageMain)
	if err != nil {
		t.Fatalf("Live failed: %v", err)
	}
	if len(live) != 1 || live[0].Title != "Running" {
		t.Errorf("Expected only the running banner, got %d", len(live))
	}
}

func TestSettingsService_EnsureAndUpdate(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	if err := services.Settings.Ensure(ctx); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	settings, err := services.Settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if settings.ID != models.SettingsID {
		t.Errorf("Expected singleton id %q, got %q", models.SettingsID, settings.ID)
	}

	settings.SiteName = "The Daily Build"
	updated, err := services.Settings.Update(ctx, settings)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.SiteName != "The Daily Build" {
		t.Errorf("Expected updated site name, got %q", updated.SiteName)
	}

	if _, err := services.Settings.Update(ctx, &models.Settings{}); !service.IsValidation(err) {
		t.Errorf("Expected validation error for empty site name, got %v", err)
	}
}

func TestFeedService_RSS(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	ctx := context.Background()

	if err := services.Settings.Ensure(ctx); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	createPublished(t, services, catID, edID, "Feed Me")

	rss, err := services.Feed.RSS(ctx)
	if err != nil {
		t.Fatalf("RSS failed: %v", err)
	}
	if !strings.Contains(rss, "<rss") || !strings.Contains(rss, "Feed Me") {
		t.Errorf("RSS output missing expected content: %s", rss)
	}
}

func TestFeedService_Sitemap(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	ctx := context.Background()

	slug := createPublished(t, services, catID, edID, "Mapped")

	sitemap, err := services.Feed.Sitemap(ctx)
	if err != nil {
		t.Fatalf("Sitemap failed: %v", err)
	}
	out := string(sitemap)
	if !strings.Contains(out, "<urlset") {
		t.Error("Sitemap missing urlset element")
	}
	if !strings.Contains(out, "/articles/"+slug) {
		t.Error("Sitemap missing the published article URL")
	}
	if !strings.Contains(out, "/categories/politics") {
		t.Error("Sitemap missing the category URL")
	}
}
