package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/newsdesk-cms/internal/models"
)

func TestEstimateReadTime(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 1},
		{"short", "<p>just a few words here</p>", 1},
		{"exactly 200 words", "<p>" + strings.Repeat("word ", 200) + "</p>", 1},
		{"201 words rounds up", strings.Repeat("word ", 201), 2},
		{"1000 words", strings.Repeat("word ", 1000), 5},
		{"tags only", "<div><img src='x'/></div>", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := models.EstimateReadTime(tc.content); got != tc.want {
				t.Errorf("EstimateReadTime = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestEstimateReadTime_StripsTags(t *testing.T) {
	// The tag attributes must not count as words
	content := `<p class="lead" data-words="one two three">actual text</p>`
	if got := models.EstimateReadTime(content); got != 1 {
		t.Errorf("Expected 1 minute, got %d", got)
	}
}

func TestBannerIsLive(t *testing.T) {
	now := time.Now()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	cases := []struct {
		name   string
		banner models.SponsoredBanner
		want   bool
	}{
		{"inactive", models.SponsoredBanner{Active: false}, false},
		{"active no window", models.SponsoredBanner{Active: true}, true},
		{"inside window", models.SponsoredBanner{Active: true, StartDate: &past, EndDate: &future}, true},
		{"before start", models.SponsoredBanner{Active: true, StartDate: &future}, false},
		{"after end", models.SponsoredBanner{Active: true, EndDate: &past}, false},
		{"open-ended start", models.SponsoredBanner{Active: true, EndDate: &future}, true},
		{"open-ended end", models.SponsoredBanner{Active: true, StartDate: &past}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.banner.IsLive(now); got != tc.want {
				t.Errorf("IsLive = %v, want %v", got, tc.want)
			}
		})
	}
}
