package slug_test

import (
	"context"
	"testing"

	"github.com/newsdesk-cms/internal/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"My First Post!", "my-first-post"},
		{"Hello, World", "hello-world"},
		{"  spaced  out  ", "spaced-out"},
		{"CamelCase Title", "camelcase-title"},
		{"100% Legit News", "100-legit-news"},
		{"---", ""},
		{"!!!", ""},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tc := range cases {
		if got := slug.Make(tc.name); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestUnique_NoCollision(t *testing.T) {
	exists := func(ctx context.Context, s string) (bool, error) {
		return false, nil
	}

	got, err := slug.Unique(context.Background(), "Breaking News", exists)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if got != "breaking-news" {
		t.Errorf("Expected breaking-news, got %q", got)
	}
}

func TestUnique_Renumbers(t *testing.T) {
	taken := map[string]bool{
		"breaking-news":   true,
		"breaking-news-1": true,
		"breaking-news-2": true,
	}
	exists := func(ctx context.Context, s string) (bool, error) {
		return taken[s], nil
	}

	got, err := slug.Unique(context.Background(), "Breaking News", exists)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if got != "breaking-news-3" {
		t.Errorf("Expected breaking-news-3, got %q", got)
	}
}

func TestUnique_EmptyBase(t *testing.T) {
	exists := func(ctx context.Context, s string) (bool, error) {
		return false, nil
	}

	if _, err := slug.Unique(context.Background(), "!!!", exists); err == nil {
		t.Error("Expected error for a name with no usable characters")
	}
}
