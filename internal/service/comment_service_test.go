package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/service"
)

func TestCommentService_Create_RequiresAuth(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	slug := createPublished(t, services, catID, edID, "Commented")

	_, err := services.Comment.Create(context.Background(), slug, "", "hello")
	if !service.IsValidation(err) {
		t.Errorf("Expected validation error without auth, got %v", err)
	}
}

func TestCommentService_Create_ContentBounds(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	slug := createPublished(t, services, catID, edID, "Commented")
	ctx := context.Background()

	if _, err := services.Comment.Create(ctx, slug, "user-1", "   "); !service.IsValidation(err) {
		t.Errorf("Expected validation error for blank content, got %v", err)
	}

	tooLong := strings.Repeat("a", models.MaxCommentLength+1)
	if _, err := services.Comment.Create(ctx, slug, "user-1", tooLong); !service.IsValidation(err) {
		t.Errorf("Expected validation error for oversized content, got %v", err)
	}

	atLimit := strings.Repeat("a", models.MaxCommentLength)
	if _, err := services.Comment.Create(ctx, slug, "user-1", atLimit); err != nil {
		t.Errorf("Content at the limit should be accepted, got %v", err)
	}

	// The limit counts characters, not bytes
	multiByte := strings.Repeat("\U0001F600", 2000)
	if _, err := services.Comment.Create(ctx, slug, "user-1", multiByte); err != nil {
		t.Errorf("2000 multi-byte characters should be accepted, got %v", err)
	}
	multiByteTooLong := strings.Repeat("\U0001F600", models.MaxCommentLength+1)
	if _, err := services.Comment.Create(ctx, slug, "user-1", multiByteTooLong); !service.IsValidation(err) {
		t.Errorf("Expected validation error past the character limit, got %v", err)
	}
}

func TestCommentService_ModerationFlow(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	slug := createPublished(t, services, catID, edID, "Commented")
	ctx := context.Background()

	comment, err := services.Comment.Create(ctx, slug, "user-1", "first!")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if comment.Status != models.CommentStatusPending {
		t.Errorf("New comment should be pending, got %q", comment.Status)
	}

	// Not public while pending
	visible, err := services.Comment.ListPublic(ctx, slug)
	if err != nil {
		t.Fatalf("ListPublic failed: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("Pending comment should not be public, got %d", len(visible))
	}

	// The default admin queue shows it
	pending, err := services.Comment.ListByStatus(ctx, "")
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("Expected 1 pending comment, got %d", len(pending))
	}

	// Approve and verify it moved
	moderated, err := services.Comment.Moderate(ctx, comment.ID, true)
	if err != nil {
		t.Fatalf("Moderate failed: %v", err)
	}
	if moderated.Status != models.CommentStatusApproved {
		t.Errorf("Expected approved, got %q", moderated.Status)
	}

	visible, err = services.Comment.ListPublic(ctx, slug)
	if err != nil {
		t.Fatalf("ListPublic failed: %v", err)
	}
	if len(visible) != 1 {
		t.Errorf("Approved comment should be public, got %d", len(visible))
	}

	pending, err = services.Comment.ListByStatus(ctx, models.CommentStatusPending)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("Pending queue should be empty, got %d", len(pending))
	}
}

func TestCommentService_Moderate_Reject(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	slug := createPublished(t, services, catID, edID, "Commented")
	ctx := context.Background()

	comment, err := services.Comment.Create(ctx, slug, "user-1", "spam")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	moderated, err := services.Comment.Moderate(ctx, comment.ID, false)
	if err != nil {
		t.Fatalf("Moderate failed: %v", err)
	}
	if moderated.Status != models.CommentStatusRejected {
		t.Errorf("Expected rejected, got %q", moderated.Status)
	}

	rejected, err := services.Comment.ListByStatus(ctx, models.CommentStatusRejected)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(rejected) != 1 {
		t.Errorf("Expected 1 rejected comment, got %d", len(rejected))
	}
}

func TestCommentService_ListByStatus_InvalidStatus(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.Comment.ListByStatus(context.Background(), "bogus")
	if !service.IsValidation(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestCommentService_Moderate_Unknown(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.Comment.Moderate(context.Background(), "missing", true)
	if err != service.ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
