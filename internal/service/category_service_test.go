package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/newsdesk-cms/internal/mocks"
	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/service"
)

func TestCategoryService_Create_Slug(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	first, err := services.Category.Create(ctx, &service.CategoryInput{Name: "World News"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first.Slug != "world-news" {
		t.Errorf("Expected world-news, got %q", first.Slug)
	}

	second, err := services.Category.Create(ctx, &service.CategoryInput{Name: "World News"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if second.Slug != "world-news-1" {
		t.Errorf("Expected world-news-1, got %q", second.Slug)
	}
}

func TestCategoryService_Delete_RefusedWhileReferenced(t *testing.T) {
	services, repos := newTestServices(t)
	catID, edID := seedCategoryAndEditor(t, repos)
	createPublished(t, services, catID, edID, "In Category")

	err := services.Category.Delete(context.Background(), catID)
	if !service.IsConflict(err) {
		t.Errorf("Expected conflict while articles reference the category, got %v", err)
	}

	// Still present
	if cat, _ := repos.Category.GetByID(context.Background(), catID); cat == nil {
		t.Error("Category should not have been deleted")
	}
}

func TestCategoryService_Delete_Empty(t *testing.T) {
	services, repos := newTestServices(t)
	catID, _ := seedCategoryAndEditor(t, repos)

	if err := services.Category.Delete(context.Background(), catID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if cat, _ := repos.Category.GetByID(context.Background(), catID); cat != nil {
		t.Error("Category should be gone")
	}
}

func TestCategoryService_Reorder(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	a, err := services.Category.Create(ctx, &service.CategoryInput{Name: "Alpha", DisplayOrder: 1})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	b, err := services.Category.Create(ctx, &service.CategoryInput{Name: "Beta", DisplayOrder: 2})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = services.Category.Reorder(ctx, []models.CategoryOrder{
		{ID: a.ID, DisplayOrder: 2},
		{ID: b.ID, DisplayOrder: 1},
	})
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	listed, err := services.Category.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 2 || listed[0].ID != b.ID {
		t.Error("Listing should reflect the new display order")
	}
}

func TestCategoryService_Reorder_UnknownID(t *testing.T) {
	services, repos := newTestServices(t)

	// The repository reports an unknown id as sql.ErrNoRows
	repos.Category.(*mocks.MockCategoryRepo).ReorderErr = sql.ErrNoRows

	err := services.Category.Reorder(context.Background(), []models.CategoryOrder{
		{ID: "ghost", DisplayOrder: 1},
	})
	if !service.IsValidation(err) {
		t.Errorf("Expected validation error for unknown category, got %v", err)
	}
}

func TestCategoryService_Reorder_EmptyInput(t *testing.T) {
	services, _ := newTestServices(t)

	if err := services.Category.Reorder(context.Background(), nil); !service.IsValidation(err) {
		t.Errorf("Expected validation error for empty reorder, got %v", err)
	}
	err := services.Category.Reorder(context.Background(), []models.CategoryOrder{{DisplayOrder: 1}})
	if !service.IsValidation(err) {
		t.Errorf("Expected validation error for missing id, got %v", err)
	}
}
