package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
	"github.com/newsdesk-cms/internal/slug"
)

// editorService is the concrete implementation of EditorService
type editorService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newEditorService(repos *repository.Repositories, log zerolog.Logger) *editorService {
	return &editorService{
		repos: repos,
		log:   log.With().Str("service", "editor").Logger(),
	}
}

// Create inserts a new editor. Email uniqueness is probed before the
// write; the slug is derived from the name with collision renumbering.
func (s *editorService) Create(ctx context.Context, input *EditorInput) (*models.Editor, error) {
	if err := validateEditorInput(input); err != nil {
		return nil, err
	}

	taken, err := s.repos.Editor.EmailExists(ctx, input.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Conflict("an editor with email %q already exists", input.Email)
	}

	editorSlug, err := slug.Unique(ctx, input.Name, func(ctx context.Context, candidate string) (bool, error) {
		return s.repos.Editor.SlugExists(ctx, candidate, "")
	})
	if err != nil {
		return nil, err
	}

	editor := &models.Editor{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Slug:      editorSlug,
		Bio:       input.Bio,
		AvatarURL: input.AvatarURL,
		CreatedAt: time.Now(),
	}

	if err := s.repos.Editor.Create(ctx, editor); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, Conflict("editor email or slug already in use")
		}
		return nil, err
	}

	s.log.Info().Str("editor_id", editor.ID).Str("slug", editor.Slug).Msg("Editor created")
	return editor, nil
}

// Update rewrites an editor, re-deriving the slug on rename
func (s *editorService) Update(ctx context.Context, id string, input *EditorInput) (*models.Editor, error) {
	existing, err := s.repos.Editor.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if err := validateEditorInput(input); err != nil {
		return nil, err
	}

	taken, err := s.repos.Editor.EmailExists(ctx, input.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Conflict("an editor with email %q already exists", input.Email)
	}

	editorSlug, err := slug.Unique(ctx, input.Name, func(ctx context.Context, candidate string) (bool, error) {
		return s.repos.Editor.SlugExists(ctx, candidate, id)
	})
	if err != nil {
		return nil, err
	}

	editor := *existing
	editor.Name = strings.TrimSpace(input.Name)
	editor.Email = strings.ToLower(strings.TrimSpace(input.Email))
	editor.Slug = editorSlug
	editor.Bio = input.Bio
	editor.AvatarURL = input.AvatarURL

	if err := s.repos.Editor.Update(ctx, &editor); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, Conflict("editor email or slug already in use")
		}
		return nil, err
	}

	return &editor, nil
}

// Delete removes an editor
func (s *editorService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repos.Editor.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.log.Info().Str("editor_id", id).Msg("Editor deleted")
	return nil
}

// GetBySlug retrieves an editor by slug
func (s *editorService) GetBySlug(ctx context.Context, slug string) (*models.Editor, error) {
	editor, err := s.repos.Editor.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if editor == nil {
		return nil, ErrNotFound
	}
	return editor, nil
}

// List retrieves all editors
func (s *editorService) List(ctx context.Context) ([]*models.Editor, error) {
	return s.repos.Editor.List(ctx)
}

func validateEditorInput(input *EditorInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return Invalid("name is required")
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return Invalid("email is required")
	}
	if !strings.Contains(email, "@") {
		return Invalid("email %q is not valid", email)
	}
	return nil
}
