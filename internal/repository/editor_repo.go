package repository

import (
	"context"
	"database/sql"

	"github.com/newsdesk-cms/internal/database"
	"github.com/newsdesk-cms/internal/models"
)

// editorRepo is the concrete implementation of EditorRepository
type editorRepo struct {
	db *database.DB
}

// NewEditorRepo creates a new editor repository
func NewEditorRepo(db *database.DB) EditorRepository {
	return &editorRepo{db: db}
}

// Create inserts a new editor
func (r *editorRepo) Create(ctx context.Context, editor *models.Editor) error {
	query := `
		INSERT INTO editors (id, name, email, slug, bio, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		editor.ID, editor.Name, editor.Email, editor.Slug, editor.Bio,
		editor.AvatarURL, editor.CreatedAt,
	)
	return err
}

// Update rewrites an editor
func (r *editorRepo) Update(ctx context.Context, editor *models.Editor) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE editors
		SET name = $2, email = $3, slug = $4, bio = $5, avatar_url = $6, updated_at = now()
		WHERE id = $1
	`, editor.ID, editor.Name, editor.Email, editor.Slug, editor.Bio, editor.AvatarURL)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an editor
func (r *editorRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM editors WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// GetByID retrieves an editor by ID
func (r *editorRepo) GetByID(ctx context.Context, id string) (*models.Editor, error) {
	return r.getOne(ctx, "id", id)
}

// GetBySlug retrieves an editor by slug
func (r *editorRepo) GetBySlug(ctx context.Context, slug string) (*models.Editor, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *editorRepo) getOne(ctx context.Context, column, value string) (*models.Editor, error) {
	query := `
		SELECT id, name, email, slug, bio, avatar_url, created_at, updated_at
		FROM editors WHERE ` + column + ` = $1
	`
	var editor models.Editor
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&editor.ID, &editor.Name, &editor.Email, &editor.Slug, &editor.Bio,
		&editor.AvatarURL, &editor.CreatedAt, &editor.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &editor, nil
}

// List retrieves all editors by name
func (r *editorRepo) List(ctx context.Context) ([]*models.Editor, error) {
	query := `
		SELECT id, name, email, slug, bio, avatar_url, created_at, updated_at
		FROM editors ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var editors []*models.Editor
	for rows.Next() {
		var editor models.Editor
		err := rows.Scan(
			&editor.ID, &editor.Name, &editor.Email, &editor.Slug, &editor.Bio,
			&editor.AvatarURL, &editor.CreatedAt, &editor.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		editors = append(editors, &editor)
	}
	return editors, rows.Err()
}

// SlugExists checks if a slug is taken, optionally excluding one row
func (r *editorRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM editors WHERE slug = $1 AND ($2 = '' OR id::text <> $2))",
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

// EmailExists checks if an email is taken, optionally excluding one row
func (r *editorRepo) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM editors WHERE email = $1 AND ($2 = '' OR id::text <> $2))",
		email, excludeID,
	).Scan(&exists)
	return exists, err
}
