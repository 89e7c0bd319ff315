package repository

import (
	"context"
	"database/sql"

	"github.com/newsdesk-cms/internal/database"
	"github.com/newsdesk-cms/internal/models"
)

// pageRepo is the concrete implementation of PageRepository
type pageRepo struct {
	db *database.DB
}

// NewPageRepo creates a new static page repository
func NewPageRepo(db *database.DB) PageRepository {
	return &pageRepo{db: db}
}

// Create inserts a new static page
func (r *pageRepo) Create(ctx context.Context, page *models.StaticPage) error {
	query := `
		INSERT INTO static_pages (id, title, slug, content, meta_title, meta_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		page.ID, page.Title, page.Slug, page.Content,
		page.MetaTitle, page.MetaDescription, page.CreatedAt,
	)
	return err
}

// Update rewrites a static page
func (r *pageRepo) Update(ctx context.Context, page *models.StaticPage) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE static_pages
		SET title = $2, slug = $3, content = $4, meta_title = $5, meta_description = $6, updated_at = now()
		WHERE id = $1
	`, page.ID, page.Title, page.Slug, page.Content, page.MetaTitle, page.MetaDescription)
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

// Delete removes a static page
func (r *pageRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM static_pages WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// GetByID retrieves a static page by ID
func (r *pageRepo) GetByID(ctx context.Context, id string) (*models.StaticPage, error) {
	return r.getOne(ctx, "id", id)
}

// GetBySlug retrieves a static page by slug
func (r *pageRepo) GetBySlug(ctx context.Context, slug string) (*models.StaticPage, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *pageRepo) getOne(ctx context.Context, column, value string) (*models.StaticPage, error) {
	query := `
		SELECT id, title, slug, content, meta_title, meta_description, created_at, updated_at
		FROM static_pages WHERE ` + column + ` = $1
	`
	var page models.StaticPage
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&page.ID, &page.Title, &page.Slug, &page.Content,
		&page.MetaTitle, &page.MetaDescription, &page.CreatedAt, &page.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// List retrieves all static pages by title
func (r *pageRepo) List(ctx context.Context) ([]*models.StaticPage, error) {
	query := `
		SELECT id, title, slug, content, meta_title, meta_description, created_at, updated_at
		FROM static_pages ORDER BY title
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*models.StaticPage
	for rows.Next() {
		var page models.StaticPage
		err := rows.Scan(
			&page.ID, &page.Title, &page.Slug, &page.Content,
			&page.MetaTitle, &page.MetaDescription, &page.CreatedAt, &page.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		pages = append(pages, &page)
	}
	return pages, rows.Err()
}

// SlugExists checks if a slug is taken, optionally excluding one row
func (r *pageRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM static_pages WHERE slug = $1 AND ($2 = '' OR id::text <> $2))",
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}
