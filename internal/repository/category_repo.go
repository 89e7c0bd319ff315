package repository

import (
	"context"
	"database/sql"

	"github.com/newsdesk-cms/internal/database"
	"github.com/newsdesk-cms/internal/models"
)

// categoryRepo is the concrete implementation of CategoryRepository
type categoryRepo struct {
	db *database.DB
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db *database.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

// Create inserts a new category
func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, description, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		category.ID, category.Name, category.Slug, category.Description,
		category.DisplayOrder, category.CreatedAt,
	)
	return err
}

// Update rewrites a category
func (r *categoryRepo) Update(ctx context.Context, category *models.Category) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, display_order = $5, updated_at = now()
		WHERE id = $1
	`, category.ID, category.Name, category.Slug, category.Description, category.DisplayOrder)
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

// Delete removes a category
func (r *categoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// GetByID retrieves a category by ID
func (r *categoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return r.getOne(ctx, "id", id)
}

// GetBySlug retrieves a category by slug
func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *categoryRepo) getOne(ctx context.Context, column, value string) (*models.Category, error) {
	query := `
		SELECT id, name, slug, description, display_order, created_at, updated_at
		FROM categories WHERE ` + column + ` = $1
	`
	var category models.Category
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.DisplayOrder, &category.CreatedAt, &category.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List retrieves all categories in display order, with article counts
func (r *categoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.description, c.display_order, c.created_at, c.updated_at,
			COUNT(a.id) AS article_count
		FROM categories c
		LEFT JOIN articles a ON a.category_id = c.id AND a.published
		GROUP BY c.id
		ORDER BY c.display_order, c.name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var category models.Category
		err := rows.Scan(
			&category.ID, &category.Name, &category.Slug, &category.Description,
			&category.DisplayOrder, &category.CreatedAt, &category.UpdatedAt,
			&category.ArticleCount,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}

// SlugExists checks if a slug is taken, optionally excluding one row
func (r *categoryRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1 AND ($2 = '' OR id::text <> $2))",
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

// Reorder applies an ordered set of (id, display_order) pairs as a
// single all-or-nothing unit
func (r *categoryRepo) Reorder(ctx context.Context, orders []models.CategoryOrder) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			"UPDATE categories SET display_order = $2, updated_at = now() WHERE id = $1")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, o := range orders {
			res, err := stmt.ExecContext(ctx, o.ID, o.DisplayOrder)
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
		}
		return nil
	})
}
