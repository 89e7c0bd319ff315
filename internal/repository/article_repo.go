package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/newsdesk-cms/internal/database"
	"github.com/newsdesk-cms/internal/models"
)

const articleColumns = `id, title, slug, excerpt, content, featured_image, category_id, editor_id,
	published, published_at, scheduled_at, featured, views, likes_count, read_time,
	meta_title, meta_description, created_at, updated_at`

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// Create inserts a new article. When the article is featured, every
// other featured row is cleared in the same transaction so at most one
// article carries the flag.
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if article.Featured {
			if _, err := tx.ExecContext(ctx,
				`UPDATE articles SET featured = FALSE, updated_at = now() WHERE featured`); err != nil {
				return err
			}
		}

		query := `
			INSERT INTO articles (id, title, slug, excerpt, content, featured_image, category_id, editor_id,
				published, published_at, scheduled_at, featured, views, likes_count, read_time,
				meta_title, meta_description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, 0, $13, $14, $15, $16, $16)
		`
		_, err := tx.ExecContext(ctx, query,
			article.ID, article.Title, article.Slug, article.Excerpt, article.Content,
			article.FeaturedImage, article.CategoryID, article.EditorID,
			article.Published, article.PublishedAt, article.ScheduledAt, article.Featured,
			article.ReadTime, article.MetaTitle, article.MetaDescription, article.CreatedAt,
		)
		return err
	})
}

// Update rewrites an article's editable fields, preserving counters.
// Featured exclusivity is enforced in the same transaction.
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if article.Featured {
			if _, err := tx.ExecContext(ctx,
				`UPDATE articles SET featured = FALSE, updated_at = now() WHERE featured AND id <> $1`,
				article.ID); err != nil {
				return err
			}
		}

		query := `
			UPDATE articles
			SET title = $2, slug = $3, excerpt = $4, content = $5, featured_image = $6,
				category_id = $7, editor_id = $8, published = $9, published_at = $10,
				scheduled_at = $11, featured = $12, read_time = $13, meta_title = $14,
				meta_description = $15, updated_at = now()
			WHERE id = $1
		`
		res, err := tx.ExecContext(ctx, query,
			article.ID, article.Title, article.Slug, article.Excerpt, article.Content,
			article.FeaturedImage, article.CategoryID, article.EditorID,
			article.Published, article.PublishedAt, article.ScheduledAt, article.Featured,
			article.ReadTime, article.MetaTitle, article.MetaDescription,
		)
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
	})
}

// Delete removes an article
func (r *articleRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE id = $1", articleColumns)
	return scanArticle(r.db.QueryRowContext(ctx, query, id))
}

// GetBySlug retrieves an article by slug
func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE slug = $1", articleColumns)
	return scanArticle(r.db.QueryRowContext(ctx, query, slug))
}

// GetPublishedBySlug retrieves a published article by slug. Drafts and
// scheduled articles are invisible through this lookup.
func (r *articleRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE slug = $1 AND published", articleColumns)
	return scanArticle(r.db.QueryRowContext(ctx, query, slug))
}

// GetByIDs retrieves multiple articles. Result order is whatever the
// store returns; callers needing ranked order must re-sort.
func (r *articleRepo) GetByIDs(ctx context.Context, ids []string) ([]*models.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf("SELECT %s FROM articles WHERE id = ANY($1)", articleColumns)
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// GetFeatured retrieves the single featured article, if any. A
// featured draft stays hidden until the sweep publishes it.
func (r *articleRepo) GetFeatured(ctx context.Context) (*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE featured AND published LIMIT 1", articleColumns)
	return scanArticle(r.db.QueryRowContext(ctx, query))
}

// List retrieves articles, newest first
func (r *articleRepo) List(ctx context.Context, filter ArticleListFilter) ([]*models.Article, error) {
	var conditions []string
	var args []interface{}

	if filter.PublishedOnly {
		conditions = append(conditions, "published")
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.EditorID != "" {
		args = append(args, filter.EditorID)
		conditions = append(conditions, fmt.Sprintf("editor_id = $%d", len(args)))
	}

	query := fmt.Sprintf("SELECT %s FROM articles", articleColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY COALESCE(published_at, created_at) DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// MostViewed retrieves the most-viewed published articles, the
// trending fallback for the recommendation feed
func (r *articleRepo) MostViewed(ctx context.Context, limit int) ([]*models.Article, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM articles WHERE published ORDER BY views DESC, published_at DESC LIMIT $1",
		articleColumns,
	)
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// ListDue retrieves unpublished articles whose scheduled time has passed
func (r *articleRepo) ListDue(ctx context.Context, now time.Time) ([]*models.Article, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM articles WHERE NOT published AND scheduled_at IS NOT NULL AND scheduled_at <= $1",
		articleColumns,
	)
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// MarkPublished promotes one article to published. The filter repeats
// the due-check so a concurrent sweep or manual publish makes this a
// no-op instead of a double publish.
func (r *articleRepo) MarkPublished(ctx context.Context, id string, publishedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE articles
		SET published = TRUE, published_at = $2, scheduled_at = NULL, updated_at = now()
		WHERE id = $1 AND NOT published
	`, id, publishedAt)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// SlugExists checks if a slug is taken, optionally excluding one row
func (r *articleRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1 AND ($2 = '' OR id::text <> $2))",
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

// CountByCategory returns the number of articles referencing a category
func (r *articleRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM articles WHERE category_id = $1", categoryID).Scan(&count)
	return count, err
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticleRow(s rowScanner) (*models.Article, error) {
	var article models.Article
	var publishedAt, scheduledAt sql.NullTime

	err := s.Scan(
		&article.ID, &article.Title, &article.Slug, &article.Excerpt, &article.Content,
		&article.FeaturedImage, &article.CategoryID, &article.EditorID,
		&article.Published, &publishedAt, &scheduledAt, &article.Featured,
		&article.Views, &article.LikesCount, &article.ReadTime,
		&article.MetaTitle, &article.MetaDescription, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		article.PublishedAt = &publishedAt.Time
	}
	if scheduledAt.Valid {
		article.ScheduledAt = &scheduledAt.Time
	}
	return &article, nil
}

func scanArticle(row *sql.Row) (*models.Article, error) {
	article, err := scanArticleRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return article, err
}

func scanArticles(rows *sql.Rows) ([]*models.Article, error) {
	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticleRow(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}
