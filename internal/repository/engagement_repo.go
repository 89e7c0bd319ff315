package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/newsdesk-cms/internal/database"
	"github.com/newsdesk-cms/internal/models"
)

// engagementRepo is the concrete implementation of EngagementRepository
type engagementRepo struct {
	db *database.DB
}

// NewEngagementRepo creates a new engagement repository
func NewEngagementRepo(db *database.DB) EngagementRepository {
	return &engagementRepo{db: db}
}

// ToggleLike flips the like state for a (user, article) pair. The
// delete-or-insert and the counter update run in one transaction, so
// two concurrent toggles from the same actor cannot skew the counter;
// the likes primary key backs the at-most-one invariant.
func (r *engagementRepo) ToggleLike(ctx context.Context, userID, articleID string) (bool, int64, error) {
	var liked bool
	var count int64

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"DELETE FROM likes WHERE user_id = $1 AND article_id = $2", userID, articleID)
		if err != nil {
			return err
		}
		deleted, err := res.RowsAffected()
		if err != nil {
			return err
		}

		if deleted > 0 {
			liked = false
			return tx.QueryRowContext(ctx, `
				UPDATE articles
				SET likes_count = GREATEST(likes_count - 1, 0), updated_at = now()
				WHERE id = $1
				RETURNING likes_count
			`, articleID).Scan(&count)
		}

		res, err = tx.ExecContext(ctx, `
			INSERT INTO likes (user_id, article_id, created_at)
			VALUES ($1, $2, now())
			ON CONFLICT (user_id, article_id) DO NOTHING
		`, userID, articleID)
		if err != nil {
			return err
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			return err
		}

		liked = true
		if inserted == 0 {
			// Lost a race with another toggle; report the current count.
			return tx.QueryRowContext(ctx,
				"SELECT likes_count FROM articles WHERE id = $1", articleID).Scan(&count)
		}

		return tx.QueryRowContext(ctx, `
			UPDATE articles
			SET likes_count = likes_count + 1, updated_at = now()
			WHERE id = $1
			RETURNING likes_count
		`, articleID).Scan(&count)
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

// LikeStatus reports the like count and whether the given user liked
// the article. An empty userID reports is_liked = false.
func (r *engagementRepo) LikeStatus(ctx context.Context, userID, articleID string) (*models.LikeStatus, error) {
	query := `
		SELECT a.likes_count,
			EXISTS(SELECT 1 FROM likes l WHERE l.article_id = a.id AND $2 <> '' AND l.user_id::text = $2)
		FROM articles a WHERE a.id = $1
	`
	var status models.LikeStatus
	err := r.db.QueryRowContext(ctx, query, articleID, userID).Scan(&status.LikesCount, &status.IsLiked)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// RecordView inserts a view event and bumps the article counter unless
// the same actor already viewed the article within the window. Check,
// insert and counter update share one transaction.
func (r *engagementRepo) RecordView(ctx context.Context, view *models.ArticleView, window time.Duration) (bool, error) {
	counted := false

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		since := view.ViewedAt.Add(-window)

		var exists bool
		err := tx.QueryRowContext(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM article_views
				WHERE article_id = $1
					AND viewed_at > $2
					AND (($3::uuid IS NOT NULL AND user_id = $3) OR ($4::text IS NOT NULL AND anonymous_id = $4))
			)
		`, view.ArticleID, since, view.UserID, view.AnonymousID).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO article_views (id, article_id, user_id, anonymous_id, viewed_at)
			VALUES ($1, $2, $3, $4, $5)
		`, view.ID, view.ArticleID, view.UserID, view.AnonymousID, view.ViewedAt)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			"UPDATE articles SET views = views + 1, updated_at = now() WHERE id = $1",
			view.ArticleID)
		if err != nil {
			return err
		}

		counted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return counted, nil
}

// Recommend ranks published article ids for an actor: articles in the
// categories the actor engaged with (views and likes), heaviest
// category first, newest first within it, excluding articles the actor
// already viewed. Returns no rows for an actor with no history.
func (r *engagementRepo) Recommend(ctx context.Context, userID, anonymousID string, limit int) ([]string, error) {
	query := `
		WITH actor_events AS (
			SELECT v.article_id
			FROM article_views v
			WHERE ($1 <> '' AND v.user_id::text = $1) OR ($2 <> '' AND v.anonymous_id = $2)
			UNION ALL
			SELECT l.article_id
			FROM likes l
			WHERE $1 <> '' AND l.user_id::text = $1
		),
		category_weights AS (
			SELECT a.category_id, COUNT(*) AS weight
			FROM actor_events e
			JOIN articles a ON a.id = e.article_id
			GROUP BY a.category_id
		)
		SELECT a.id
		FROM articles a
		JOIN category_weights w ON w.category_id = a.category_id
		WHERE a.published
			AND NOT EXISTS (
				SELECT 1 FROM article_views v
				WHERE v.article_id = a.id
					AND (($1 <> '' AND v.user_id::text = $1) OR ($2 <> '' AND v.anonymous_id = $2))
			)
		ORDER BY w.weight DESC, a.published_at DESC NULLS LAST
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, query, userID, anonymousID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
