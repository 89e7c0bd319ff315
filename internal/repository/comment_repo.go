package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/newsdesk-cms/internal/database"
	"github.com/newsdesk-cms/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, article_id, user_id, content, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.ArticleID, comment.UserID, comment.Content,
		comment.Status, comment.CreatedAt,
	)
	return err
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `
		SELECT id, article_id, user_id, content, status, created_at, updated_at
		FROM comments WHERE id = $1
	`
	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.ArticleID, &comment.UserID, &comment.Content,
		&comment.Status, &comment.CreatedAt, &comment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByArticle retrieves comments for one article in one moderation
// state, newest first. A limit of 0 means unbounded.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID, status string, limit int) ([]*models.Comment, error) {
	query := `
		SELECT id, article_id, user_id, content, status, created_at, updated_at
		FROM comments WHERE article_id = $1 AND status = $2
		ORDER BY created_at DESC
	`
	args := []interface{}{articleID, status}
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComments(rows)
}

// ListByStatus retrieves all comments in one moderation state, newest
// first. A limit of 0 means unbounded.
func (r *commentRepo) ListByStatus(ctx context.Context, status string, limit int) ([]*models.Comment, error) {
	query := `
		SELECT id, article_id, user_id, content, status, created_at, updated_at
		FROM comments WHERE status = $1
		ORDER BY created_at DESC
	`
	args := []interface{}{status}
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComments(rows)
}

// SetStatus moves a comment to a new moderation state
func (r *commentRepo) SetStatus(ctx context.Context, id, status string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE comments SET status = $2, updated_at = now() WHERE id = $1", id, status)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// Delete removes a comment outright
func (r *commentRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func scanComments(rows *sql.Rows) ([]*models.Comment, error) {
	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.ArticleID, &comment.UserID, &comment.Content,
			&comment.Status, &comment.CreatedAt, &comment.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}
