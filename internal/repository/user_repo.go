package repository

import (
	"context"
	"database/sql"

	"github.com/newsdesk-cms/internal/database"
	"github.com/newsdesk-cms/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, email, name, avatar_url, created_at, updated_at
		FROM users WHERE id = $1
	`
	var user models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.AvatarURL,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertByEmail inserts a user or refreshes the profile fields of the
// existing row with the same email, returning the stored row either way
func (r *userRepo) UpsertByEmail(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, name, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, avatar_url = EXCLUDED.avatar_url, updated_at = now()
		RETURNING id, email, name, avatar_url, created_at, updated_at
	`
	var stored models.User
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.Name, user.AvatarURL, user.CreatedAt,
	).Scan(
		&stored.ID, &stored.Email, &stored.Name, &stored.AvatarURL,
		&stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}
