package repository

import (
	"context"

	"github.com/newsdesk-cms/internal/database"
	"github.com/newsdesk-cms/internal/models"
)

// subscriberRepo is the concrete implementation of SubscriberRepository
type subscriberRepo struct {
	db *database.DB
}

// NewSubscriberRepo creates a new subscriber repository
func NewSubscriberRepo(db *database.DB) SubscriberRepository {
	return &subscriberRepo{db: db}
}

// Upsert inserts a subscriber unless the email is already captured.
// Subscribing an existing email is a success and leaves one row; the
// stored row is returned either way so repeat calls report the same
// subscriber.
func (r *subscriberRepo) Upsert(ctx context.Context, subscriber *models.Subscriber) (*models.Subscriber, bool, error) {
	var stored models.Subscriber
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO subscribers (id, email, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, created_at
	`, subscriber.ID, subscriber.Email, subscriber.CreatedAt).
		Scan(&stored.ID, &stored.Email, &stored.CreatedAt)
	if err != nil {
		return nil, false, err
	}
	return &stored, stored.ID == subscriber.ID, nil
}

// List retrieves all subscribers, newest first
func (r *subscriberRepo) List(ctx context.Context) ([]*models.Subscriber, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, email, created_at FROM subscribers ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscribers []*models.Subscriber
	for rows.Next() {
		var s models.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, &s)
	}
	return subscribers, rows.Err()
}

// Delete removes a subscriber
func (r *subscriberRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM subscribers WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// Count returns the total number of subscribers
func (r *subscriberRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM subscribers").Scan(&count)
	return count, err
}

// StreamAll streams all subscribers for export, oldest first
func (r *subscriberRepo) StreamAll(ctx context.Context, callback func(*models.Subscriber) error) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, email, created_at FROM subscribers ORDER BY created_at")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var s models.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return err
		}
		if err := callback(&s); err != nil {
			return err
		}
	}
	return rows.Err()
}
