package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/newsdesk-cms/internal/database"
	"github.com/newsdesk-cms/internal/models"
)

// bannerRepo is the concrete implementation of BannerRepository
type bannerRepo struct {
	db *database.DB
}

// NewBannerRepo creates a new banner repository
func NewBannerRepo(db *database.DB) BannerRepository {
	return &bannerRepo{db: db}
}

// Create inserts a new banner
func (r *bannerRepo) Create(ctx context.Context, banner *models.SponsoredBanner) error {
	query := `
		INSERT INTO sponsored_banners (id, title, image_url, link_url, type, active,
			start_date, end_date, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		banner.ID, banner.Title, banner.ImageURL, banner.LinkURL, banner.Type,
		banner.Active, banner.StartDate, banner.EndDate, banner.DisplayOrder,
		banner.CreatedAt,
	)
	return err
}

// Update rewrites a banner
func (r *bannerRepo) Update(ctx context.Context, banner *models.SponsoredBanner) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sponsored_banners
		SET title = $2, image_url = $3, link_url = $4, type = $5, active = $6,
			start_date = $7, end_date = $8, display_order = $9, updated_at = now()
		WHERE id = $1
	`, banner.ID, banner.Title, banner.ImageURL, banner.LinkURL, banner.Type,
		banner.Active, banner.StartDate, banner.EndDate, banner.DisplayOrder)
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

// Delete removes a banner
func (r *bannerRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM sponsored_banners WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// GetByID retrieves a banner by ID
func (r *bannerRepo) GetByID(ctx context.Context, id string) (*models.SponsoredBanner, error) {
	query := `
		SELECT id, title, image_url, link_url, type, active, start_date, end_date,
			display_order, created_at, updated_at
		FROM sponsored_banners WHERE id = $1
	`
	banner, err := scanBannerRow(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return banner, err
}

// List retrieves all banners for the admin surface
func (r *bannerRepo) List(ctx context.Context) ([]*models.SponsoredBanner, error) {
	query := `
		SELECT id, title, image_url, link_url, type, active, start_date, end_date,
			display_order, created_at, updated_at
		FROM sponsored_banners ORDER BY type, display_order
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBanners(rows)
}

// ListLive retrieves active banners whose optional date window contains
// now, in display order. An empty bannerType matches every placement.
func (r *bannerRepo) ListLive(ctx context.Context, bannerType string, now time.Time) ([]*models.SponsoredBanner, error) {
	query := `
		SELECT id, title, image_url, link_url, type, active, start_date, end_date,
			display_order, created_at, updated_at
		FROM sponsored_banners
		WHERE ($1 = '' OR type = $1) AND active
			AND (start_date IS NULL OR start_date <= $2)
			AND (end_date IS NULL OR end_date >= $2)
		ORDER BY display_order
	`
	rows, err := r.db.QueryContext(ctx, query, bannerType, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBanners(rows)
}

func scanBannerRow(s rowScanner) (*models.SponsoredBanner, error) {
	var banner models.SponsoredBanner
	var linkURL sql.NullString
	var startDate, endDate sql.NullTime

	err := s.Scan(
		&banner.ID, &banner.Title, &banner.ImageURL, &linkURL, &banner.Type,
		&banner.Active, &startDate, &endDate, &banner.DisplayOrder,
		&banner.CreatedAt, &banner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if linkURL.Valid {
		banner.LinkURL = &linkURL.String
	}
	if startDate.Valid {
		banner.StartDate = &startDate.Time
	}
	if endDate.Valid {
		banner.EndDate = &endDate.Time
	}
	return &banner, nil
}

func scanBanners(rows *sql.Rows) ([]*models.SponsoredBanner, error) {
	var banners []*models.SponsoredBanner
	for rows.Next() {
		banner, err := scanBannerRow(rows)
		if err != nil {
			return nil, err
		}
		banners = append(banners, banner)
	}
	return banners, rows.Err()
}
