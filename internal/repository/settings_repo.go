package repository

import (
	"context"
	"database/sql"

	"github.com/newsdesk-cms/internal/database"
	"github.com/newsdesk-cms/internal/models"
)

// settingsRepo is the concrete implementation of SettingsRepository
type settingsRepo struct {
	db *database.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *database.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

// Ensure creates the singleton settings row if it does not exist yet.
// Called once at startup so request handling never races lazy creation.
func (r *settingsRepo) Ensure(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (id) VALUES ($1)
		ON CONFLICT (id) DO NOTHING
	`, models.SettingsID)
	return err
}

// Get retrieves the singleton settings row
func (r *settingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	query := `
		SELECT id, site_name, tagline, logo_url, footer_text,
			cta_heading, cta_button_text, cta_button_url, updated_at
		FROM settings WHERE id = $1
	`
	var settings models.Settings
	err := r.db.QueryRowContext(ctx, query, models.SettingsID).Scan(
		&settings.ID, &settings.SiteName, &settings.Tagline, &settings.LogoURL,
		&settings.FooterText, &settings.CTAHeading, &settings.CTAButtonText,
		&settings.CTAButtonURL, &settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update rewrites the singleton settings row
func (r *settingsRepo) Update(ctx context.Context, settings *models.Settings) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE settings
		SET site_name = $2, tagline = $3, logo_url = $4, footer_text = $5,
			cta_heading = $6, cta_button_text = $7, cta_button_url = $8, updated_at = now()
		WHERE id = $1
	`, models.SettingsID, settings.SiteName, settings.Tagline, settings.LogoURL,
		settings.FooterText, settings.CTAHeading, settings.CTAButtonText, settings.CTAButtonURL)
	return err
}
