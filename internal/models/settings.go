package models

import (
	"time"
)

// SettingsID is the fixed id of the singleton settings row
const SettingsID = "default"

// Settings holds site-wide branding and copy. A single row with
// SettingsID exists; it is created at startup if missing.
type Settings struct {
	ID            string    `json:"id" db:"id"`
	SiteName      string    `json:"site_name" db:"site_name"`
	Tagline       string    `json:"tagline" db:"tagline"`
	LogoURL       string    `json:"logo_url" db:"logo_url"`
	FooterText    string    `json:"footer_text" db:"footer_text"`
	CTAHeading    string    `json:"cta_heading" db:"cta_heading"`
	CTAButtonText string    `json:"cta_button_text" db:"cta_button_text"`
	CTAButtonURL  string    `json:"cta_button_url" db:"cta_button_url"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
