package models

import (
	"time"
)

// SponsoredBanner represents a paid placement on the site
type SponsoredBanner struct {
	ID           string     `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	ImageURL     string     `json:"image_url" db:"image_url"`
	LinkURL      *string    `json:"link_url,omitempty" db:"link_url"`
	Type         string     `json:"type" db:"type"`
	Active       bool       `json:"active" db:"active"`
	StartDate    *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty" db:"end_date"`
	DisplayOrder int        `json:"display_order" db:"display_order"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Banner placement types
const (
	BannerTypeHomepageMain = "homepage-main"
	BannerTypeHomepageSide = "homepage-side"
	BannerTypeArticleSide  = "article-side"
)

// ValidBannerTypes defines allowed banner placements
var ValidBannerTypes = map[string]bool{
	BannerTypeHomepageMain: true,
	BannerTypeHomepageSide: true,
	BannerTypeArticleSide:  true,
}

// IsLive reports whether the banner should be served: it must be active
// and now must fall within the optional [StartDate, EndDate] window,
// with open-ended bounds treated as unbounded.
func (b *SponsoredBanner) IsLive(now time.Time) bool {
	if !b.Active {
		return false
	}
	if b.StartDate != nil && now.Before(*b.StartDate) {
		return false
	}
	if b.EndDate != nil && now.After(*b.EndDate) {
		return false
	}
	return true
}
