package models

import (
	"time"
)

// Category groups articles for navigation and filtering
type Category struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	Description  string    `json:"description" db:"description"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	// Populated on listing, not stored
	ArticleCount int `json:"article_count" db:"-"`
}

// CategoryOrder is one entry of a reorder request
type CategoryOrder struct {
	ID           string `json:"id"`
	DisplayOrder int    `json:"display_order"`
}
