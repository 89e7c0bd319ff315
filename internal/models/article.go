package models

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// Article represents a news article in the system
type Article struct {
	ID              string     `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Slug            string     `json:"slug" db:"slug"`
	Excerpt         string     `json:"excerpt" db:"excerpt"`
	Content         string     `json:"content" db:"content"`
	FeaturedImage   string     `json:"featured_image" db:"featured_image"`
	CategoryID      string     `json:"category_id" db:"category_id"`
	EditorID        string     `json:"editor_id" db:"editor_id"`
	Published       bool       `json:"published" db:"published"`
	PublishedAt     *time.Time `json:"published_at,omitempty" db:"published_at"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty" db:"scheduled_at"`
	Featured        bool       `json:"featured" db:"featured"`
	Views           int64      `json:"views" db:"views"`
	LikesCount      int64      `json:"likes_count" db:"likes_count"`
	ReadTime        int        `json:"read_time" db:"read_time"`
	MetaTitle       string     `json:"meta_title" db:"meta_title"`
	MetaDescription string     `json:"meta_description" db:"meta_description"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// wordsPerMinute is the reading speed used for the read_time estimate
const wordsPerMinute = 200

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// EstimateReadTime returns the reading time in minutes for HTML content.
// Tags are stripped, the remaining text is whitespace-split and divided
// by the reading speed, rounded up. Minimum is one minute.
func EstimateReadTime(content string) int {
	text := htmlTagPattern.ReplaceAllString(content, " ")
	words := len(strings.Fields(text))
	minutes := int(math.Ceil(float64(words) / float64(wordsPerMinute)))
	if minutes < 1 {
		return 1
	}
	return minutes
}
