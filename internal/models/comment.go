package models

import (
	"time"
)

// Comment represents a reader comment on an article
type Comment struct {
	ID        string    `json:"id" db:"id"`
	ArticleID string    `json:"article_id" db:"article_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Comment moderation states. A comment starts pending; an admin moves it
// to approved or rejected. Only approved comments are publicly visible.
const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
)

// ValidCommentStatuses defines allowed moderation states
var ValidCommentStatuses = map[string]bool{
	CommentStatusPending:  true,
	CommentStatusApproved: true,
	CommentStatusRejected: true,
}

// MaxCommentLength is the maximum allowed characters in a comment
const MaxCommentLength = 5000
