package models

import (
	"time"
)

// Like records that a user liked an article. The (user, article) pair is
// unique; its existence is the source of truth for Article.LikesCount.
type Like struct {
	UserID    string    `json:"user_id" db:"user_id"`
	ArticleID string    `json:"article_id" db:"article_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ArticleView records one counted view event. Exactly one of UserID and
// AnonymousID is set.
type ArticleView struct {
	ID          string    `json:"id" db:"id"`
	ArticleID   string    `json:"article_id" db:"article_id"`
	UserID      *string   `json:"user_id,omitempty" db:"user_id"`
	AnonymousID *string   `json:"anonymous_id,omitempty" db:"anonymous_id"`
	ViewedAt    time.Time `json:"viewed_at" db:"viewed_at"`
}

// ViewDedupWindow is the rolling window within which repeat views from
// the same actor are not counted again.
const ViewDedupWindow = time.Hour

// LikeStatus is the engagement summary for one actor and article
type LikeStatus struct {
	LikesCount int64 `json:"likes_count"`
	IsLiked    bool  `json:"is_liked"`
}
