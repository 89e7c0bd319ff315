package repository

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/newsdesk-cms/internal/database"
	"github.com/newsdesk-cms/internal/models"
)

// ArticleListFilter narrows article listings
type ArticleListFilter struct {
	PublishedOnly bool
	CategoryID    string
	EditorID      string
	Limit         int
	Offset        int
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.Article, error)
	GetFeatured(ctx context.Context) (*models.Article, error)
	List(ctx context.Context, filter ArticleListFilter) ([]*models.Article, error)
	MostViewed(ctx context.Context, limit int) ([]*models.Article, error)
	ListDue(ctx context.Context, now time.Time) ([]*models.Article, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) (bool, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	Count(ctx context.Context) (int, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Reorder(ctx context.Context, orders []models.CategoryOrder) error
}

// EditorRepository defines the interface for editor data operations
type EditorRepository interface {
	Create(ctx context.Context, editor *models.Editor) error
	Update(ctx context.Context, editor *models.Editor) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.Editor, error)
	GetBySlug(ctx context.Context, slug string) (*models.Editor, error)
	List(ctx context.Context) ([]*models.Editor, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	EmailExists(ctx context.Context, email, excludeID string) (bool, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID, status string, limit int) ([]*models.Comment, error)
	ListByStatus(ctx context.Context, status string, limit int) ([]*models.Comment, error)
	SetStatus(ctx context.Context, id, status string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// EngagementRepository covers likes, view tracking and the
// recommendation candidate query. Multi-step mutations run inside a
// single transaction.
type EngagementRepository interface {
	ToggleLike(ctx context.Context, userID, articleID string) (liked bool, likesCount int64, err error)
	LikeStatus(ctx context.Context, userID, articleID string) (*models.LikeStatus, error)
	RecordView(ctx context.Context, view *models.ArticleView, window time.Duration) (counted bool, err error)
	Recommend(ctx context.Context, userID, anonymousID string, limit int) ([]string, error)
}

// SubscriberRepository defines the interface for subscriber data operations
type SubscriberRepository interface {
	Upsert(ctx context.Context, subscriber *models.Subscriber) (stored *models.Subscriber, created bool, err error)
	List(ctx context.Context) ([]*models.Subscriber, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Subscriber) error) error
}

// BannerRepository defines the interface for sponsored banner operations
type BannerRepository interface {
	Create(ctx context.Context, banner *models.SponsoredBanner) error
	Update(ctx context.Context, banner *models.SponsoredBanner) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.SponsoredBanner, error)
	List(ctx context.Context) ([]*models.SponsoredBanner, error)
	ListLive(ctx context.Context, bannerType string, now time.Time) ([]*models.SponsoredBanner, error)
}

// PageRepository defines the interface for static page operations
type PageRepository interface {
	Create(ctx context.Context, page *models.StaticPage) error
	Update(ctx context.Context, page *models.StaticPage) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.StaticPage, error)
	GetBySlug(ctx context.Context, slug string) (*models.StaticPage, error)
	List(ctx context.Context) ([]*models.StaticPage, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

// SettingsRepository manages the singleton settings row
type SettingsRepository interface {
	Ensure(ctx context.Context) error
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) error
}

// UserRepository defines the interface for reader account operations
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpsertByEmail(ctx context.Context, user *models.User) (*models.User, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article    ArticleRepository
	Category   CategoryRepository
	Editor     EditorRepository
	Comment    CommentRepository
	Engagement EngagementRepository
	Subscriber SubscriberRepository
	Banner     BannerRepository
	Page       PageRepository
	Settings   SettingsRepository
	User       UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article:    NewArticleRepo(db),
		Category:   NewCategoryRepo(db),
		Editor:     NewEditorRepo(db),
		Comment:    NewCommentRepo(db),
		Engagement: NewEngagementRepo(db),
		Subscriber: NewSubscriberRepo(db),
		Banner:     NewBannerRepo(db),
		Page:       NewPageRepo(db),
		Settings:   NewSettingsRepo(db),
		User:       NewUserRepo(db),
	}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation, the last line of defense behind the pre-write existence
// probes.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
