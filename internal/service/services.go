package service

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/config"
	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
)

// ArticleInput carries the editable fields of an article
type ArticleInput struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	FeaturedImage   string     `json:"featured_image"`
	CategoryID      string     `json:"category_id"`
	EditorID        string     `json:"editor_id"`
	Published       bool       `json:"published"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	Featured        bool       `json:"featured"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
}

// ArticleService defines the publication workflow operations
type ArticleService interface {
	Create(ctx context.Context, input *ArticleInput) (*models.Article, error)
	Update(ctx context.Context, id string, input *ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	List(ctx context.Context, filter repository.ArticleListFilter) ([]*models.Article, error)
	Featured(ctx context.Context) (*models.Article, error)
	DueForPublish(ctx context.Context) ([]*models.Article, error)
	PublishDue(ctx context.Context) ([]*models.Article, error)
}

// CategoryInput carries the editable fields of a category
type CategoryInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// CategoryService defines category operations
type CategoryService interface {
	Create(ctx context.Context, input *CategoryInput) (*models.Category, error)
	Update(ctx context.Context, id string, input *CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id string) error
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	Reorder(ctx context.Context, orders []models.CategoryOrder) error
}

// EditorInput carries the editable fields of an editor
type EditorInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// EditorService defines editor operations
type EditorService interface {
	Create(ctx context.Context, input *EditorInput) (*models.Editor, error)
	Update(ctx context.Context, id string, input *EditorInput) (*models.Editor, error)
	Delete(ctx context.Context, id string) error
	GetBySlug(ctx context.Context, slug string) (*models.Editor, error)
	List(ctx context.Context) ([]*models.Editor, error)
}

// CommentService defines the moderation queue operations
type CommentService interface {
	Create(ctx context.Context, articleSlug, userID, content string) (*models.Comment, error)
	ListPublic(ctx context.Context, articleSlug string) ([]*models.Comment, error)
	ListByStatus(ctx context.Context, status string) ([]*models.Comment, error)
	Moderate(ctx context.Context, id string, approved bool) (*models.Comment, error)
	Delete(ctx context.Context, id string) error
}

// EngagementService defines the idempotent view/like counters
type EngagementService interface {
	ToggleLike(ctx context.Context, articleSlug, userID string) (*models.LikeStatus, error)
	LikeStatus(ctx context.Context, articleSlug, userID string) (*models.LikeStatus, error)
	RecordView(ctx context.Context, articleSlug, userID, anonymousID string) (bool, error)
}

// RecommendationFeed is an ordered article feed for one actor.
// IsRecommended distinguishes a personalized ranking from the
// trending cold-start fallback.
type RecommendationFeed struct {
	Articles      []*models.Article `json:"articles"`
	IsRecommended bool              `json:"is_recommended"`
}

// RecommendService defines the recommendation selector
type RecommendService interface {
	Feed(ctx context.Context, userID, anonymousID string, count int) (*RecommendationFeed, error)
}

// BannerInput carries the editable fields of a sponsored banner
type BannerInput struct {
	Title        string     `json:"title"`
	ImageURL     string     `json:"image_url"`
	LinkURL      *string    `json:"link_url"`
	Type         string     `json:"type"`
	Active       bool       `json:"active"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	DisplayOrder int        `json:"display_order"`
}

// BannerService defines sponsored banner operations
type BannerService interface {
	Create(ctx context.Context, input *BannerInput) (*models.SponsoredBanner, error)
	Update(ctx context.Context, id string, input *BannerInput) (*models.SponsoredBanner, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.SponsoredBanner, error)
	Live(ctx context.Context, bannerType string) ([]*models.SponsoredBanner, error)
}

// PageInput carries the editable fields of a static page
type PageInput struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Content         string `json:"content"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
}

// PageService defines static page operations
type PageService interface {
	Create(ctx context.Context, input *PageInput) (*models.StaticPage, error)
	Update(ctx context.Context, id string, input *PageInput) (*models.StaticPage, error)
	Delete(ctx context.Context, id string) error
	GetBySlug(ctx context.Context, slug string) (*models.StaticPage, error)
	List(ctx context.Context) ([]*models.StaticPage, error)
}

// SettingsService manages the singleton site settings
type SettingsService interface {
	Ensure(ctx context.Context) error
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) (*models.Settings, error)
}

// SubscriberService defines subscriber capture and export
type SubscriberService interface {
	Subscribe(ctx context.Context, email string) (*models.Subscriber, error)
	List(ctx context.Context) ([]*models.Subscriber, error)
	Delete(ctx context.Context, id string) error
	ExportCSV(ctx context.Context, w io.Writer) error
}

// FeedService renders the public RSS feed and sitemap
type FeedService interface {
	RSS(ctx context.Context) (string, error)
	Sitemap(ctx context.Context) ([]byte, error)
}

// AuthService resolves reader identities through the OAuth provider
type AuthService interface {
	LoginURL(state string) string
	HandleCallback(ctx context.Context, code string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// Services holds all service interfaces
type Services struct {
	Article    ArticleService
	Category   CategoryService
	Editor     EditorService
	Comment    CommentService
	Engagement EngagementService
	Recommend  RecommendService
	Banner     BannerService
	Page       PageService
	Settings   SettingsService
	Subscriber SubscriberService
	Feed       FeedService
	Auth       AuthService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Article:    newArticleService(repos, log),
		Category:   newCategoryService(repos, log),
		Editor:     newEditorService(repos, log),
		Comment:    newCommentService(repos, log),
		Engagement: newEngagementService(repos, log),
		Recommend:  newRecommendService(repos, log),
		Banner:     newBannerService(repos, log),
		Page:       newPageService(repos, log),
		Settings:   newSettingsService(repos, log),
		Subscriber: newSubscriberService(repos, log),
		Feed:       newFeedService(repos, cfg, log),
		Auth:       newAuthService(repos, cfg, log),
	}
}
