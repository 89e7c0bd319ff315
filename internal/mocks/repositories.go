package mocks

import (
	"context"
	"time"

	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
)

// MockArticleRepo is an in-memory implementation of ArticleRepository
type MockArticleRepo struct {
	Articles map[string]*models.Article
	order    []string
	Err      error
}

func NewMockArticleRepo() *MockArticleRepo {
	return &MockArticleRepo{Articles: make(map[string]*models.Article)}
}

func (m *MockArticleRepo) Create(ctx context.Context, article *models.Article) error {
	if m.Err != nil {
		return m.Err
	}
	if article.Featured {
		m.clearFeatured()
	}
	m.Articles[article.ID] = article
	m.order = append(m.order, article.ID)
	return nil
}

func (m *MockArticleRepo) Update(ctx context.Context, article *models.Article) error {
	if m.Err != nil {
		return m.Err
	}
	if article.Featured {
		m.clearFeatured()
	}
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepo) clearFeatured() {
	for _, a := range m.Articles {
		a.Featured = false
	}
}

func (m *MockArticleRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Articles[id]; !ok {
		return false, nil
	}
	delete(m.Articles, id)
	return true, nil
}

func (m *MockArticleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return m.Articles[id], m.Err
}

func (m *MockArticleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, id := range m.order {
		if a, ok := m.Articles[id]; ok && a.Slug == slug {
			return a, nil
		}
	}
	return nil, nil
}

func (m *MockArticleRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	article, err := m.GetBySlug(ctx, slug)
	if err != nil || article == nil || !article.Published {
		return nil, err
	}
	return article, nil
}

func (m *MockArticleRepo) GetByIDs(ctx context.Context, ids []string) ([]*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Article
	for _, id := range ids {
		if a, ok := m.Articles[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockArticleRepo) GetFeatured(ctx context.Context) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, a := range m.Articles {
		if a.Featured && a.Published {
			return a, nil
		}
	}
	return nil, nil
}

func (m *MockArticleRepo) List(ctx context.Context, filter repository.ArticleListFilter) ([]*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Article
	for _, id := range m.order {
		a, ok := m.Articles[id]
		if !ok {
			continue
		}
		if filter.PublishedOnly && !a.Published {
			continue
		}
		if filter.CategoryID != "" && a.CategoryID != filter.CategoryID {
			continue
		}
		if filter.EditorID != "" && a.EditorID != filter.EditorID {
			continue
		}
		out = append(out, a)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *MockArticleRepo) MostViewed(ctx context.Context, limit int) ([]*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Article
	for _, id := range m.order {
		a, ok := m.Articles[id]
		if !ok || !a.Published {
			continue
		}
		out = append(out, a)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Views > out[i].Views {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockArticleRepo) ListDue(ctx context.Context, now time.Time) ([]*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Article
	for _, id := range m.order {
		a, ok := m.Articles[id]
		if !ok {
			continue
		}
		if !a.Published && a.ScheduledAt != nil && !a.ScheduledAt.After(now) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockArticleRepo) MarkPublished(ctx context.Context, id string, publishedAt time.Time) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	a, ok := m.Articles[id]
	if !ok || a.Published {
		return false, nil
	}
	a.Published = true
	t := publishedAt
	a.PublishedAt = &t
	return true, nil
}

func (m *MockArticleRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, a := range m.Articles {
		if a.Slug == slug && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockArticleRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	count := 0
	for _, a := range m.Articles {
		if a.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *MockArticleRepo) Count(ctx context.Context) (int, error) {
	return len(m.Articles), m.Err
}

// MockCategoryRepo is an in-memory implementation of CategoryRepository
type MockCategoryRepo struct {
	Categories map[string]*models.Category
	order      []string
	Err        error
	ReorderErr error
}

func NewMockCategoryRepo() *MockCategoryRepo {
	return &MockCategoryRepo{Categories: make(map[string]*models.Category)}
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.Categories[category.ID] = category
	m.order = append(m.order, category.ID)
	return nil
}

func (m *MockCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.Categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Categories[id]; !ok {
		return false, nil
	}
	delete(m.Categories, id)
	return true, nil
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return m.Categories[id], m.Err
}

func (m *MockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.Categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Category
	for _, id := range m.order {
		if c, ok := m.Categories[id]; ok {
			out = append(out, c)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].DisplayOrder < out[i].DisplayOrder {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (m *MockCategoryRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, c := range m.Categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepo) Reorder(ctx context.Context, orders []models.CategoryOrder) error {
	if m.ReorderErr != nil {
		return m.ReorderErr
	}
	if m.Err != nil {
		return m.Err
	}
	for _, o := range orders {
		c, ok := m.Categories[o.ID]
		if !ok {
			continue
		}
		c.DisplayOrder = o.DisplayOrder
	}
	return nil
}

// MockEditorRepo is an in-memory implementation of EditorRepository
type MockEditorRepo struct {
	Editors map[string]*models.Editor
	order   []string
	Err     error
}

func NewMockEditorRepo() *MockEditorRepo {
	return &MockEditorRepo{Editors: make(map[string]*models.Editor)}
}

func (m *MockEditorRepo) Create(ctx context.Context, editor *models.Editor) error {
	if m.Err != nil {
		return m.Err
	}
	m.Editors[editor.ID] = editor
	m.order = append(m.order, editor.ID)
	return nil
}

func (m *MockEditorRepo) Update(ctx context.Context, editor *models.Editor) error {
	if m.Err != nil {
		return m.Err
	}
	m.Editors[editor.ID] = editor
	return nil
}

func (m *MockEditorRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Editors[id]; !ok {
		return false, nil
	}
	delete(m.Editors, id)
	return true, nil
}

func (m *MockEditorRepo) GetByID(ctx context.Context, id string) (*models.Editor, error) {
	return m.Editors[id], m.Err
}

func (m *MockEditorRepo) GetBySlug(ctx context.Context, slug string) (*models.Editor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, e := range m.Editors {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, nil
}

func (m *MockEditorRepo) List(ctx context.Context) ([]*models.Editor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Editor
	for _, id := range m.order {
		if e, ok := m.Editors[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockEditorRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, e := range m.Editors {
		if e.Slug == slug && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockEditorRepo) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, e := range m.Editors {
		if e.Email == email && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// MockCommentRepo is an in-memory implementation of CommentRepository
type MockCommentRepo struct {
	Comments map[string]*models.Comment
	order    []string
	Err      error
}

func NewMockCommentRepo() *MockCommentRepo {
	return &MockCommentRepo{Comments: make(map[string]*models.Comment)}
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if m.Err != nil {
		return m.Err
	}
	m.Comments[comment.ID] = comment
	m.order = append(m.order, comment.ID)
	return nil
}

func (m *MockCommentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	return m.Comments[id], m.Err
}

func (m *MockCommentRepo) ListByArticle(ctx context.Context, articleID, status string, limit int) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Comment
	for _, id := range m.order {
		c, ok := m.Comments[id]
		if !ok || c.ArticleID != articleID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockCommentRepo) ListByStatus(ctx context.Context, status string, limit int) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Comment
	for _, id := range m.order {
		c, ok := m.Comments[id]
		if !ok {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockCommentRepo) SetStatus(ctx context.Context, id, status string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	c, ok := m.Comments[id]
	if !ok {
		return false, nil
	}
	c.Status = status
	return true, nil
}

func (m *MockCommentRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Comments[id]; !ok {
		return false, nil
	}
	delete(m.Comments, id)
	return true, nil
}

// MockEngagementRepo is an in-memory implementation of EngagementRepository.
// Likes and views update the backing MockArticleRepo counters the way the
// real repository does inside its transactions.
type MockEngagementRepo struct {
	ArticleRepo   *MockEngagementArticles
	Likes         map[string]map[string]bool // articleID -> userID
	Views         []*models.ArticleView
	RecommendIDs  []string
	RecommendErr  error
	Err           error
	RecommendFunc func(ctx context.Context, userID, anonymousID string, limit int) ([]string, error)
}

// MockEngagementArticles is the minimal article store the engagement mock
// mutates counters on. Point it at a MockArticleRepo's map.
type MockEngagementArticles struct {
	Articles map[string]*models.Article
}

func NewMockEngagementRepo(articles map[string]*models.Article) *MockEngagementRepo {
	return &MockEngagementRepo{
		ArticleRepo: &MockEngagementArticles{Articles: articles},
		Likes:       make(map[string]map[string]bool),
	}
}

func (m *MockEngagementRepo) ToggleLike(ctx context.Context, userID, articleID string) (bool, int64, error) {
	if m.Err != nil {
		return false, 0, m.Err
	}
	if m.Likes[articleID] == nil {
		m.Likes[articleID] = make(map[string]bool)
	}
	a := m.ArticleRepo.Articles[articleID]
	if m.Likes[articleID][userID] {
		delete(m.Likes[articleID], userID)
		if a != nil && a.LikesCount > 0 {
			a.LikesCount--
		}
		return false, m.count(articleID, a), nil
	}
	m.Likes[articleID][userID] = true
	if a != nil {
		a.LikesCount++
	}
	return true, m.count(articleID, a), nil
}

func (m *MockEngagementRepo) count(articleID string, a *models.Article) int64 {
	if a != nil {
		return a.LikesCount
	}
	return int64(len(m.Likes[articleID]))
}

func (m *MockEngagementRepo) LikeStatus(ctx context.Context, userID, articleID string) (*models.LikeStatus, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	a := m.ArticleRepo.Articles[articleID]
	return &models.LikeStatus{
		LikesCount: m.count(articleID, a),
		IsLiked:    userID != "" && m.Likes[articleID][userID],
	}, nil
}

func (m *MockEngagementRepo) RecordView(ctx context.Context, view *models.ArticleView, window time.Duration) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	cutoff := view.ViewedAt.Add(-window)
	for _, v := range m.Views {
		if v.ArticleID != view.ArticleID || v.ViewedAt.Before(cutoff) {
			continue
		}
		if view.UserID != nil && v.UserID != nil && *v.UserID == *view.UserID {
			return false, nil
		}
		if view.AnonymousID != nil && v.AnonymousID != nil && *v.AnonymousID == *view.AnonymousID {
			return false, nil
		}
	}
	m.Views = append(m.Views, view)
	if a := m.ArticleRepo.Articles[view.ArticleID]; a != nil {
		a.Views++
	}
	return true, nil
}

func (m *MockEngagementRepo) Recommend(ctx context.Context, userID, anonymousID string, limit int) ([]string, error) {
	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, userID, anonymousID, limit)
	}
	if m.RecommendErr != nil {
		return nil, m.RecommendErr
	}
	if m.Err != nil {
		return nil, m.Err
	}
	ids := m.RecommendIDs
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// MockSubscriberRepo is an in-memory implementation of SubscriberRepository
type MockSubscriberRepo struct {
	Subscribers map[string]*models.Subscriber
	order       []string
	Err         error
}

func NewMockSubscriberRepo() *MockSubscriberRepo {
	return &MockSubscriberRepo{Subscribers: make(map[string]*models.Subscriber)}
}

func (m *MockSubscriberRepo) Upsert(ctx context.Context, subscriber *models.Subscriber) (*models.Subscriber, bool, error) {
	if m.Err != nil {
		return nil, false, m.Err
	}
	for _, s := range m.Subscribers {
		if s.Email == subscriber.Email {
			return s, false, nil
		}
	}
	m.Subscribers[subscriber.ID] = subscriber
	m.order = append(m.order, subscriber.ID)
	return subscriber, true, nil
}

func (m *MockSubscriberRepo) List(ctx context.Context) ([]*models.Subscriber, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Subscriber
	for _, id := range m.order {
		if s, ok := m.Subscribers[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MockSubscriberRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Subscribers[id]; !ok {
		return false, nil
	}
	delete(m.Subscribers, id)
	return true, nil
}

func (m *MockSubscriberRepo) Count(ctx context.Context) (int, error) {
	return len(m.Subscribers), m.Err
}

func (m *MockSubscriberRepo) StreamAll(ctx context.Context, callback func(*models.Subscriber) error) error {
	if m.Err != nil {
		return m.Err
	}
	for _, id := range m.order {
		s, ok := m.Subscribers[id]
		if !ok {
			continue
		}
		if err := callback(s); err != nil {
			return err
		}
	}
	return nil
}

// MockBannerRepo is an in-memory implementation of BannerRepository
type MockBannerRepo struct {
	Banners map[string]*models.SponsoredBanner
	order   []string
	Err     error
}

func NewMockBannerRepo() *MockBannerRepo {
	return &MockBannerRepo{Banners: make(map[string]*models.SponsoredBanner)}
}

func (m *MockBannerRepo) Create(ctx context.Context, banner *models.SponsoredBanner) error {
	if m.Err != nil {
		return m.Err
	}
	m.Banners[banner.ID] = banner
	m.order = append(m.order, banner.ID)
	return nil
}

func (m *MockBannerRepo) Update(ctx context.Context, banner *models.SponsoredBanner) error {
	if m.Err != nil {
		return m.Err
	}
	m.Banners[banner.ID] = banner
	return nil
}

func (m *MockBannerRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Banners[id]; !ok {
		return false, nil
	}
	delete(m.Banners, id)
	return true, nil
}

func (m *MockBannerRepo) GetByID(ctx context.Context, id string) (*models.SponsoredBanner, error) {
	return m.Banners[id], m.Err
}

func (m *MockBannerRepo) List(ctx context.Context) ([]*models.SponsoredBanner, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.SponsoredBanner
	for _, id := range m.order {
		if b, ok := m.Banners[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MockBannerRepo) ListLive(ctx context.Context, bannerType string, now time.Time) ([]*models.SponsoredBanner, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.SponsoredBanner
	for _, id := range m.order {
		b, ok := m.Banners[id]
		if !ok || !b.IsLive(now) {
			continue
		}
		if bannerType != "" && b.Type != bannerType {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// MockPageRepo is an in-memory implementation of PageRepository
type MockPageRepo struct {
	Pages map[string]*models.StaticPage
	order []string
	Err   error
}

func NewMockPageRepo() *MockPageRepo {
	return &MockPageRepo{Pages: make(map[string]*models.StaticPage)}
}

func (m *MockPageRepo) Create(ctx context.Context, page *models.StaticPage) error {
	if m.Err != nil {
		return m.Err
	}
	m.Pages[page.ID] = page
	m.order = append(m.order, page.ID)
	return nil
}

func (m *MockPageRepo) Update(ctx context.Context, page *models.StaticPage) error {
	if m.Err != nil {
		return m.Err
	}
	m.Pages[page.ID] = page
	return nil
}

func (m *MockPageRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Pages[id]; !ok {
		return false, nil
	}
	delete(m.Pages, id)
	return true, nil
}

func (m *MockPageRepo) GetByID(ctx context.Context, id string) (*models.StaticPage, error) {
	return m.Pages[id], m.Err
}

func (m *MockPageRepo) GetBySlug(ctx context.Context, slug string) (*models.StaticPage, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.Pages {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockPageRepo) List(ctx context.Context) ([]*models.StaticPage, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.StaticPage
	for _, id := range m.order {
		if p, ok := m.Pages[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockPageRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, p := range m.Pages {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// MockSettingsRepo is an in-memory implementation of SettingsRepository
type MockSettingsRepo struct {
	Settings *models.Settings
	Err      error
}

func NewMockSettingsRepo() *MockSettingsRepo {
	return &MockSettingsRepo{}
}

func (m *MockSettingsRepo) Ensure(ctx context.Context) error {
	if m.Err != nil {
		return m.Err
	}
	if m.Settings == nil {
		m.Settings = &models.Settings{ID: models.SettingsID, UpdatedAt: time.Now()}
	}
	return nil
}

func (m *MockSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	return m.Settings, m.Err
}

func (m *MockSettingsRepo) Update(ctx context.Context, settings *models.Settings) error {
	if m.Err != nil {
		return m.Err
	}
	settings.ID = models.SettingsID
	m.Settings = settings
	return nil
}

// MockUserRepo is an in-memory implementation of UserRepository
type MockUserRepo struct {
	Users map[string]*models.User
	Err   error
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{Users: make(map[string]*models.User)}
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.Users[id], m.Err
}

func (m *MockUserRepo) UpsertByEmail(ctx context.Context, user *models.User) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if u.Email == user.Email {
			u.Name = user.Name
			u.AvatarURL = user.AvatarURL
			u.UpdatedAt = time.Now()
			return u, nil
		}
	}
	stored := *user
	m.Users[stored.ID] = &stored
	return &stored, nil
}

// NewRepositories assembles a full mock repository set sharing one
// article store, mirroring repository.New.
func NewRepositories() (*repository.Repositories, *MockArticleRepo, *MockEngagementRepo) {
	articles := NewMockArticleRepo()
	engagement := NewMockEngagementRepo(articles.Articles)
	repos := &repository.Repositories{
		Article:    articles,
		Category:   NewMockCategoryRepo(),
		Editor:     NewMockEditorRepo(),
		Comment:    NewMockCommentRepo(),
		Engagement: engagement,
		Subscriber: NewMockSubscriberRepo(),
		Banner:     NewMockBannerRepo(),
		Page:       NewMockPageRepo(),
		Settings:   NewMockSettingsRepo(),
		User:       NewMockUserRepo(),
	}
	return repos, articles, engagement
}
