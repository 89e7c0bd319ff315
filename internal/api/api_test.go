package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/api"
	"github.com/newsdesk-cms/internal/auth"
	"github.com/newsdesk-cms/internal/config"
	"github.com/newsdesk-cms/internal/mocks"
	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
	"github.com/newsdesk-cms/internal/service"
)

const testAdminPassword = "correct-horse-battery"

func setupTestRouter(t *testing.T) (*gin.Engine, *repository.Repositories, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos, _, _ := mocks.NewRepositories()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080", BaseURL: "http://localhost:8080"},
		Auth: config.AuthConfig{
			AdminPassword:    testAdminPassword,
			SessionSecret:    "test-secret",
			AdminCookieTTL:   7 * 24 * time.Hour,
			SessionCookieTTL: 30 * 24 * time.Hour,
		},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}

	log := zerolog.Nop()
	services := service.NewServices(repos, cfg, log)
	tokens := auth.NewTokenManager(cfg.Auth.SessionSecret)
	router := api.NewRouter(services, cfg, tokens, log)

	return router, repos, tokens
}

func seedArticle(t *testing.T, repos *repository.Repositories) *models.Article {
	t.Helper()
	ctx := context.Background()

	if err := repos.Category.Create(ctx, &models.Category{ID: "cat-1", Name: "Tech", Slug: "tech"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if err := repos.Editor.Create(ctx, &models.Editor{ID: "ed-1", Name: "Sam", Email: "sam@example.com", Slug: "sam"}); err != nil {
		t.Fatalf("seed editor: %v", err)
	}
	now := time.Now()
	article := &models.Article{
		ID: "art-1", Title: "Hello", Slug: "hello", Content: "<p>hi</p>",
		CategoryID: "cat-1", EditorID: "ed-1", Published: true, PublishedAt: &now,
	}
	if err := repos.Article.Create(ctx, article); err != nil {
		t.Fatalf("seed article: %v", err)
	}
	return article
}

func sessionCookie(t *testing.T, tokens *auth.TokenManager, repos *repository.Repositories) *http.Cookie {
	t.Helper()
	user, err := repos.User.UpsertByEmail(context.Background(), &models.User{
		ID: "user-1", Email: "reader@example.com", Name: "Reader",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	token, err := tokens.IssueSession(user.ID, time.Hour)
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	return &http.Cookie{Name: "session", Value: token}
}

func adminCookie(t *testing.T, tokens *auth.TokenManager) *http.Cookie {
	t.Helper()
	token, err := tokens.IssueAdmin(time.Hour)
	if err != nil {
		t.Fatalf("issue admin token: %v", err)
	}
	return &http.Cookie{Name: "admin-auth", Value: token}
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
}

func TestAdminGuard_RejectsWithoutCookie(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/admin/api/articles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestAdminGuard_RejectsGarbageToken(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/admin/api/articles", nil)
	req.AddCookie(&http.Cookie{Name: "admin-auth", Value: "not-a-jwt"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestAdminLogin(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	body := bytes.NewBufferString(`{"password":"wrong"}`)
	req := httptest.NewRequest("POST", "/admin/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Wrong password: expected 401, got %d", w.Code)
	}

	body = bytes.NewBufferString(`{"password":"` + testAdminPassword + `"}`)
	req = httptest.NewRequest("POST", "/admin/login", body)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin-auth" && c.Value != "" {
			found = true
			if !c.HttpOnly {
				t.Error("Admin cookie must be httpOnly")
			}
		}
	}
	if !found {
		t.Error("Login should set the admin-auth cookie")
	}
}

func TestAdminLoginGrantsAccess(t *testing.T) {
	router, _, tokens := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/admin/api/articles", nil)
	req.AddCookie(adminCookie(t, tokens))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 with admin cookie, got %d", w.Code)
	}
}

func TestGetArticleBySlug(t *testing.T) {
	router, repos, _ := setupTestRouter(t)
	seedArticle(t, repos)

	req := httptest.NewRequest("GET", "/api/articles/hello", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/api/articles/missing", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown slug, got %d", w.Code)
	}
}

func TestGetArticleBySlug_HidesUnpublished(t *testing.T) {
	router, repos, _ := setupTestRouter(t)
	seedArticle(t, repos)

	future := time.Now().Add(24 * time.Hour)
	draft := &models.Article{
		ID: "art-2", Title: "Embargoed", Slug: "embargoed", Content: "<p>secret</p>",
		CategoryID: "cat-1", EditorID: "ed-1", Published: false, ScheduledAt: &future,
		Featured: true,
	}
	if err := repos.Article.Create(context.Background(), draft); err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/articles/embargoed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for scheduled article, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret") {
		t.Error("Draft content leaked through the public surface")
	}

	// Nor through the featured slot
	req = httptest.NewRequest("GET", "/api/articles/featured", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var response struct {
		Article *models.Article `json:"article"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.Article != nil {
		t.Errorf("Featured draft leaked publicly: %+v", response.Article)
	}
}

func TestCreateComment(t *testing.T) {
	router, repos, tokens := setupTestRouter(t)
	seedArticle(t, repos)
	cookie := sessionCookie(t, tokens, repos)

	// Without a session
	body := bytes.NewBufferString(`{"content":"nice read"}`)
	req := httptest.NewRequest("POST", "/api/articles/hello/comments", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without session, got %d", w.Code)
	}

	// Blank content
	body = bytes.NewBufferString(`{"content":"   "}`)
	req = httptest.NewRequest("POST", "/api/articles/hello/comments", body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for blank content, got %d", w.Code)
	}

	// Valid comment
	body = bytes.NewBufferString(`{"content":"nice read"}`)
	req = httptest.NewRequest("POST", "/api/articles/hello/comments", body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Comment models.Comment `json:"comment"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.Comment.Status != models.CommentStatusPending {
		t.Errorf("New comment should be pending, got %q", response.Comment.Status)
	}
}

func TestRecordView_IssuesAnonymousCookie(t *testing.T) {
	router, repos, _ := setupTestRouter(t)
	seedArticle(t, repos)

	req := httptest.NewRequest("POST", "/api/articles/hello/view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var anon *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "anonymous-id" {
			anon = c
		}
	}
	if anon == nil {
		t.Fatal("First view should set the anonymous-id cookie")
	}
	if !strings.HasPrefix(anon.Value, "anon_") {
		t.Errorf("Unexpected anonymous id format: %q", anon.Value)
	}

	var response map[string]bool
	json.Unmarshal(w.Body.Bytes(), &response)
	if !response["counted"] {
		t.Error("First view should count")
	}

	// Replay with the same cookie: suppressed but still 200
	req = httptest.NewRequest("POST", "/api/articles/hello/view", nil)
	req.AddCookie(anon)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["counted"] {
		t.Error("Repeat view inside the window should not count")
	}
}

func TestRecommendations_IssuesAnonymousCookie(t *testing.T) {
	router, repos, _ := setupTestRouter(t)
	seedArticle(t, repos)

	req := httptest.NewRequest("GET", "/api/recommendations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var anon *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "anonymous-id" {
			anon = c
		}
	}
	if anon == nil {
		t.Fatal("First feed request should set the anonymous-id cookie")
	}
	if !strings.HasPrefix(anon.Value, "anon_") {
		t.Errorf("Unexpected anonymous id format: %q", anon.Value)
	}
}

func TestToggleLikeEndpoint(t *testing.T) {
	router, repos, tokens := setupTestRouter(t)
	seedArticle(t, repos)
	cookie := sessionCookie(t, tokens, repos)

	req := httptest.NewRequest("POST", "/api/articles/hello/like", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without session, got %d", w.Code)
	}

	req = httptest.NewRequest("POST", "/api/articles/hello/like", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var status models.LikeStatus
	json.Unmarshal(w.Body.Bytes(), &status)
	if !status.IsLiked || status.LikesCount != 1 {
		t.Errorf("Expected liked with count 1, got %+v", status)
	}
}

func TestSubscribeEndpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	body := bytes.NewBufferString(`{"email":"reader@example.com"}`)
	req := httptest.NewRequest("POST", "/api/subscribe", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.Code)
	}

	body = bytes.NewBufferString(`{"email":"nope"}`)
	req = httptest.NewRequest("POST", "/api/subscribe", body)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed email, got %d", w.Code)
	}
}

func TestAdminCategoryReorderRoute(t *testing.T) {
	router, repos, tokens := setupTestRouter(t)
	ctx := context.Background()

	repos.Category.Create(ctx, &models.Category{ID: "c1", Name: "A", Slug: "a", DisplayOrder: 1})
	repos.Category.Create(ctx, &models.Category{ID: "c2", Name: "B", Slug: "b", DisplayOrder: 2})

	body := bytes.NewBufferString(`{"orders":[{"id":"c1","display_order":2},{"id":"c2","display_order":1}]}`)
	req := httptest.NewRequest("PUT", "/admin/api/categories/reorder", body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(adminCookie(t, tokens))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRSSEndpoint(t *testing.T) {
	router, repos, _ := setupTestRouter(t)
	seedArticle(t, repos)

	req := httptest.NewRequest("GET", "/rss.xml", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "rss") {
		t.Errorf("Unexpected content type %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Hello") {
		t.Error("Feed should contain the published article")
	}
}
