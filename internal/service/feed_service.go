package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/gorilla/feeds"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/config"
	"github.com/newsdesk-cms/internal/repository"
)

// rssItemCount is the number of articles in the RSS feed
const rssItemCount = 20

// feedService is the concrete implementation of FeedService
type feedService struct {
	repos   *repository.Repositories
	baseURL string
	log     zerolog.Logger
}

func newFeedService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *feedService {
	return &feedService{
		repos:   repos,
		baseURL: cfg.Server.BaseURL,
		log:     log.With().Str("service", "feed").Logger(),
	}
}

// RSS renders the 20 most recent published articles as RSS 2.0
func (s *feedService) RSS(ctx context.Context) (string, error) {
	settings, err := s.repos.Settings.Get(ctx)
	if err != nil {
		return "", err
	}

	siteName := "Newsdesk"
	tagline := ""
	if settings != nil {
		siteName = settings.SiteName
		tagline = settings.Tagline
	}

	feed := &feeds.Feed{
		Title:       siteName,
		Link:        &feeds.Link{Href: s.baseURL},
		Description: tagline,
		Created:     time.Now(),
	}

	articles, err := s.repos.Article.List(ctx, repository.ArticleListFilter{
		PublishedOnly: true,
		Limit:         rssItemCount,
	})
	if err != nil {
		return "", err
	}

	for _, a := range articles {
		created := a.CreatedAt
		if a.PublishedAt != nil {
			created = *a.PublishedAt
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          a.ID,
			Title:       a.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/articles/%s", s.baseURL, a.Slug)},
			Description: a.Excerpt,
			Created:     created,
		})
	}

	return feed.ToRss()
}

// sitemapURLSet is the sitemap XML document
type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap renders every published article and category as a sitemap
// document. Store failures degrade to an empty but valid sitemap
// rather than failing the render.
func (s *feedService) Sitemap(ctx context.Context) ([]byte, error) {
	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: s.baseURL}},
	}

	articles, err := s.repos.Article.List(ctx, repository.ArticleListFilter{PublishedOnly: true})
	if err != nil {
		s.log.Error().Err(err).Msg("Sitemap article listing failed, emitting partial sitemap")
	}
	for _, a := range articles {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/articles/%s", s.baseURL, a.Slug),
			LastMod: a.UpdatedAt.Format("2006-01-02"),
		})
	}

	categories, err := s.repos.Category.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Sitemap category listing failed, emitting partial sitemap")
	}
	for _, c := range categories {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc: fmt.Sprintf("%s/categories/%s", s.baseURL, c.Slug),
		})
	}

	out, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
