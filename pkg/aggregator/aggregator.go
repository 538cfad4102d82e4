// Package aggregator turns configured feeds into a capped list of articles.
// Feeds and their entries are processed one at a time in configured and document
// order. For every entry the article body is fetched (through the content cache),
// a missing image is looked up in the body, and the default image is used as
// the last resort. Failures of individual feeds, fetches and image lookups are
// absorbed by the collaborators, so aggregation itself never fails.
package aggregator

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newssite/pkg/domain"
)

//go:generate moq -out mocks/reader.go -pkg mocks -skip-ensure -fmt goimports . FeedReader
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . ContentFetcher
//go:generate moq -out mocks/resolver.go -pkg mocks -skip-ensure -fmt goimports . ImageResolver

// FeedReader reads feed entries, returning an empty list on failure
type FeedReader interface {
	Read(ctx context.Context, feedURL string) []domain.FeedEntry
}

// ContentFetcher returns article body and false if it is not available
type ContentFetcher interface {
	Fetch(ctx context.Context, articleURL string) (string, bool)
}

// ImageResolver finds an image in article body
type ImageResolver interface {
	Resolve(pageURL, body string) (string, bool)
}

// Aggregator builds articles from feeds
type Aggregator struct {
	reader       FeedReader
	fetcher      ContentFetcher
	resolver     ImageResolver
	defaultImage string
}

// Params holds aggregator dependencies
type Params struct {
	Reader       FeedReader
	Fetcher      ContentFetcher
	Resolver     ImageResolver
	DefaultImage string
}

// New creates a new aggregator
func New(params Params) *Aggregator {
	return &Aggregator{
		reader:       params.Reader,
		fetcher:      params.Fetcher,
		resolver:     params.Resolver,
		defaultImage: params.DefaultImage,
	}
}

// Aggregate returns up to maxArticles articles from feeds, in feed order and document order
// within each feed. Processing stops as soon as the cap is reached, even in the middle of a feed.
func (a *Aggregator) Aggregate(ctx context.Context, feedURLs []string, maxArticles int) []domain.Article {
	articles := make([]domain.Article, 0)
	if maxArticles <= 0 {
		return articles
	}

	for _, feedURL := range feedURLs {
		entries := a.reader.Read(ctx, feedURL)
		for _, entry := range entries {
			articles = append(articles, a.buildArticle(ctx, entry))
			if len(articles) >= maxArticles {
				lgr.Printf("[INFO] article limit %d reached", maxArticles)
				return articles
			}
		}
	}

	lgr.Printf("[INFO] aggregated %d articles from %d feeds", len(articles), len(feedURLs))
	return articles
}

// buildArticle fetches content for the entry and settles its image
func (a *Aggregator) buildArticle(ctx context.Context, entry domain.FeedEntry) domain.Article {
	article := domain.Article{FeedEntry: entry}
	article.Content, article.ContentFetched = a.fetcher.Fetch(ctx, entry.Link)

	if !entry.HasImage() && article.Content != "" {
		if img, ok := a.resolver.Resolve(entry.Link, article.Content); ok {
			article.Image = img
		}
	}
	if article.Image == "" {
		article.Image = a.defaultImage
	}

	lgr.Printf("[DEBUG] article %q, content: %v, image: %s", article.Title, article.ContentFetched, article.Image)
	return article
}
