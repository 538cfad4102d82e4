package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/net/html/charset"
)

// Fetcher retrieves article bodies through an on-disk cache
type Fetcher struct {
	client    *http.Client
	cache     *FileCache
	extractor Extractor
	userAgent string
}

// FetcherParams holds fetcher dependencies and settings
type FetcherParams struct {
	CacheDir  string
	Timeout   time.Duration
	UserAgent string
	Extractor Extractor // tag extraction if nil
}

// NewFetcher creates a new content fetcher
func NewFetcher(params FetcherParams) *Fetcher {
	if params.Extractor == nil {
		params.Extractor = &TagExtractor{}
	}
	return &Fetcher{
		client:    &http.Client{Timeout: params.Timeout},
		cache:     NewFileCache(params.CacheDir),
		extractor: params.Extractor,
		userAgent: params.UserAgent,
	}
}

// Fetch returns the extracted body for the article URL and true, or false if the body
// is neither cached nor retrievable. Cached entries are returned as-is without revalidation.
func (f *Fetcher) Fetch(ctx context.Context, articleURL string) (string, bool) {
	key := CacheKey(articleURL)

	cached, ok, err := f.cache.Get(key)
	if err != nil {
		lgr.Printf("[WARN] %v", err)
	}
	if ok {
		lgr.Printf("[DEBUG] cache hit for %s (%s)", articleURL, key)
		return cached, true
	}

	body, err := f.download(ctx, articleURL)
	if err != nil {
		lgr.Printf("[WARN] failed to fetch article %s: %v", articleURL, err)
		return "", false
	}

	if err := f.cache.Put(key, body); err != nil {
		lgr.Printf("[WARN] failed to cache article %s: %v", articleURL, err)
	}
	return body, true
}

// download fetches the page once and runs the extractor over it
func (f *Fetcher) download(ctx context.Context, articleURL string) (string, error) {
	parsedURL, err := url.Parse(articleURL)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", articleURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	addBrowserHeaders(req, f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	page, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode charset: %w", err)
	}

	body, err := f.extractor.Extract(page, parsedURL)
	if err != nil {
		return "", fmt.Errorf("extract content: %w", err)
	}
	return body, nil
}
