package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newssite/pkg/content"
	"github.com/umputun/newssite/pkg/domain"
)

// Parser fetches and parses RSS/Atom feeds into entries
type Parser struct {
	client *http.Client
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration) *Parser {
	return &Parser{
		client: &http.Client{Timeout: timeout},
	}
}

// Read returns entries of the feed in document order. Any failure is logged
// and results in an empty list, so a broken feed never stops the build.
func (p *Parser) Read(ctx context.Context, feedURL string) []domain.FeedEntry {
	entries, err := p.Parse(ctx, feedURL)
	if err != nil {
		lgr.Printf("[WARN] failed to read feed %s: %v", feedURL, err)
		return []domain.FeedEntry{}
	}
	lgr.Printf("[INFO] fetched %d entries from %s", len(entries), feedURL)
	return entries
}

// Parse fetches and parses a feed from the given URL
func (p *Parser) Parse(ctx context.Context, feedURL string) ([]domain.FeedEntry, error) {
	body, err := p.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	entries := make([]domain.FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entry := domain.FeedEntry{
			Title:     strings.TrimSpace(item.Title),
			Link:      strings.TrimSpace(item.Link),
			Summary:   content.StripTags(item.Description),
			Published: strings.TrimSpace(item.Published),
			Image:     itemImage(item),
			Source:    strings.TrimSpace(feed.Title),
		}
		if entry.Link == "" {
			lgr.Printf("[DEBUG] skip entry %q without link in %s", entry.Title, feedURL)
			continue
		}

		if item.PublishedParsed != nil {
			entry.PublishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.PublishedAt = *item.UpdatedParsed
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// itemImage returns media:content url if present (directly or inside media:group),
// otherwise the url of an image enclosure
func itemImage(item *gofeed.Item) string {
	if media, ok := item.Extensions["media"]; ok {
		for _, mc := range media["content"] {
			if u := strings.TrimSpace(mc.Attrs["url"]); u != "" {
				return u
			}
		}
		// media:content nested in media:group
		for _, group := range media["group"] {
			for _, mc := range group.Children["content"] {
				if u := strings.TrimSpace(mc.Attrs["url"]); u != "" {
					return u
				}
			}
		}
	}

	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	setFeedHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// setFeedHeaders sets feed-friendly Accept headers, the client identity is left to the transport
func setFeedHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/rss+xml,application/rdf+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
}
