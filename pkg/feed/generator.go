package feed

import (
	"encoding/xml"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/umputun/newssite/pkg/domain"
)

// Generator creates an RSS feed of the built site
type Generator struct {
	baseURL     string
	title       string
	description string
}

// NewGenerator creates a new feed generator for the site at baseURL
func NewGenerator(baseURL, title, description string) *Generator {
	return &Generator{
		baseURL:     strings.TrimRight(baseURL, "/"),
		title:       title,
		description: description,
	}
}

// GenerateRSS creates an RSS 2.0 feed of articles, items link to the generated detail pages
func (g *Generator) GenerateRSS(articles []domain.Article) (string, error) {
	rssItems := make([]*RSSItem, 0, len(articles))
	for i, article := range articles {
		rssItems = append(rssItems, g.convertToRSSItem(i, article))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         g.title,
			Link:          g.baseURL + "/",
			Description:   g.description,
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss.xml", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts the article at position idx to an RSS item
func (g *Generator) convertToRSSItem(idx int, article domain.Article) *RSSItem {
	item := &RSSItem{
		Title:       article.Title,
		Link:        fmt.Sprintf("%s/article_%d.html", g.baseURL, idx),
		GUID:        &RSSGUID{Value: article.Link, IsPermaLink: true},
		Description: article.Summary,
	}

	// keep the feed's own timestamp format when it can't be parsed
	switch {
	case !article.PublishedAt.IsZero():
		item.PubDate = article.PublishedAt.Format(time.RFC1123Z)
	case article.Published != "":
		item.PubDate = article.Published
	}

	if article.Image != "" {
		item.Enclosure = &RSSEnclosure{URL: article.Image, Type: imageType(article.Image)}
	}
	return item
}

// imageType guesses the media type of an image URL by its extension
func imageType(imageURL string) string {
	p := imageURL
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if t := mime.TypeByExtension(path.Ext(p)); strings.HasPrefix(t, "image/") {
		return t
	}
	return "image/jpeg"
}
