package content

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"github.com/microcosm-cc/bluemonday"
	xhtml "golang.org/x/net/html"

	"github.com/umputun/newssite/pkg/config"
)

// Extractor turns a fetched HTML page into the body fragments stored in the cache
type Extractor interface {
	Extract(page io.Reader, pageURL *url.URL) (string, error)
}

// NewExtractor returns the extractor for the configured mode, tag extraction by default
func NewExtractor(mode string) Extractor {
	switch mode {
	case config.ExtractionTrafilatura:
		return &TrafilaturaExtractor{policy: bluemonday.UGCPolicy()}
	case config.ExtractionReadability:
		return &ReadabilityExtractor{policy: bluemonday.UGCPolicy()}
	default:
		return &TagExtractor{}
	}
}

// TagExtractor collects paragraph and sub-heading text in document order,
// each wrapped in a tag of the same name, one fragment per line
type TagExtractor struct{}

// Extract implements Extractor
func (e *TagExtractor) Extract(page io.Reader, _ *url.URL) (string, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	var b strings.Builder
	doc.Find("p, h2, h3").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		fmt.Fprintf(&b, "<%s>%s</%s>\n", tag, html.EscapeString(s.Text()), tag)
	})
	return b.String(), nil
}

// TrafilaturaExtractor keeps the main content block detected by trafilatura, images included
type TrafilaturaExtractor struct {
	policy *bluemonday.Policy
}

// Extract implements Extractor
func (e *TrafilaturaExtractor) Extract(page io.Reader, pageURL *url.URL) (string, error) {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeImages:   true,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     pageURL,
	}

	result, err := trafilatura.Extract(page, opts)
	if err != nil {
		return "", fmt.Errorf("trafilatura extract: %w", err)
	}
	if result == nil || result.ContentNode == nil {
		return "", fmt.Errorf("no content extracted")
	}

	var buf bytes.Buffer
	if err := xhtml.Render(&buf, result.ContentNode); err != nil {
		return "", fmt.Errorf("render content: %w", err)
	}
	return strings.TrimSpace(e.policy.Sanitize(buf.String())) + "\n", nil
}

// ReadabilityExtractor keeps the article HTML detected by readability
type ReadabilityExtractor struct {
	policy *bluemonday.Policy
}

// Extract implements Extractor
func (e *ReadabilityExtractor) Extract(page io.Reader, pageURL *url.URL) (string, error) {
	article, err := readability.FromReader(page, pageURL)
	if err != nil {
		return "", fmt.Errorf("readability extract: %w", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return "", fmt.Errorf("no content extracted")
	}
	return strings.TrimSpace(e.policy.Sanitize(article.Content)) + "\n", nil
}
