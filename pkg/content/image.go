package content

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
)

// ImageResolver finds a representative image in fetched article content
type ImageResolver struct{}

// NewImageResolver creates a new image resolver
func NewImageResolver() *ImageResolver {
	return &ImageResolver{}
}

// Resolve returns the first non-empty img src in body. A src without a scheme is
// prefixed with the origin (scheme and host) of pageURL.
func (r *ImageResolver) Resolve(pageURL, body string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		lgr.Printf("[WARN] failed to parse content of %s for image: %v", pageURL, err)
		return "", false
	}

	var src string
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src = strings.TrimSpace(s.AttrOr("src", ""))
		return src == ""
	})
	if src == "" {
		return "", false
	}

	if u, err := url.Parse(src); err == nil && u.Scheme != "" {
		return src, true
	}

	page, err := url.Parse(pageURL)
	if err != nil || page.Scheme == "" || page.Host == "" {
		lgr.Printf("[WARN] can't resolve relative image %q against %s", src, pageURL)
		return "", false
	}

	switch {
	case strings.HasPrefix(src, "//"):
		return page.Scheme + ":" + src, true
	case strings.HasPrefix(src, "/"):
		return page.Scheme + "://" + page.Host + src, true
	default:
		return page.Scheme + "://" + page.Host + "/" + src, true
	}
}
