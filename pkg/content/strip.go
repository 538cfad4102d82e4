package content

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// StripTags removes all markup from s and returns unescaped, trimmed text
func StripTags(s string) string {
	return strings.TrimSpace(PlainText(s))
}

// PlainText removes all markup from s and returns unescaped text, whitespace kept as is
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(stripPolicy.Sanitize(s))
}
