package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newssite/pkg/domain"
	"github.com/umputun/newssite/pkg/feed"
)

const placeholder = "https://via.placeholder.com/600x400?text=No+Image"

func newTestRenderer(t *testing.T, gen FeedGenerator) *Renderer {
	t.Helper()
	r, err := New(Params{Title: "Daily Test News", Description: "Test headlines", FeedGenerator: gen})
	require.NoError(t, err)
	r.now = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 59, 0, time.UTC) }
	return r
}

func testArticles() []domain.Article {
	return []domain.Article{
		{
			FeedEntry: domain.FeedEntry{
				Title:     "Hero Story",
				Link:      "https://example.com/hero",
				Summary:   "hero summary",
				Published: "Tue, 05 Mar 2024 10:00:00 +0000",
				Image:     "https://example.com/hero.jpg",
			},
			Content:        "<h2>Heading</h2>\n<p>" + strings.Repeat("a", 300) + "</p>\n",
			ContentFetched: true,
		},
		{
			FeedEntry: domain.FeedEntry{
				Title:   "Second Story",
				Link:    "https://example.com/second",
				Summary: strings.Repeat("s", 150),
				Image:   placeholder,
			},
		},
		{
			FeedEntry: domain.FeedEntry{
				Title:   "Third Story",
				Link:    "https://example.com/third",
				Summary: "short",
				Image:   "https://example.com/third.png",
			},
			Content:        "<p>third body with <b>markup</b></p>\n",
			ContentFetched: true,
		},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRenderer_Render(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")
	r := newTestRenderer(t, nil)

	err := r.Render(testArticles(), dir)
	require.NoError(t, err)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name())
	}
	assert.ElementsMatch(t, []string{"index.html", "article_0.html", "article_1.html", "article_2.html"}, names)

	index := readFile(t, filepath.Join(dir, "index.html"))
	assert.Contains(t, index, "<title>Daily Test News</title>")
	assert.Contains(t, index, `<meta name="description" content="Test headlines">`)
	assert.Contains(t, index, "<strong>BREAKING:</strong> Hero Story")
	assert.Contains(t, index, `<img src="https://example.com/hero.jpg" class="img-fluid rounded" alt="Hero Story">`)
	assert.Contains(t, index, `<a href="article_0.html">Hero Story</a>`)
	assert.Contains(t, index, "<p>Heading\n"+strings.Repeat("a", 200-len("Heading\n"))+"...</p>")
	assert.Contains(t, index, `<a href="article_1.html">Second Story</a>`)
	assert.Contains(t, index, `<p class="card-text">`+strings.Repeat("s", 120)+`...</p>`)
	assert.Contains(t, index, `<p class="card-text">short...</p>`)
	assert.Contains(t, index, "Last updated: 2024-03-05 14:07")
	assert.NotContains(t, index, "rss.xml")

	// placeholder image used on both index card and detail page
	assert.Contains(t, index, `<img src="https://via.placeholder.com/600x400?text=No&#43;Image" class="card-img-top" alt="Second Story">`)
	second := readFile(t, filepath.Join(dir, "article_1.html"))
	assert.Contains(t, second, `<img src="https://via.placeholder.com/600x400?text=No&#43;Image" class="img-fluid rounded mb-4" alt="Second Story">`)
	assert.Contains(t, second, "<div></div>", "absent content renders as empty block")
	assert.Contains(t, second, "<title>Second Story | Daily Test News</title>")

	third := readFile(t, filepath.Join(dir, "article_2.html"))
	assert.Contains(t, third, "<div><p>third body with <b>markup</b></p>\n</div>", "content is not escaped")
	assert.Contains(t, third, `<a href="https://example.com/third" rel="noopener">Original article</a>`)

	hero := readFile(t, filepath.Join(dir, "article_0.html"))
	assert.Contains(t, hero, "&middot; Tue, 05 Mar 2024 10:00:00 &#43;0000")
}

func TestRenderer_Render_Overwrites(t *testing.T) {
	dir := t.TempDir()
	r := newTestRenderer(t, nil)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "article_0.html"), []byte("old"), 0o600))
	require.NoError(t, r.Render(testArticles()[:1], dir))

	assert.Contains(t, readFile(t, filepath.Join(dir, "article_0.html")), "Hero Story")
	index := readFile(t, filepath.Join(dir, "index.html"))
	assert.Contains(t, index, `<div class="row">`)
	assert.NotContains(t, index, "card-img-top", "single article has an empty grid")
}

func TestRenderer_Render_Empty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")
	r := newTestRenderer(t, nil)

	require.NoError(t, r.Render(nil, dir))
	_, err := os.Stat(dir)
	assert.True(t, errors.Is(err, os.ErrNotExist), "output dir not created")
}

func TestRenderer_Render_HeroWithoutContent(t *testing.T) {
	dir := t.TempDir()
	r := newTestRenderer(t, nil)

	articles := testArticles()[1:2]
	require.NoError(t, r.Render(articles, dir))
	assert.Contains(t, readFile(t, filepath.Join(dir, "index.html")), "<p>...</p>")
}

func TestRenderer_Render_HeroLeadingWhitespace(t *testing.T) {
	dir := t.TempDir()
	r := newTestRenderer(t, nil)

	articles := testArticles()[:1]
	articles[0].Content = "<p>\n   lead " + strings.Repeat("b", 250) + "</p>\n"
	require.NoError(t, r.Render(articles, dir))

	// leading whitespace counts toward the excerpt length
	want := "\n   lead " + strings.Repeat("b", 200-len("\n   lead ")) + "..."
	assert.Contains(t, readFile(t, filepath.Join(dir, "index.html")), "<p>"+want+"</p>")
}

func TestRenderer_Render_RSS(t *testing.T) {
	dir := t.TempDir()
	r := newTestRenderer(t, feed.NewGenerator("https://news.example.com", "Daily Test News", "Test headlines"))

	require.NoError(t, r.Render(testArticles(), dir))

	rss := readFile(t, filepath.Join(dir, "rss.xml"))
	assert.Contains(t, rss, "<link>https://news.example.com/article_2.html</link>")
	assert.Contains(t, readFile(t, filepath.Join(dir, "index.html")), `href="rss.xml"`)
}

type failingGenerator struct{}

func (failingGenerator) GenerateRSS([]domain.Article) (string, error) {
	return "", fmt.Errorf("boom")
}

func TestRenderer_Render_Errors(t *testing.T) {
	t.Run("rss generation failure surfaces", func(t *testing.T) {
		r := newTestRenderer(t, failingGenerator{})
		err := r.Render(testArticles(), t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generate rss: boom")
	})

	t.Run("output path is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
		err := newTestRenderer(t, nil).Render(testArticles(), file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create output dir")
	})
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{in: "", n: 10, want: "..."},
		{in: "short", n: 10, want: "short..."},
		{in: "exactly10!", n: 10, want: "exactly10!..."},
		{in: "this is longer than ten", n: 10, want: "this is lo..."},
		{in: "привет мир", n: 6, want: "привет..."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Excerpt(tt.in, tt.n))
		})
	}

	t.Run("length law", func(t *testing.T) {
		for _, l := range []int{0, 1, 119, 120, 121, 200, 250} {
			s := strings.Repeat("é", l)
			got := strings.TrimSuffix(Excerpt(s, 120), "...")
			assert.Equal(t, min(120, l), utf8.RuneCountInString(got))
		}
	})
}
