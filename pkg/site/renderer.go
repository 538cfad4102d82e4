package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newssite/pkg/content"
	"github.com/umputun/newssite/pkg/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	heroExcerptLen = 200
	cardExcerptLen = 120
	ellipsis       = "..."
	timeLayout     = "2006-01-02 15:04"
)

// FeedGenerator makes an RSS document of the rendered articles
type FeedGenerator interface {
	GenerateRSS(articles []domain.Article) (string, error)
}

// Renderer writes the static site: index page and one page per article
type Renderer struct {
	title       string
	description string
	feedGen     FeedGenerator
	templates   *template.Template
	now         func() time.Time
}

// Params holds renderer settings
type Params struct {
	Title         string
	Description   string
	FeedGenerator FeedGenerator // rss.xml is written only if set
}

// siteInfo is shared by all pages
type siteInfo struct {
	Title       string
	Description string
}

// articleView is an article prepared for templates
type articleView struct {
	Title     string
	Link      string
	Published string
	Image     string
	Page      string
	Excerpt   string
	Content   template.HTML
	Site      siteInfo
}

type indexView struct {
	Site    siteInfo
	Hero    articleView
	Cards   []articleView
	Updated string
	HasRSS  bool
}

// New creates a renderer with embedded templates
func New(params Params) (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{
		title:       params.Title,
		description: params.Description,
		feedGen:     params.FeedGenerator,
		templates:   tmpl,
		now:         time.Now,
	}, nil
}

// Render writes index.html and article_<i>.html for every article into outputDir,
// overwriting existing files. Nothing is written for an empty list.
func (r *Renderer) Render(articles []domain.Article, outputDir string) error {
	if len(articles) == 0 {
		lgr.Printf("[WARN] no articles to display, site not rendered")
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("create output dir %s: %w", outputDir, err)
	}

	site := siteInfo{Title: r.title, Description: r.description}
	index := indexView{
		Site:    site,
		Hero:    r.view(0, articles[0], site),
		Cards:   make([]articleView, 0, len(articles)-1),
		Updated: r.now().Format(timeLayout),
		HasRSS:  r.feedGen != nil,
	}
	// hero excerpt is taken from content text with whitespace kept, card excerpts from summary as is
	index.Hero.Excerpt = Excerpt(content.PlainText(articles[0].Content), heroExcerptLen)
	for i := 1; i < len(articles); i++ {
		card := r.view(i, articles[i], site)
		card.Excerpt = Excerpt(articles[i].Summary, cardExcerptLen)
		index.Cards = append(index.Cards, card)
	}

	if err := r.writeTemplate(filepath.Join(outputDir, "index.html"), "index.html", index); err != nil {
		return err
	}

	for i, article := range articles {
		page := filepath.Join(outputDir, pageName(i))
		if err := r.writeTemplate(page, "article.html", r.view(i, article, site)); err != nil {
			return err
		}
	}

	if r.feedGen != nil {
		rss, err := r.feedGen.GenerateRSS(articles)
		if err != nil {
			return fmt.Errorf("generate rss: %w", err)
		}
		if err := os.WriteFile(filepath.Join(outputDir, "rss.xml"), []byte(rss), 0o644); err != nil { //nolint:gosec // public site content
			return fmt.Errorf("write rss.xml: %w", err)
		}
	}

	lgr.Printf("[INFO] rendered index and %d article pages to %s", len(articles), outputDir)
	return nil
}

func (r *Renderer) view(idx int, article domain.Article, site siteInfo) articleView {
	return articleView{
		Title:     article.Title,
		Link:      article.Link,
		Published: article.Published,
		Image:     article.Image,
		Page:      pageName(idx),
		Content:   template.HTML(article.Content), //nolint:gosec // content is extracted and sanitized at fetch time
		Site:      site,
	}
}

func (r *Renderer) writeTemplate(path, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // public site content
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// pageName returns the detail page file name for the article at position idx
func pageName(idx int) string {
	return fmt.Sprintf("article_%d.html", idx)
}

// Excerpt returns the first n characters of s followed by a literal ellipsis.
// The cut is by characters, not words, and the ellipsis is always added.
func Excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + ellipsis
}
