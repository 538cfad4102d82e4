package server

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newssite/pkg/domain"
)

const (
	headlinesLimit   = 15
	headlinesWorkers = 4
)

// headlinesHandler returns the most recent headlines across all configured feeds
func (s *Server) headlinesHandler(w http.ResponseWriter, r *http.Request) {
	headlines, err := s.headlines(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get headlines: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, headlines)
}

// headlines parses feeds concurrently and returns up to headlinesLimit entries, newest first.
// A failed feed is skipped, an error is returned only if every feed failed.
func (s *Server) headlines(ctx context.Context) ([]domain.Headline, error) {
	var (
		mu      sync.Mutex
		entries []domain.FeedEntry
		failed  int
		lastErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(headlinesWorkers)
	for _, feedURL := range s.feeds {
		g.Go(func() error {
			res, err := s.parser.Parse(gctx, feedURL)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				lgr.Printf("[WARN] headlines: skip feed %s: %v", feedURL, err)
				failed++
				lastErr = err
				return nil
			}
			entries = append(entries, res...)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	if len(s.feeds) > 0 && failed == len(s.feeds) {
		return nil, fmt.Errorf("all %d feeds failed: %w", failed, lastErr)
	}

	// undated entries go last
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PublishedAt.After(entries[j].PublishedAt)
	})
	if len(entries) > headlinesLimit {
		entries = entries[:headlinesLimit]
	}

	res := make([]domain.Headline, 0, len(entries))
	for _, e := range entries {
		h := domain.Headline{Title: e.Title, Link: e.Link, Summary: e.Summary, Source: e.Source}
		if !e.PublishedAt.IsZero() {
			published := e.PublishedAt
			h.Published = &published
		}
		res = append(res, h)
	}
	return res, nil
}
