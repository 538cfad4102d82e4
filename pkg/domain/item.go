package domain

import "time"

// FeedEntry represents a single item parsed from an RSS/Atom feed
type FeedEntry struct {
	Title       string
	Link        string
	Summary     string    // description with markup stripped
	Published   string    // timestamp as it appears in the feed, unparsed
	PublishedAt time.Time // parsed timestamp, zero if the feed has none
	Image       string    // image from media:content or an image enclosure, empty if none
	Source      string    // title of the feed this entry belongs to
}

// HasImage reports whether the feed supplied an image for the entry
func (e FeedEntry) HasImage() bool {
	return e.Image != ""
}

// Article represents a feed entry enriched with fetched content and a resolved image
type Article struct {
	FeedEntry
	Content        string // extracted body fragments, empty if not fetched
	ContentFetched bool   // whether body fetch (or cache lookup) succeeded
}

// Headline is a lightweight view of an entry for the headlines API
type Headline struct {
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Published *time.Time `json:"published"` // nil for undated entries
	Summary   string     `json:"summary"`
	Source    string     `json:"source"`
}
