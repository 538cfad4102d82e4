package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// extraction modes supported by the content fetcher
const (
	ExtractionTags        = "tags"
	ExtractionTrafilatura = "trafilatura"
	ExtractionReadability = "readability"
)

const (
	defaultTitle       = "Daily Global News"
	defaultDescription = "Top headlines from around the world in one place."
	defaultOutputDir   = "public"
	defaultCacheDir    = "cache"
	defaultMaxArticles = 80
	defaultImage       = "https://via.placeholder.com/600x400?text=No+Image"
	defaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Config holds the site build configuration
type Config struct {
	Site SiteConfig `yaml:"site" json:"site" jsonschema:"description=Site metadata"`

	Feeds []Feed `yaml:"feeds" json:"feeds" jsonschema:"required,minItems=1,description=Feeds to aggregate in order"`

	OutputDir    string `yaml:"output_dir" json:"output_dir" jsonschema:"default=public,description=Directory for generated pages"`
	CacheDir     string `yaml:"cache_dir" json:"cache_dir" jsonschema:"default=cache,description=Directory for cached article bodies"`
	MaxArticles  int    `yaml:"max_articles" json:"max_articles" jsonschema:"default=80,minimum=1,description=Maximum number of articles per build"`
	DefaultImage string `yaml:"default_image" json:"default_image" jsonschema:"description=Placeholder image for articles without one"`

	HTTP HTTPConfig `yaml:"http" json:"http" jsonschema:"description=Outgoing HTTP settings"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Article body extraction settings"`

	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=Preview server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Preview server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Preview server configuration"`
}

// SiteConfig holds site metadata used by the renderer
type SiteConfig struct {
	Title       string `yaml:"title" json:"title" jsonschema:"default=Daily Global News,description=Site title"`
	Description string `yaml:"description" json:"description" jsonschema:"description=Site description for meta tags"`
	URL         string `yaml:"url" json:"url" jsonschema:"description=Public base URL, enables rss.xml generation"`
}

// Feed represents a single feed source
type Feed struct {
	URL  string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Name string `yaml:"name" json:"name" jsonschema:"description=Feed name (defaults to URL)"`
}

// HTTPConfig holds outgoing request settings
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Timeout per HTTP request"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for article requests"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Mode string `yaml:"mode" json:"mode" jsonschema:"default=tags,enum=tags,enum=trafilatura,enum=readability,description=Body extraction mode"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		Feeds: []Feed{
			{URL: "https://www.lemonde.fr/rss/une.xml"},
			{URL: "https://www.theguardian.com/world/rss"},
			{URL: "https://rss.dw.com/rdf/rss-en-world"},
		},
	}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Site.Title == "" {
		cfg.Site.Title = defaultTitle
	}
	if cfg.Site.Description == "" {
		cfg.Site.Description = defaultDescription
	}

	for i := range cfg.Feeds {
		if cfg.Feeds[i].Name == "" {
			cfg.Feeds[i].Name = cfg.Feeds[i].URL
		}
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir
	}
	if cfg.MaxArticles == 0 {
		cfg.MaxArticles = defaultMaxArticles
	}
	if cfg.DefaultImage == "" {
		cfg.DefaultImage = defaultImage
	}

	if cfg.HTTP.Timeout == 0 {
		cfg.HTTP.Timeout = 10 * time.Second
	}
	if cfg.HTTP.UserAgent == "" {
		cfg.HTTP.UserAgent = defaultUserAgent
	}

	if cfg.Extraction.Mode == "" {
		cfg.Extraction.Mode = ExtractionTags
	}

	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
}

// Validate checks configuration for correctness
func (c *Config) Validate() error {
	if len(c.Feeds) == 0 {
		return fmt.Errorf("at least one feed is required")
	}
	for i, f := range c.Feeds {
		if f.URL == "" {
			return fmt.Errorf("feeds[%d].url is required", i)
		}
	}

	if c.MaxArticles < 1 {
		return fmt.Errorf("max_articles must be at least 1")
	}

	if c.HTTP.Timeout < time.Second {
		return fmt.Errorf("http timeout must be at least 1 second")
	}

	switch c.Extraction.Mode {
	case ExtractionTags, ExtractionTrafilatura, ExtractionReadability:
	default:
		return fmt.Errorf("unknown extraction mode %q", c.Extraction.Mode)
	}

	if c.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// FeedURLs returns configured feed URLs in order
func (c *Config) FeedURLs() []string {
	res := make([]string, 0, len(c.Feeds))
	for _, f := range c.Feeds {
		res = append(res, f.URL)
	}
	return res
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
