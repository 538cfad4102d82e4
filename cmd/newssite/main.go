package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newssite/pkg/aggregator"
	"github.com/umputun/newssite/pkg/config"
	"github.com/umputun/newssite/pkg/content"
	"github.com/umputun/newssite/pkg/feed"
	"github.com/umputun/newssite/pkg/site"
	"github.com/umputun/newssite/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, built-in feeds are used if not set"`
	Output string `short:"o" long:"output" env:"OUTPUT" description:"output directory, overrides config"`
	Cache  string `long:"cache" env:"CACHE" description:"content cache directory, overrides config"`
	Max    int    `short:"m" long:"max" env:"MAX_ARTICLES" description:"max number of articles, overrides config"`
	Serve  bool   `short:"s" long:"serve" description:"serve generated site after build"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	lgr.Printf("[INFO] starting newssite version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// run builds the site and optionally serves it until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	parser := feed.NewParser(cfg.HTTP.Timeout)
	agg := aggregator.New(aggregator.Params{
		Reader: parser,
		Fetcher: content.NewFetcher(content.FetcherParams{
			CacheDir:  cfg.CacheDir,
			Timeout:   cfg.HTTP.Timeout,
			UserAgent: cfg.HTTP.UserAgent,
			Extractor: content.NewExtractor(cfg.Extraction.Mode),
		}),
		Resolver:     content.NewImageResolver(),
		DefaultImage: cfg.DefaultImage,
	})

	articles := agg.Aggregate(ctx, cfg.FeedURLs(), cfg.MaxArticles)
	if err := renderer.Render(articles, cfg.OutputDir); err != nil {
		return fmt.Errorf("failed to render site: %w", err)
	}
	fmt.Printf("Site generated successfully in %s/ folder.\n", cfg.OutputDir)

	if !opts.Serve {
		return nil
	}

	srv := server.New(server.Params{
		Config:  cfg,
		Parser:  parser,
		Feeds:   cfg.FeedURLs(),
		Dir:     cfg.OutputDir,
		Build:   server.BuildInfo{Articles: len(articles), BuiltAt: time.Now()},
		Version: revision,
		Debug:   opts.Debug,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	lgr.Print("[INFO] shutdown complete")
	return nil
}

// loadConfig reads config file or takes built-in defaults, then applies CLI overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.Output != "" {
		cfg.OutputDir = opts.Output
	}
	if opts.Cache != "" {
		cfg.CacheDir = opts.Cache
	}
	if opts.Max != 0 {
		cfg.MaxArticles = opts.Max
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newRenderer(cfg *config.Config) (*site.Renderer, error) {
	params := site.Params{Title: cfg.Site.Title, Description: cfg.Site.Description}
	if cfg.Site.URL != "" {
		params.FeedGenerator = feed.NewGenerator(cfg.Site.URL, cfg.Site.Title, cfg.Site.Description)
	}
	return site.New(params)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stdout), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.CallerFile, lgr.CallerFunc}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
