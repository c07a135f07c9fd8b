// Package app wires the extraction components into the two import paths a
// caller can take: a URL (fetch then schema.org/Open Graph parsing) or a
// text blob from a PDF or photo (heuristic text parsing).
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ladlehq/ladle/internal/cache"
	"github.com/ladlehq/ladle/internal/fetch"
	"github.com/ladlehq/ladle/internal/pdftext"
	"github.com/ladlehq/ladle/internal/recipe"
	"github.com/ladlehq/ladle/internal/schemaorg"
	"github.com/ladlehq/ladle/internal/textparse"
)

// Result is what an import run produces: the normalized recipe and, when
// requested, every candidate image URL found on the page.
type Result struct {
	Recipe recipe.Recipe `json:"recipe"`
	Images []string      `json:"images,omitempty"`
}

type App struct {
	cfg  Config
	web  *schemaorg.Parser
	text *textparse.Parser
}

func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var pageCache *cache.PageCache
	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			if err := cache.Clear(cfg.CacheDir); err != nil {
				log.Warn().Err(err).Msg("cache clear failed")
			}
		}
		if cfg.CacheMaxAge > 0 {
			if n, err := cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge); err == nil && n > 0 {
				log.Debug().Int("removed", n).Msg("purged stale cache entries")
			}
		}
		pageCache = &cache.PageCache{Dir: cfg.CacheDir}
	}

	textParser := &textparse.Parser{}
	if cfg.VocabPath != "" {
		vocab, err := textparse.LoadVocabulary(cfg.VocabPath)
		if err != nil {
			return nil, err
		}
		textParser.Vocab = &vocab
	}

	return &App{
		cfg: cfg,
		web: &schemaorg.Parser{
			Fetcher: &fetch.Client{
				UserAgent:   cfg.UserAgent,
				Timeout:     cfg.Timeout,
				MaxAttempts: 3,
				Cache:       pageCache,
			},
		},
		text: textParser,
	}, nil
}

// Run executes the configured import and writes the result as JSON to the
// output path or stdout.
func (a *App) Run(ctx context.Context) (Result, error) {
	res, err := a.parse(ctx)
	if err != nil {
		return Result{}, err
	}
	if err := a.write(res); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (a *App) parse(ctx context.Context) (Result, error) {
	switch {
	case a.cfg.URL != "":
		if a.cfg.WithMedia {
			r, images, err := a.web.ParseWithMedia(ctx, a.cfg.URL)
			return Result{Recipe: r, Images: images}, err
		}
		r, err := a.web.Parse(ctx, a.cfg.URL)
		return Result{Recipe: r}, err

	case a.cfg.PDFPath != "":
		text, err := pdftext.ExtractFile(a.cfg.PDFPath)
		if err != nil {
			return Result{}, fmt.Errorf("extract %s: %w", a.cfg.PDFPath, err)
		}
		r, err := a.text.Parse(text, recipe.SourcePDF, a.sourceID(a.cfg.PDFPath))
		return Result{Recipe: r}, err

	default:
		b, err := os.ReadFile(a.cfg.TextPath)
		if err != nil {
			return Result{}, fmt.Errorf("read %s: %w", a.cfg.TextPath, err)
		}
		r, err := a.text.Parse(string(b), recipe.SourcePhoto, a.sourceID(a.cfg.TextPath))
		return Result{Recipe: r}, err
	}
}

func (a *App) sourceID(fallback string) string {
	if a.cfg.SourceID != "" {
		return a.cfg.SourceID
	}
	return fallback
}

func (a *App) write(res Result) error {
	out := os.Stdout
	if a.cfg.OutputPath != "" {
		f, err := os.Create(a.cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
