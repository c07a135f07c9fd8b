package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ladlehq/ladle/internal/app"
	"github.com/ladlehq/ladle/internal/recipe"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		cfg        app.Config
		configPath string
	)

	flag.StringVar(&cfg.URL, "url", "", "Recipe page URL to import")
	flag.StringVar(&cfg.PDFPath, "pdf", "", "PDF file whose text layer is parsed")
	flag.StringVar(&cfg.TextPath, "text", "", "Pre-extracted text file (e.g. OCR output for a photo)")
	flag.StringVar(&cfg.SourceID, "source-id", "", "Override the provenance identifier stamped on the recipe")
	flag.StringVar(&cfg.OutputPath, "o", "", "Write the recipe JSON here instead of stdout")
	flag.BoolVar(&cfg.WithMedia, "media", false, "Also list every candidate image URL found on the page")
	flag.StringVar(&cfg.VocabPath, "vocab", "", "YAML file overriding the text parser keyword tables")
	flag.StringVar(&cfg.UserAgent, "ua", os.Getenv("LADLE_UA"), "User-Agent for page fetches")
	flag.DurationVar(&cfg.Timeout, "timeout", 0, "Per-request fetch timeout (e.g. 15s)")
	flag.StringVar(&cfg.CacheDir, "cache.dir", os.Getenv("LADLE_CACHE_DIR"), "Page cache directory; empty disables caching")
	flag.DurationVar(&cfg.CacheMaxAge, "cache.maxAge", 0, "Purge cache entries older than this before the run; 0 disables")
	flag.BoolVar(&cfg.CacheClear, "cache.clear", false, "Clear the page cache before the run")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")
	flag.StringVar(&configPath, "config", "", "Optional YAML settings file")
	flag.Parse()

	if configPath != "" {
		fc, err := app.LoadFileConfig(configPath)
		if err != nil {
			log.Error().Err(err).Msg("config file")
			os.Exit(2)
		}
		cfg.ApplyFile(fc)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "ladle/1.0 (+https://github.com/ladlehq/ladle)"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ladle:", err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := a.Run(ctx)
	if err != nil {
		switch {
		case errors.Is(err, recipe.ErrNoRecipeData), errors.Is(err, recipe.ErrNoText):
			log.Error().Err(err).Msg("nothing to import")
		default:
			log.Error().Err(err).Msg("import failed")
		}
		os.Exit(1)
	}

	log.Info().
		Str("title", res.Recipe.Title).
		Int("ingredients", len(res.Recipe.Ingredients)).
		Int("instructions", len(res.Recipe.Instructions)).
		Msg("recipe imported")
}
