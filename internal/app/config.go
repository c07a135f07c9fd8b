package app

import (
	"errors"
	"time"
)

// Config holds runtime configuration for one import run.
type Config struct {
	// Exactly one input must be set.
	URL      string // web page to import
	PDFPath  string // local PDF whose text layer is parsed
	TextPath string // pre-extracted text (e.g. OCR output for a photo)

	// SourceID overrides the provenance identifier stamped on the recipe
	// for the text paths; defaults to the input path.
	SourceID string

	// OutputPath receives the recipe as JSON; empty means stdout.
	OutputPath string

	// WithMedia surfaces every candidate image URL found on the page
	// instead of only the auto-selected one.
	WithMedia bool

	// VocabPath optionally overrides the text parser's keyword tables.
	VocabPath string

	UserAgent string
	Timeout   time.Duration

	CacheDir    string
	CacheMaxAge time.Duration
	CacheClear  bool

	Verbose bool
}

// Validate rejects configurations with zero or multiple inputs.
func (c Config) Validate() error {
	n := 0
	for _, in := range []string{c.URL, c.PDFPath, c.TextPath} {
		if in != "" {
			n++
		}
	}
	switch {
	case n == 0:
		return errors.New("one of -url, -pdf, or -text is required")
	case n > 1:
		return errors.New("-url, -pdf, and -text are mutually exclusive")
	}
	return nil
}
