// Package textparse assembles a Recipe from free-form text, typically the
// output of OCR on a photo or plain-text extraction from a PDF. There is
// no markup to rely on, so everything rests on line-based heuristics:
// section header detection, website-noise filtering, and keyword
// classification of the remaining lines.
package textparse

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"

	"github.com/ladlehq/ladle/internal/recipe"
)

var (
	servingsLineRe = regexp.MustCompile(`(?i)^(?:servings?|serves|yield)\b\s*:?\s*(.+)$`)
	tagsLineRe     = regexp.MustCompile(`(?i)^tags?\s*:\s*(.+)$`)
	prepLineRe     = regexp.MustCompile(`(?i)^prep(?:aration)?(?:\s*time)?\s*:\s*(.+)$`)
	cookLineRe     = regexp.MustCompile(`(?i)^(?:cook(?:ing)?|bake|baking)(?:\s*time)?\s*:\s*(.+)$`)
)

// Parser holds the vocabulary the line heuristics run against. The zero
// value uses the built-in tables.
type Parser struct {
	Vocab *Vocabulary
}

type region int

const (
	regionNone region = iota
	regionIngredients
	regionInstructions
)

// Parse builds a Recipe from raw text. Empty or whitespace-only input
// fails with recipe.ErrNoText; everything else produces a best-effort
// recipe whose title is the first non-blank line. source and sourceID are
// stamped onto the result verbatim.
func (p *Parser) Parse(text string, source recipe.SourceKind, sourceID string) (recipe.Recipe, error) {
	if strings.TrimSpace(text) == "" {
		return recipe.Recipe{}, recipe.ErrNoText
	}
	// OCR output often carries decomposed code points; normalize before
	// any keyword matching.
	text = norm.NFC.String(text)

	vocab := DefaultVocabulary()
	if p.Vocab != nil {
		vocab = *p.Vocab
	}
	c := newClassifier(vocab)

	lines := strings.Split(text, "\n")

	r := recipe.Recipe{
		Servings: recipe.DefaultServings,
		Source:   source,
		SourceID: sourceID,
	}

	var (
		sectIngredients  []string
		sectInstructions []string
		freeIngredients  []string
		freeInstructions []string
		sawIngHeader     bool
		sawInstHeader    bool
		servingsSet      bool
		titleTaken       bool
		noiseDropped     int
	)

	cur := regionNone
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !titleTaken {
			// Title extraction is independent of section detection: the
			// first non-blank line is always the title.
			r.Title = line
			titleTaken = true
			continue
		}

		switch headerKind(line, vocab) {
		case regionIngredients:
			cur = regionIngredients
			sawIngHeader = true
			continue
		case regionInstructions:
			cur = regionInstructions
			sawInstHeader = true
			continue
		}

		if m := servingsLineRe.FindStringSubmatch(line); m != nil {
			if n, ok := firstInt(m[1]); ok && !servingsSet {
				r.Servings = n
				servingsSet = true
			}
			continue
		}
		if m := tagsLineRe.FindStringSubmatch(line); m != nil {
			for _, tag := range strings.Split(m[1], ",") {
				tag = strings.TrimSpace(tag)
				if tag != "" {
					r.Tags = append(r.Tags, tag)
				}
			}
			continue
		}
		if m := prepLineRe.FindStringSubmatch(line); m != nil {
			if mins, ok := ParseTimeString(m[1]); ok {
				r.PrepMinutes = mins
			}
			continue
		}
		if m := cookLineRe.FindStringSubmatch(line); m != nil {
			if mins, ok := ParseTimeString(m[1]); ok {
				r.CookMinutes = mins
			}
			continue
		}

		if c.isWebsiteNoise(line) {
			noiseDropped++
			continue
		}

		switch cur {
		case regionIngredients:
			if c.looksLikeIngredient(line, true) {
				sectIngredients = append(sectIngredients, CleanIngredient(line))
			}
		case regionInstructions:
			if c.looksLikeInstruction(line) {
				sectInstructions = append(sectInstructions, CleanInstruction(line))
			}
		default:
			// Outside any section, a quantity prefix outranks the verb
			// test: "2 cups flour" is an ingredient even when a verb
			// appears later in the line.
			switch {
			case c.hasQuantity(line):
				freeIngredients = append(freeIngredients, CleanIngredient(line))
			case c.looksLikeInstruction(line):
				freeInstructions = append(freeInstructions, CleanInstruction(line))
			case c.looksLikeIngredient(line, false):
				freeIngredients = append(freeIngredients, CleanIngredient(line))
			}
		}
	}

	if sawIngHeader {
		r.Ingredients = sectIngredients
	} else {
		r.Ingredients = freeIngredients
	}
	if sawInstHeader {
		r.Instructions = sectInstructions
	} else {
		r.Instructions = freeInstructions
	}

	log.Debug().
		Str("source", string(source)).
		Int("ingredients", len(r.Ingredients)).
		Int("instructions", len(r.Instructions)).
		Int("noiseDropped", noiseDropped).
		Msg("text parse complete")

	return r, nil
}

// headerKind classifies a line as a section header after trimming and
// stripping one trailing colon. Matching is case-insensitive.
func headerKind(line string, vocab Vocabulary) region {
	h := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":")))
	for _, name := range vocab.IngredientHeaders {
		if h == strings.ToLower(name) {
			return regionIngredients
		}
	}
	for _, name := range vocab.InstructionHeaders {
		if h == strings.ToLower(name) {
			return regionInstructions
		}
	}
	return regionNone
}
