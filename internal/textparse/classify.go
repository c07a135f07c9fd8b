package textparse

import (
	"regexp"
	"strconv"
	"strings"
)

// Length floors reject fragments like "a" or a bare verb ("Mix", "Bake")
// that carry no usable content on their own.
const (
	minIngredientLen  = 3
	minInstructionLen = 10
)

var (
	copyrightRe = regexp.MustCompile(`(?i)^(?:©|\(c\)|copyright)\s*\d{4}`)
	tempOrTime  = regexp.MustCompile(`(?i)\d+\s*(?:°\s*[cf]\b|degrees?\b|minutes?\b|mins?\b|hours?\b|hrs?\b)`)

	hoursRe   = regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?|h)\b`)
	minutesRe = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?|m)\b`)

	bulletRe     = regexp.MustCompile(`^\s*[-*•–—·]\s*`)
	leadNumRe    = regexp.MustCompile(`^(\d+)(?:\.\s*|\s+)`)
	stepPrefixRe = regexp.MustCompile(`(?i)^step\s*\d+\s*[:.)]?\s*`)
	numPrefixRe  = regexp.MustCompile(`^\d+\s*[.)]\s*`)

	wordSplitRe = regexp.MustCompile(`[^\p{L}]+`)
	firstIntRe  = regexp.MustCompile(`\d+`)
)

// classifier compiles a Vocabulary into the lookup structures the per-line
// heuristics need. Built once per Parse call.
type classifier struct {
	vocab      Vocabulary
	quantityRe *regexp.Regexp
	foods      map[string]struct{}
	verbs      map[string]struct{}
	noiseLines map[string]struct{}
}

func newClassifier(v Vocabulary) *classifier {
	quoted := make([]string, 0, len(v.Units))
	for _, u := range v.Units {
		quoted = append(quoted, regexp.QuoteMeta(u))
	}
	// Digit or unicode fraction, optional rest of the quantity, then a
	// unit word.
	pattern := `(?i)^[\d¼½¾⅓⅔⅛⅜⅝⅞]+[\d\s./¼½¾⅓⅔⅛⅜⅝⅞-]*\s*(?:` + strings.Join(quoted, "|") + `)\b`
	return &classifier{
		vocab:      v,
		quantityRe: regexp.MustCompile(pattern),
		foods:      wordSet(v.Foods),
		verbs:      wordSet(v.CookingVerbs),
		noiseLines: wordSet(v.NoiseLines),
	}
}

func wordSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return m
}

// isWebsiteNoise reports whether a line is navigational, legal, or
// marketing text that must never reach the ingredient or instruction
// lists. It runs before any classification.
func (c *classifier) isWebsiteNoise(line string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	if l == "" {
		return false
	}
	if _, ok := c.noiseLines[l]; ok {
		return true
	}
	if copyrightRe.MatchString(l) {
		return true
	}
	for _, phrase := range c.vocab.NoisePhrases {
		if strings.Contains(l, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// hasQuantity reports a leading digit-or-fraction plus unit word, the
// strongest ingredient signal.
func (c *classifier) hasQuantity(line string) bool {
	return c.quantityRe.MatchString(strings.TrimSpace(line))
}

// looksLikeIngredient accepts a non-noise line as an ingredient when it
// clears the length floor and either starts with a quantity, names a known
// food, or sits inside an Ingredients section (where plain "flour" is
// assumed to be an ingredient).
func (c *classifier) looksLikeIngredient(line string, inSection bool) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < minIngredientLen {
		return false
	}
	if c.hasQuantity(trimmed) {
		return true
	}
	if c.hasWordFrom(trimmed, c.foods) {
		return true
	}
	return inSection
}

// looksLikeInstruction accepts a non-noise line as a step when it clears
// the length floor and contains a cooking verb or a temperature/time
// expression.
func (c *classifier) looksLikeInstruction(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < minInstructionLen {
		return false
	}
	if c.hasWordFrom(trimmed, c.verbs) {
		return true
	}
	return tempOrTime.MatchString(trimmed)
}

func (c *classifier) hasWordFrom(line string, set map[string]struct{}) bool {
	for _, w := range wordSplitRe.Split(strings.ToLower(line), -1) {
		if w == "" {
			continue
		}
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}

// CleanIngredient strips a leading bullet marker and a leading integer
// token followed by a dot or whitespace. The integer strip reuses the
// list-numbering rule, so a quantity's first integer is removed too:
// "2 1/2 cups milk" becomes "1/2 cups milk". That behavior is preserved
// for compatibility with existing imports.
func CleanIngredient(line string) string {
	s := bulletRe.ReplaceAllString(line, "")
	s = leadNumRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// CleanInstruction strips a leading "Step N" prefix or a bare list number.
func CleanInstruction(line string) string {
	s := bulletRe.ReplaceAllString(line, "")
	s = stepPrefixRe.ReplaceAllString(s, "")
	s = numPrefixRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ParseTimeString sums every hour and minute token found in s. ok is false
// when no time token appears at all; "Quick recipe" is absent, not zero.
func ParseTimeString(s string) (int, bool) {
	total := 0
	found := false
	for _, m := range hoursRe.FindAllStringSubmatch(s, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			total += n * 60
			found = true
		}
	}
	// Strip hour tokens first so "1h" does not also match the bare "h"
	// remainder as minutes.
	rest := hoursRe.ReplaceAllString(s, " ")
	for _, m := range minutesRe.FindAllStringSubmatch(rest, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			total += n
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return total, true
}

func firstInt(s string) (int, bool) {
	digits := firstIntRe.FindString(s)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
