package recipe

import "errors"

// DefaultServings is assumed whenever a source does not state a yield.
const DefaultServings = 4

// ErrNoRecipeData is returned when a page carries neither JSON-LD recipe
// markup nor an Open Graph title to fall back on.
var ErrNoRecipeData = errors.New("no recipe data found")

// ErrNoText is returned when the text path receives empty or
// whitespace-only input.
var ErrNoText = errors.New("no text found")

// SourceKind identifies where a recipe's raw content came from.
type SourceKind string

const (
	SourceWeb   SourceKind = "web"
	SourcePDF   SourceKind = "pdf"
	SourcePhoto SourceKind = "photo"
)

// Recipe is the normalized output of every extraction path. It is a plain
// value; parsers build one fresh per call and never retain a reference.
//
// Servings is always positive after a successful parse (DefaultServings
// when the source is silent). PrepMinutes and CookMinutes use zero to mean
// unspecified: a literal zero duration in the source ("PT0M") is
// indistinguishable from absent and is treated as such.
type Recipe struct {
	Title        string     `json:"title"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	Servings     int        `json:"servings"`
	PrepMinutes  int        `json:"prepMinutes,omitempty"`
	CookMinutes  int        `json:"cookMinutes,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	PhotoURL     string     `json:"photoUrl,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Source       SourceKind `json:"source,omitempty"`
	SourceID     string     `json:"sourceId,omitempty"`
}
