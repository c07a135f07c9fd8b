// Package jsonld locates schema.org Recipe objects embedded in HTML as
// JSON-LD script blocks.
package jsonld

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractRecipe scans every <script type="application/ld+json"> block in
// document order and returns the first JSON object typed as a Recipe,
// whether it sits at the top level, inside a top-level array, or inside an
// @graph array. A block that fails to decode is skipped; the scan
// continues. Returns nil when no block yields a recipe.
func ExtractRecipe(doc *goquery.Document) map[string]any {
	var found map[string]any
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		typ, _ := s.Attr("type")
		if !strings.EqualFold(strings.TrimSpace(typ), "application/ld+json") {
			return true
		}
		if r := decodeBlock(s.Text()); r != nil {
			found = r
			return false
		}
		return true
	})
	return found
}

// ExtractRecipeHTML parses raw markup and applies ExtractRecipe. Broken
// markup is tolerated as far as the HTML parser allows; a document that
// cannot be parsed at all yields nil.
func ExtractRecipeHTML(html string) map[string]any {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return ExtractRecipe(doc)
}

func decodeBlock(content string) map[string]any {
	var data any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil
	}
	switch v := data.(type) {
	case map[string]any:
		if IsRecipe(v) {
			return v
		}
		if graph, ok := v["@graph"].([]any); ok {
			return firstRecipe(graph)
		}
	case []any:
		return firstRecipe(v)
	}
	return nil
}

func firstRecipe(items []any) map[string]any {
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok && IsRecipe(obj) {
			return obj
		}
	}
	return nil
}

// IsRecipe reports whether the object's @type is "Recipe", accepting both
// the bare string form and the array form schema.org permits.
func IsRecipe(obj map[string]any) bool {
	switch t := obj["@type"].(type) {
	case string:
		return strings.EqualFold(t, "Recipe")
	case []any:
		for _, el := range t {
			if s, ok := el.(string); ok && strings.EqualFold(s, "Recipe") {
				return true
			}
		}
	}
	return false
}
