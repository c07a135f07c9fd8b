package schemaorg

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var (
	durationRe = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?`)
	firstIntRe = regexp.MustCompile(`\d+`)
)

// DurationMinutes converts a schema.org ISO-8601 duration node (the PTnHnM
// subset) into total minutes. A zero duration, an empty or malformed
// string, and a non-string node all yield 0, which downstream treats as
// unspecified. Malformed input never produces an error.
func DurationMinutes(v any) int {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	m := durationRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	total := 0
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		total += h * 60
	}
	if m[2] != "" {
		mins, _ := strconv.Atoi(m[2])
		total += mins
	}
	return total
}

// Servings extracts a serving count from a recipeYield node, which sites
// emit as a number, a bare string, or phrases like "4-6 servings". The
// first integer substring wins. ok is false when the node carries no digit.
func Servings(v any) (int, bool) {
	var s string
	switch y := v.(type) {
	case string:
		s = y
	case float64:
		if y > 0 {
			return int(y), true
		}
		return 0, false
	case []any:
		// Some sites emit yield as ["4", "4 servings"].
		for _, el := range y {
			if n, ok := Servings(el); ok {
				return n, true
			}
		}
		return 0, false
	default:
		return 0, false
	}
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

// ImageURL resolves the polymorphic image node to a single URL: a plain
// string is the URL, an ImageObject contributes its url field, and an
// array resolves to its first element by the same rules. Anything else
// resolves to "".
func ImageURL(v any) string {
	switch img := v.(type) {
	case string:
		return img
	case []any:
		if len(img) > 0 {
			return ImageURL(img[0])
		}
	case map[string]any:
		if u, ok := img["url"].(string); ok {
			return u
		}
		if nested, ok := img["image"]; ok {
			return ImageURL(nested)
		}
	}
	return ""
}

// ImageURLs resolves every candidate URL in an image node, preserving
// document order, so a caller can offer the full set for selection.
func ImageURLs(v any) []string {
	switch img := v.(type) {
	case []any:
		var out []string
		for _, el := range img {
			if u := ImageURL(el); u != "" {
				out = append(out, u)
			}
		}
		return out
	default:
		if u := ImageURL(v); u != "" {
			return []string{u}
		}
	}
	return nil
}

// Instructions flattens the recipeInstructions node into one ordered list
// of step strings. Legal shapes: a single string, an array of strings, an
// array of HowToStep objects (text, falling back to name), or an array of
// HowToSection objects whose name is emitted as a "Name:" header line
// followed by that section's steps. Blank steps are dropped.
func Instructions(v any) []string {
	var out []string
	appendStep := func(s string) {
		s = strings.TrimSpace(html.UnescapeString(s))
		if s != "" {
			out = append(out, s)
		}
	}
	var walk func(node any)
	walk = func(node any) {
		switch n := node.(type) {
		case string:
			appendStep(n)
		case []any:
			for _, el := range n {
				walk(el)
			}
		case map[string]any:
			if items, ok := n["itemListElement"].([]any); ok {
				if name, ok := n["name"].(string); ok && strings.TrimSpace(name) != "" {
					appendStep(strings.TrimSpace(html.UnescapeString(name)) + ":")
				}
				for _, item := range items {
					walk(item)
				}
				return
			}
			if text, ok := n["text"].(string); ok && strings.TrimSpace(text) != "" {
				appendStep(text)
				return
			}
			if name, ok := n["name"].(string); ok {
				appendStep(name)
			}
		}
	}
	walk(v)
	return out
}

// StringList coerces a tag-bearing node (recipeCategory, recipeCuisine,
// keywords) into a flat list: an array contributes its string elements,
// a single string is split on commas. Results are trimmed with blanks
// dropped.
func StringList(v any) []string {
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(html.UnescapeString(s))
		if s != "" {
			out = append(out, s)
		}
	}
	switch t := v.(type) {
	case string:
		for _, part := range strings.Split(t, ",") {
			add(part)
		}
	case []any:
		for _, el := range t {
			if s, ok := el.(string); ok {
				add(s)
			}
		}
	}
	return out
}

// dedupe removes exact duplicates while preserving first-seen order.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
