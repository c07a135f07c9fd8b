// Package schemaorg turns a fetched recipe page into a normalized Recipe,
// preferring embedded JSON-LD markup and falling back to Open Graph meta
// tags when a page carries none.
package schemaorg

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"github.com/ladlehq/ladle/internal/jsonld"
	"github.com/ladlehq/ladle/internal/recipe"
)

// Fetcher retrieves raw markup for a URL. The default implementation lives
// in internal/fetch; tests inject stubs.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Parser extracts recipes from web pages. The zero value is not usable; a
// Fetcher must be set.
type Parser struct {
	Fetcher Fetcher
}

// Parse fetches the page at url and maps it into a Recipe. Transport
// failures are returned wrapped; a page with neither JSON-LD recipe markup
// nor an og:title yields recipe.ErrNoRecipeData.
func (p *Parser) Parse(ctx context.Context, url string) (recipe.Recipe, error) {
	r, _, err := p.parse(ctx, url)
	return r, err
}

// ParseWithMedia is Parse plus the full list of candidate image URLs found
// on the page, in first-seen order with duplicates removed, so a caller
// can let the user pick one before downloading anything.
func (p *Parser) ParseWithMedia(ctx context.Context, url string) (recipe.Recipe, []string, error) {
	return p.parse(ctx, url)
}

func (p *Parser) parse(ctx context.Context, url string) (recipe.Recipe, []string, error) {
	raw, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return recipe.Recipe{}, nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return recipe.Recipe{}, nil, fmt.Errorf("parse html: %w", err)
	}

	if block := jsonld.ExtractRecipe(doc); block != nil {
		if r, images, ok := fromBlock(block, url); ok {
			if og := metaContent(doc, "og:image"); og != "" {
				images = append(images, og)
			}
			return r, dedupe(images), nil
		}
		log.Debug().Str("url", url).Msg("json-ld block present but unusable, trying open graph")
	}

	if r, ok := fromOpenGraph(doc, url); ok {
		var images []string
		if r.PhotoURL != "" {
			images = append(images, r.PhotoURL)
		}
		return r, images, nil
	}

	return recipe.Recipe{}, nil, recipe.ErrNoRecipeData
}

// fromBlock maps a JSON-LD recipe object onto a Recipe. A block without a
// usable name is rejected so the caller can fall through to Open Graph.
func fromBlock(block map[string]any, url string) (recipe.Recipe, []string, bool) {
	name, _ := block["name"].(string)
	name = strings.TrimSpace(html.UnescapeString(name))
	if name == "" {
		return recipe.Recipe{}, nil, false
	}

	r := recipe.Recipe{
		Title:    name,
		Servings: recipe.DefaultServings,
		Source:   recipe.SourceWeb,
		SourceID: url,
	}

	if raw, ok := block["recipeIngredient"].([]any); ok {
		for _, el := range raw {
			if s, ok := el.(string); ok {
				s = strings.TrimSpace(html.UnescapeString(s))
				if s != "" {
					r.Ingredients = append(r.Ingredients, s)
				}
			}
		}
	}

	r.Instructions = Instructions(block["recipeInstructions"])

	if n, ok := Servings(block["recipeYield"]); ok {
		r.Servings = n
	}
	r.PrepMinutes = DurationMinutes(block["prepTime"])
	r.CookMinutes = DurationMinutes(block["cookTime"])
	r.PhotoURL = ImageURL(block["image"])

	var tags []string
	tags = append(tags, StringList(block["recipeCategory"])...)
	tags = append(tags, StringList(block["recipeCuisine"])...)
	tags = append(tags, StringList(block["keywords"])...)
	r.Tags = dedupe(tags)
	if len(r.Tags) == 0 {
		r.Tags = nil
	}

	if desc, ok := block["description"].(string); ok {
		r.Notes = html.UnescapeString(desc)
	}

	return r, ImageURLs(block["image"]), true
}

// fromOpenGraph builds a minimal recipe from og:* meta tags. og:title is
// required; everything else is optional.
func fromOpenGraph(doc *goquery.Document, url string) (recipe.Recipe, bool) {
	title := metaContent(doc, "og:title")
	if title == "" {
		return recipe.Recipe{}, false
	}
	log.Debug().Str("url", url).Msg("using open graph fallback")
	return recipe.Recipe{
		Title:    title,
		Servings: recipe.DefaultServings,
		Notes:    metaContent(doc, "og:description"),
		PhotoURL: metaContent(doc, "og:image"),
		Source:   recipe.SourceWeb,
		SourceID: url,
	}, true
}

func metaContent(doc *goquery.Document, property string) string {
	if v, ok := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	if v, ok := doc.Find(fmt.Sprintf(`meta[name=%q]`, property)).Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
