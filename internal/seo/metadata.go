// Package seo builds the document head metadata for search and social sharing.
//
// Metadata is computed once at startup from the canonical URL and brand copy.
// It renders itself as a templ component, so the page layout only sees an
// opaque head component and nothing else depends on it.
package seo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/guildandgrove/website/internal/content"
)

const (
	socialDescription  = "We build self-sustaining recruitment capability: operating model, training, and governance."
	twitterDescription = "Design the system. Train the people. Govern the outcomes."
	jsonLDScriptID     = "gg-jsonld"
)

// Property is a single meta tag key/content pair.
type Property struct {
	Key     string
	Content string
}

type Metadata struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	Viewport    string
	OpenGraph   []Property // rendered as <meta property=...>
	Twitter     []Property // rendered as <meta name=...>
	SitemapURL  string
	JSONLD      json.RawMessage
}

// Build assembles the page metadata. canonical must end in "/".
func Build(canonical string, brand content.Brand) (Metadata, error) {
	title := fmt.Sprintf("%s | %s", brand.Name, brand.Tagline)

	ld, err := json.Marshal(jsonLD(canonical, brand))
	if err != nil {
		return Metadata{}, fmt.Errorf("encode json-ld: %w", err)
	}

	return Metadata{
		Title:       title,
		Description: fmt.Sprintf("%s is a people-strategy advisory that designs, builds, and upskills in-house recruitment so companies hire better—without agencies.", brand.Name),
		Canonical:   canonical,
		Robots:      "index,follow",
		Viewport:    "width=device-width, initial-scale=1",
		OpenGraph: []Property{
			{Key: "og:title", Content: title},
			{Key: "og:description", Content: socialDescription},
			{Key: "og:type", Content: "website"},
			{Key: "og:url", Content: canonical},
		},
		Twitter: []Property{
			{Key: "twitter:card", Content: "summary_large_image"},
			{Key: "twitter:title", Content: title},
			{Key: "twitter:description", Content: twitterDescription},
		},
		SitemapURL: canonical + "sitemap.xml",
		JSONLD:     ld,
	}, nil
}

func jsonLD(canonical string, brand content.Brand) map[string]any {
	return map[string]any{
		"@context": "https://schema.org",
		"@graph": []any{
			map[string]any{
				"@type": "Organization",
				"name":  brand.Name,
				"url":   canonical,
				"email": brand.Email,
				"address": map[string]any{
					"@type":           "PostalAddress",
					"addressLocality": brand.City,
					"addressCountry":  brand.Country,
				},
				"sameAs": []string{},
				"slogan": brand.Tagline,
			},
			map[string]any{
				"@type": "WebSite",
				"name":  brand.Name,
				"url":   canonical,
				"potentialAction": map[string]any{
					"@type":       "SearchAction",
					"target":      canonical + "?q={search_term_string}",
					"query-input": "required name=search_term_string",
				},
			},
		},
	}
}

// Render writes the head tags. Metadata satisfies templ.Component.
func (m Metadata) Render(ctx context.Context, w io.Writer) error {
	return m.Head().Render(ctx, w)
}

var _ templ.Component = Metadata{}
