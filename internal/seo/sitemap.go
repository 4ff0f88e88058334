package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap returns the sitemap document listing the landing page.
func (m Metadata) Sitemap(lastMod time.Time) ([]byte, error) {
	set := urlSet{
		XMLNS: sitemapNS,
		URLs: []sitemapURL{{
			Loc:        m.Canonical,
			LastMod:    lastMod.UTC().Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "1.0",
		}},
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// RobotsTxt returns a robots.txt allowing all crawlers and pointing at the sitemap.
func (m Metadata) RobotsTxt() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	fmt.Fprintf(&b, "Sitemap: %s\n", m.SitemapURL)
	return b.String()
}
