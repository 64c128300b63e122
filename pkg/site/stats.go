package site

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageStats summarizes the structure of rendered HTML.
type PageStats struct {
	Headings      int `json:"headings"`
	Paragraphs    int `json:"paragraphs"`
	CodeBlocks    int `json:"code_blocks"`
	Links         int `json:"links"`
	ExternalLinks int `json:"external_links"`
	Images        int `json:"images"`
	MissingAlt    int `json:"images_missing_alt"`
	Words         int `json:"words"`
}

// Analyze parses html and counts its structural elements. It works on the
// output of either engine.
func Analyze(html string) (PageStats, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return PageStats{}, fmt.Errorf("parse html: %w", err)
	}

	stats := PageStats{
		Headings:   doc.Find("h1, h2, h3, h4, h5, h6").Length(),
		Paragraphs: doc.Find("p").Length(),
		CodeBlocks: doc.Find("pre").Length(),
		Images:     doc.Find("img").Length(),
	}

	// Count per text node so adjacent elements do not merge words.
	doc.Find("*").Contents().Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "#text" {
			stats.Words += len(strings.Fields(sel.Text()))
		}
	})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		stats.Links++
		href, _ := sel.Attr("href")
		if isExternal(href) {
			stats.ExternalLinks++
		}
	})

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		if alt, ok := sel.Attr("alt"); !ok || strings.TrimSpace(alt) == "" {
			stats.MissingAlt++
		}
	})

	return stats, nil
}

func isExternal(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
