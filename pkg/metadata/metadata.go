// Package metadata implements §4.6's support extractors: byline, title,
// JSON-LD, and meta-tag harvest, merged into a single Metadata record.
package metadata

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type selection = goquery.Selection
type document = goquery.Document

// Metadata is the harvested article record minus content/length, which the
// top-level orchestrator fills in from the selected candidate.
type Metadata struct {
	Title     string
	Byline    string
	Excerpt   string
	SiteName  string
	Language  string
	Direction string
	Published *time.Time
}

// Harvest runs the full §4.6 metadata pipeline over doc.
func Harvest(doc *document) Metadata {
	htmlTitle := strings.TrimSpace(doc.Find("title").First().Text())

	jsonLD := harvestJSONLD(doc, htmlTitle)
	meta := harvestMeta(doc)

	byline, _ := DetectByline(doc.Selection)
	if byline == "" {
		byline = meta.author
	}
	if jsonLD.author != "" {
		byline = jsonLD.author
	}

	title := resolveTitle(htmlTitle, doc)
	if jsonLD.title != "" {
		title = jsonLD.title
	} else if title == "" {
		title = meta.title
	}

	excerpt := jsonLD.description
	if excerpt == "" {
		excerpt = meta.description
	}

	siteName := jsonLD.siteName
	if siteName == "" {
		siteName = meta.siteName
	}

	published := jsonLD.published
	if published == nil {
		published = parsePublished(meta.published)
	}

	return Metadata{
		Title:     title,
		Byline:    byline,
		Excerpt:   excerpt,
		SiteName:  siteName,
		Language:  detectLanguage(doc),
		Direction: detectDirection(title),
		Published: published,
	}
}
