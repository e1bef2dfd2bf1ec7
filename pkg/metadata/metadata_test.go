package metadata_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artscr/artscr/pkg/metadata"
)

func parse(t *testing.T, htmlStr string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	require.NoError(t, err)
	return doc
}

func TestHarvestTitleFromJSONLD(t *testing.T) {
	doc := parse(t, `<html><head><title>Site Name - A Great Article</title>
	<script type="application/ld+json">
	{"@context":"https://schema.org","@type":"NewsArticle","headline":"A Great Article","author":{"name":"Jane Doe"},"datePublished":"2024-01-15T10:00:00Z"}
	</script></head><body></body></html>`)

	m := metadata.Harvest(doc)
	assert.Equal(t, "Jane Doe", m.Byline)
	assert.Equal(t, "A Great Article", m.Title)
}

func TestHarvestMetaDescription(t *testing.T) {
	doc := parse(t, `<html><head><title>Example</title>
	<meta property="og:description" content="A longer and more descriptive summary of the article contents here.">
	<meta name="description" content="short">
	</head><body></body></html>`)

	m := metadata.Harvest(doc)
	assert.Contains(t, m.Excerpt, "longer and more descriptive")
}

func TestDetectBylineRemovesNode(t *testing.T) {
	doc := parse(t, `<html><body><div class="byline">By Jane Doe</div><p>content</p></body></html>`)
	text, removed := metadata.DetectByline(doc.Selection)
	assert.True(t, removed)
	assert.Equal(t, "By Jane Doe", text)
	assert.Equal(t, 0, doc.Find(".byline").Length())
}

func TestHarvestLanguageFromHTMLAttr(t *testing.T) {
	doc := parse(t, `<html lang="fr"><head><title>Bonjour</title></head><body></body></html>`)
	m := metadata.Harvest(doc)
	assert.Equal(t, "fr", m.Language)
}

func TestDirectionEmptyForEmptyTitle(t *testing.T) {
	doc := parse(t, `<html><head><title></title></head><body></body></html>`)
	m := metadata.Harvest(doc)
	assert.Equal(t, "", m.Direction)
}
