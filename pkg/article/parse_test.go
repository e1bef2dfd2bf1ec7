package article_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artscr/artscr/pkg/article"
)

func parse(t *testing.T, htmlStr string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	require.NoError(t, err)
	return doc
}

func words(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("word ")
	}
	return b.String()
}

func TestTryParseScatteredParagraphsElectsMain(t *testing.T) {
	doc := parse(t, `<html><head><title>A Long Article Title About Things</title></head><body>
<main>
<p>`+words(80)+`</p>
<p>`+words(80)+`</p>
<p>`+words(80)+`</p>
</main>
<div class="sidebar"><p>short <a href="/x">link</a> <a href="/y">heavy</a> text</p></div>
</body></html>`)

	art, ok := article.TryParse(doc, "https://example.com/article")
	require.True(t, ok)
	assert.Contains(t, art.ContentHTML, "readability-page-1")
	assert.Contains(t, art.ContentHTML, `class="page"`)
	assert.Equal(t, 1, art.Content.Find("main").Length())
	assert.Greater(t, art.Length, 0)
}

func TestTryParseWrapsElectedTagWhenNotContainer(t *testing.T) {
	doc := parse(t, `<html><body>
<span id="only">
<p>`+words(120)+`</p>
<p>`+words(120)+`</p>
</span>
</body></html>`)

	art, ok := article.TryParse(doc, "")
	if !ok {
		t.Skip("no candidate qualified for this fragment")
	}
	assert.NotContains(t, art.ContentHTML, "<span")
}

func TestTryParseNoContentFails(t *testing.T) {
	doc := parse(t, `<html><body><p>too short</p></body></html>`)

	art, ok := article.TryParse(doc, "", article.WithCharThreshold(10000), article.WithFallbackOnThinContent(false))
	if ok {
		assert.Less(t, art.Length, 10000)
	}
}

func TestParseReturnsArticleNotFoundError(t *testing.T) {
	doc := parse(t, `<html><body></body></html>`)

	_, err := article.Parse(doc, "", article.WithFallbackOnThinContent(false))
	require.Error(t, err)
	assert.ErrorIs(t, err, article.ErrArticleNotFound)
}

func TestTryParseHarvestsMetadata(t *testing.T) {
	doc := parse(t, `<html><head>
<title>Example Site Headline</title>
<meta property="og:site_name" content="Example Site">
</head><body>
<article>
<p>`+words(150)+`</p>
<p>`+words(150)+`</p>
</article>
</body></html>`)

	art, ok := article.TryParse(doc, "")
	require.True(t, ok)
	assert.Equal(t, "Example Site", art.SiteName)
}
