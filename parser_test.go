package artscr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artscr/artscr"
)

func words(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("word ")
	}
	return b.String()
}

func TestParseExtractsArticle(t *testing.T) {
	htmlStr := `<html><head><title>Example Site Headline</title>
<meta property="og:site_name" content="Example Site">
</head><body>
<article>
<p>` + words(150) + `</p>
<p>` + words(150) + `</p>
</article>
</body></html>`

	art, err := artscr.Parse(htmlStr, "https://example.com/article")
	require.NoError(t, err)
	assert.Equal(t, "Example Site", art.SiteName)
	assert.Contains(t, art.ContentHTML, "readability-page-1")
}

func TestParseReturnsArticleNotFound(t *testing.T) {
	htmlStr := `<html><body></body></html>`

	_, err := artscr.Parse(htmlStr, "", artscr.WithFallbackOnThinContent(false))
	require.Error(t, err)
	assert.True(t, errors.Is(err, artscr.ErrArticleNotFound))
}

func TestTryParseReportsOK(t *testing.T) {
	htmlStr := `<html><body><main><p>` + words(120) + `</p><p>` + words(120) + `</p></main></body></html>`

	art, ok := artscr.TryParse(htmlStr, "")
	require.True(t, ok)
	assert.NotNil(t, art)
}

func TestDefaultParserDelegatesToPackageFunctions(t *testing.T) {
	var p artscr.Parser = artscr.DefaultParser{}
	htmlStr := `<html><body><main><p>` + words(120) + `</p><p>` + words(120) + `</p></main></body></html>`

	art, ok := p.TryParse(htmlStr, "")
	require.True(t, ok)
	assert.NotEmpty(t, art.ContentHTML)
}

func TestFormatMarkdownIncludesTitleAndByline(t *testing.T) {
	htmlStr := `<html><head><title>A Long Headline About Things</title></head><body>
<article>
<p class="byline">By Jane Doe</p>
<p>` + words(150) + `</p>
<p>` + words(150) + `</p>
</article>
</body></html>`

	art, err := artscr.Parse(htmlStr, "")
	require.NoError(t, err)

	md := artscr.FormatMarkdown(art)
	assert.Contains(t, md, "# A Long Headline About Things")
	assert.Contains(t, md, "**Byline:** By Jane Doe")
}
