package scoring_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artscr/artscr/pkg/scoring"
)

func body(t *testing.T, fragment string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return doc.Find("body")
}

func words(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "word%d ", i)
	}
	return b.String()
}

func TestScoreEligibleArticleBeatsSidebars(t *testing.T) {
	html := `<body>
		<article><p>` + words(500) + `</p><p>` + words(500) + `</p></article>
		<div class="sidebar"><p>` + words(40) + `</p><p>` + words(40) + `</p></div>
		<div class="widget"><p>` + words(40) + `</p><p>` + words(40) + `</p></div>
	</body>`
	result := scoring.Score(body(t, html), 5)
	require.NotEmpty(t, result.Top)

	best := result.Top[len(result.Top)-1]
	assert.Equal(t, "article", goquery.NodeName(best.Root))
}

func TestScoreIneligibleSingleChild(t *testing.T) {
	html := `<body><div><p>` + words(10) + `</p></div></body>`
	result := scoring.Score(body(t, html), 5)
	for _, c := range result.All {
		assert.NotEqual(t, "div", goquery.NodeName(c.Root))
	}
}

func TestResolveAncestorNoCandidatesFails(t *testing.T) {
	result := scoring.Score(body(t, `<body><span>x</span></body>`), 5)
	_, ok := scoring.ResolveAncestor(result, 5)
	assert.False(t, ok)
}

func TestResolveAncestorDominantOutlier(t *testing.T) {
	html := `<body>
		<article><p>` + words(1000) + `</p><p>` + words(1000) + `</p></article>
		<div class="sidebar"><p>` + words(40) + `</p><p>` + words(40) + `</p></div>
		<div class="widget"><p>` + words(40) + `</p><p>` + words(40) + `</p></div>
	</body>`
	result := scoring.Score(body(t, html), 5)
	pick, ok := scoring.ResolveAncestor(result, 5)
	require.True(t, ok)
	assert.Equal(t, "article", goquery.NodeName(pick.Root))
}
