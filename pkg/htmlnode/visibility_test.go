package htmlnode_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artscr/artscr/pkg/htmlnode"
)

func mustDoc(t *testing.T, fragment string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return doc.Find("body").Children().First()
}

func TestProbablyHiddenStyle(t *testing.T) {
	sel := mustDoc(t, `<div style="display:none"><p>x</p></div>`)
	assert.True(t, htmlnode.ProbablyHidden(sel))
}

func TestProbablyHiddenAttr(t *testing.T) {
	assert.True(t, htmlnode.ProbablyHidden(mustDoc(t, `<div hidden><p>x</p></div>`)))
	assert.True(t, htmlnode.ProbablyHidden(mustDoc(t, `<div aria-hidden="true"><p>x</p></div>`)))
	assert.True(t, htmlnode.ProbablyHidden(mustDoc(t, `<div class="is-hidden-box"><p>x</p></div>`)))
	assert.True(t, htmlnode.ProbablyHidden(mustDoc(t, `<input type="hidden">`)))
}

func TestProbablyHiddenFalseByDefault(t *testing.T) {
	assert.False(t, htmlnode.ProbablyHidden(mustDoc(t, `<div class="article"><p>x</p></div>`)))
}
