package retry_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artscr/artscr/pkg/retry"
)

func identityPrep(sel *goquery.Selection, _ bool) *goquery.Selection { return sel }

func TestRunSelectsLongestParagraphGroup(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
<html><body>
<div class="sidebar"><p>short link heavy text <a href="/x">a</a> <a href="/y">b</a></p></div>
<div id="content">
  <p>` + strings.Repeat("This is a long article paragraph with plenty of real words in it. ", 6) + `</p>
  <p>` + strings.Repeat("Another long paragraph continues the article with more words here. ", 6) + `</p>
</div>
</body></html>`))
	require.NoError(t, err)

	attempt, ok := retry.Run(doc.Find("body"), 50, 5, identityPrep)
	require.True(t, ok)
	assert.Greater(t, attempt.TextLength, 0)
}

func TestRunNoContentFails(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body><span>x</span></body></html>`))
	require.NoError(t, err)

	_, ok := retry.Run(doc.Find("body"), 500, 5, identityPrep)
	assert.False(t, ok)
}

func TestAllFlagsStartEnabled(t *testing.T) {
	f := retry.AllFlags()
	assert.True(t, f.StripUnlikelys)
	assert.True(t, f.WeightClasses)
	assert.True(t, f.CleanConditionally)
}
