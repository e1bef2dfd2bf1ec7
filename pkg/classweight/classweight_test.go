package classweight_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artscr/artscr/pkg/classweight"
)

func sel(t *testing.T, fragment string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return doc.Find("body").Children().First()
}

func TestWeightPositive(t *testing.T) {
	s := sel(t, `<div class="article-content">x</div>`)
	assert.InDelta(t, 0.1, classweight.Weight(s, 0.1), 1e-9)
}

func TestWeightNegative(t *testing.T) {
	// "sidebar-widget" is a single space-separated token matching two
	// negative names, but at most one negative increment applies per
	// attribute.
	s := sel(t, `<div class="sidebar-widget">x</div>`)
	assert.InDelta(t, -0.1, classweight.Weight(s, 0.1), 1e-9)
}

func TestWeightNeutral(t *testing.T) {
	s := sel(t, `<div class="foo-bar">x</div>`)
	assert.Equal(t, 0.0, classweight.Weight(s, 0.1))
}

func TestWeightScale25(t *testing.T) {
	s := sel(t, `<div id="comment-thread">x</div>`)
	assert.InDelta(t, -25.0, classweight.Weight(s, 25), 1e-9)
}

func TestIntWeight(t *testing.T) {
	s := sel(t, `<div class="hentry post">x</div>`)
	assert.Equal(t, 1, classweight.IntWeight(s, 0.6))
}
