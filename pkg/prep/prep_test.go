package prep_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artscr/artscr/pkg/prep"
)

func doc(t *testing.T, fragment string) *goquery.Selection {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return d.Find("body")
}

func TestStripPresentationalAttrs(t *testing.T) {
	body := doc(t, `<div align="center" style="color:red"><p>x</p></div>`)
	prep.Clean(body, false)
	div := body.Find("div")
	require.Equal(t, 1, div.Length())
	_, hasAlign := div.Attr("align")
	_, hasStyle := div.Attr("style")
	assert.False(t, hasAlign)
	assert.False(t, hasStyle)
}

func TestMarkDataTableBySummary(t *testing.T) {
	body := doc(t, `<table summary="quarterly figures"><tbody><tr><td>1</td><td>2</td></tr></tbody></table>`)
	prep.Clean(body, true)
	v, _ := body.Find("table").Attr("_readabilityDataTable")
	assert.Equal(t, "true", v)
}

func TestMarkDataTablePresentationRole(t *testing.T) {
	body := doc(t, `<table role="presentation"><tbody><tr><td>1</td><td>2</td></tr></tbody></table>`)
	prep.Clean(body, false)
	v, _ := body.Find("table").Attr("_readabilityDataTable")
	assert.Equal(t, "false", v)
}

func TestCollapseSingleCellTable(t *testing.T) {
	body := doc(t, `<table><tbody><tr><td><p>hello</p></td></tr></tbody></table>`)
	prep.Clean(body, false)
	assert.Equal(t, 0, body.Find("table").Length())
	assert.Equal(t, "hello", body.Find("p").Text())
}

func TestReplaceH1WithH2(t *testing.T) {
	body := doc(t, `<h1>Title</h1><p>` + strings.Repeat("word ", 10) + `</p>`)
	prep.Clean(body, true)
	assert.Equal(t, 0, body.Find("h1").Length())
	assert.Equal(t, 1, body.Find("h2").Length())
}

func TestRemoveEmptyParagraph(t *testing.T) {
	body := doc(t, `<p></p><p>real text here</p>`)
	prep.Clean(body, true)
	assert.Equal(t, 1, body.Find("p").Length())
}
