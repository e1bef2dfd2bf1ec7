package postprocess_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artscr/artscr/pkg/docurl"
	"github.com/artscr/artscr/pkg/postprocess"
)

func doc(t *testing.T, fragment string) *goquery.Selection {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return d.Find("body")
}

func testDocURL(t *testing.T) docurl.DocumentURL {
	t.Helper()
	u, ok := docurl.New("https://example.com/articles/today/index.html")
	require.True(t, ok)
	return u
}

func TestAbsolutiseHref(t *testing.T) {
	body := doc(t, `<a href="/foo">link</a><img src="./pic.png">`)
	postprocess.Absolutise(body, testDocURL(t))
	href, _ := body.Find("a").Attr("href")
	src, _ := body.Find("img").Attr("src")
	assert.Equal(t, "https://example.com/foo", href)
	assert.Equal(t, "https://example.com/articles/today/pic.png", src)
}

func TestAbsolutiseSrcset(t *testing.T) {
	body := doc(t, `<img srcset="small.png 1x, /big.png 2x">`)
	postprocess.Absolutise(body, testDocURL(t))
	srcset, _ := body.Find("img").Attr("srcset")
	assert.Contains(t, srcset, "https://example.com/articles/today/small.png 1x")
	assert.Contains(t, srcset, "https://example.com/big.png 2x")
}

func TestJavascriptLinkUnwrapsTextOnly(t *testing.T) {
	body := doc(t, `<p><a href="javascript:void(0)">click me</a></p>`)
	postprocess.Absolutise(body, testDocURL(t))
	assert.Equal(t, 0, body.Find("a").Length())
	assert.Equal(t, "click me", strings.TrimSpace(body.Find("p").Text()))
}

func TestJavascriptLinkWithChildrenBecomesSpan(t *testing.T) {
	body := doc(t, `<a href="javascript:void(0)"><b>bold</b></a>`)
	postprocess.Absolutise(body, testDocURL(t))
	assert.Equal(t, 0, body.Find("a").Length())
	assert.Equal(t, 1, body.Find("span > b").Length())
}

func TestSimplifyRemovesEmptyDiv(t *testing.T) {
	body := doc(t, `<div><p>text</p></div><div>   </div>`)
	postprocess.SimplifyContainers(body)
	assert.Equal(t, 1, body.Find("div").Length())
}

func TestSimplifyCollapsesSingleChildDiv(t *testing.T) {
	body := doc(t, `<div><div><p>text</p></div></div>`)
	postprocess.SimplifyContainers(body)
	assert.Equal(t, 1, body.Find("div").Length())
	assert.Equal(t, 1, body.Find("p").Length())
}

func TestSimplifyKeepsReadabilityID(t *testing.T) {
	body := doc(t, `<div id="readability-content"><div><p>text</p></div></div>`)
	postprocess.SimplifyContainers(body)
	assert.Equal(t, 2, body.Find("div").Length())
}

func TestStripClassesKeepsPreserved(t *testing.T) {
	body := doc(t, `<p class="caption foo">x</p><p class="page">y</p><p class="other">z</p>`)
	postprocess.StripClasses(body, []string{"caption"})
	classes, _ := body.Find("p").Eq(0).Attr("class")
	assert.Equal(t, "caption", classes)
	classes2, _ := body.Find("p").Eq(1).Attr("class")
	assert.Equal(t, "page", classes2)
	_, ok := body.Find("p").Eq(2).Attr("class")
	assert.False(t, ok)
}
