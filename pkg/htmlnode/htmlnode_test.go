package htmlnode_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artscr/artscr/pkg/htmlnode"
)

func TestIsBlock(t *testing.T) {
	assert.True(t, htmlnode.IsBlock("DIV"))
	assert.True(t, htmlnode.IsBlock("section"))
	assert.False(t, htmlnode.IsBlock("span"))
	assert.False(t, htmlnode.IsBlock("a"))
}

func TestTagCategory(t *testing.T) {
	assert.True(t, htmlnode.TagCategory("script").Has(htmlnode.CategoryScript))
	assert.True(t, htmlnode.TagCategory("meta").Has(htmlnode.CategoryMetadata))
	assert.True(t, htmlnode.TagCategory("input").Has(htmlnode.CategoryForm))
	assert.False(t, htmlnode.TagCategory("div").Has(htmlnode.CategoryMetadata|htmlnode.CategoryScript))
}

func TestSetNodeTagPreservesAttrsAndChildren(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<div id="x" class="y"><p>hello</p></div>`))
	require.NoError(t, err)

	div := doc.Find("div").First()
	htmlnode.SetNodeTag(div, "section")

	sections := doc.Find("section")
	require.Equal(t, 1, sections.Length())
	id, _ := sections.Attr("id")
	assert.Equal(t, "x", id)
	assert.Equal(t, "hello", sections.Find("p").Text())
}

func TestClonePreservesStructure(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<div><p>a</p><p>b</p></div>`))
	require.NoError(t, err)

	div := doc.Find("div").First().Nodes[0]
	clone := htmlnode.Clone(div)

	assert.Nil(t, clone.Parent)
	count := 0
	for c := clone.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestAncestorsAndNestingLevel(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body><div><section><p>x</p></section></div></body></html>`))
	require.NoError(t, err)

	p := doc.Find("p").First()
	assert.Equal(t, 4, htmlnode.NestingLevel(p)) // section, div, body, html
}

func TestClassAndID(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<div class="share widget" id="foo"></div>`))
	require.NoError(t, err)
	div := doc.Find("div").First()
	assert.Equal(t, "share widget foo", htmlnode.ClassAndID(div))
}
