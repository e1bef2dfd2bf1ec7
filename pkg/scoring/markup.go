package scoring

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/artscr/artscr/pkg/htmlnode"
)

// isNonContentTag implements §4.1's recursive non-content classification: a
// tag is non-content when it does not permit phrasing content, or its
// category is metadata/script/form, or — when it has element children —
// every one of those children is itself non-content.
func isNonContentTag(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if !htmlnode.PermitsPhrasing(n.Data) {
		return true
	}
	cat := htmlnode.TagCategory(n.Data)
	if cat.Has(htmlnode.CategoryMetadata | htmlnode.CategoryScript | htmlnode.CategoryForm) {
		return true
	}

	hasElementChild := false
	allChildrenNonContent := true
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		hasElementChild = true
		if !isNonContentTag(c) {
			allChildrenNonContent = false
		}
	}
	return hasElementChild && allChildrenNonContent
}

// markupCount counts r's descendant elements classified non-content, plus 1
// if r itself is non-content.
func markupCount(n *html.Node) int {
	count := 0
	if isNonContentTag(n) {
		count++
	}
	forEachDescendantElement(n, func(el *html.Node) {
		if isNonContentTag(el) {
			count++
		}
	})
	return count
}

func forEachDescendantElement(n *html.Node, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			fn(c)
			forEachDescendantElement(c, fn)
		}
	}
}

// directText concatenates r's immediate text-node children only.
func directText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// descendantText concatenates all of r's descendant text, skipping any text
// under a metadata or script element.
func descendantText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node, skip bool)
	walk = func(n *html.Node, skip bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				if !skip {
					b.WriteString(c.Data)
				}
			case html.ElementNode:
				childSkip := skip || htmlnode.TagCategory(c.Data).Has(htmlnode.CategoryMetadata|htmlnode.CategoryScript)
				walk(c, childSkip)
			}
		}
	}
	walk(n, false)
	return b.String()
}
