package prep

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// UnwrapNoscriptImages implements the pipeline's noscript-image unwrap step
// (Readability.js's _unwrapNoscriptImages), which must run before metadata
// harvest and candidate scoring: when a <noscript> wraps a single <img> and
// its preceding element is itself a lone placeholder <img> (the lazy-loading
// shim a page hides behind the noscript fallback), the placeholder is
// replaced by the noscript's image, carrying over any attributes the
// replacement doesn't already carry, so the real src/srcset is what both
// metadata harvest and the §4.4 lazy-image fix see.
func UnwrapNoscriptImages(root *selection) {
	type repair struct {
		noscript    *html.Node
		placeholder *html.Node
		inner       *html.Node
	}

	var repairs []repair
	root.Find("noscript").Each(func(_ int, ns *selection) {
		n := ns.Nodes[0]
		inner := soleImage(n)
		if inner == nil {
			return
		}
		prev := previousElement(n)
		if prev == nil {
			return
		}
		placeholder := soleImage(prev)
		if placeholder == nil {
			return
		}
		repairs = append(repairs, repair{noscript: n, placeholder: placeholder, inner: inner})
	})

	for _, r := range repairs {
		if r.placeholder.Parent == nil {
			continue
		}
		mergeMissingAttrs(r.inner, r.placeholder)
		if r.inner.Parent != nil {
			r.inner.Parent.RemoveChild(r.inner)
		}
		r.placeholder.Parent.InsertBefore(r.inner, r.placeholder)
		r.placeholder.Parent.RemoveChild(r.placeholder)
		if r.noscript.Parent != nil {
			r.noscript.Parent.RemoveChild(r.noscript)
		}
	}
}

// soleImage returns n itself when it is an <img>, or n's single element
// descendant when n has exactly one element descendant and that descendant
// is an <img>; otherwise nil. Mirrors Readability.js's lenient check, since
// the lone image can be wrapped in an <a> or sit directly inside <noscript>.
// A <noscript> whose content the parser kept as a single raw text node has
// that text parsed as a fragment first, and the search runs over the result.
func soleImage(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "img" {
		return n
	}
	if n.Type == html.ElementNode && n.Data == "noscript" && n.FirstChild != nil &&
		n.FirstChild == n.LastChild && n.FirstChild.Type == html.TextNode {
		nodes, err := html.ParseFragment(strings.NewReader(n.FirstChild.Data),
			&html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div})
		if err != nil {
			return nil
		}
		n = &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
		for _, c := range nodes {
			n.AppendChild(c)
		}
	}
	var found *html.Node
	count := 0
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				count++
				if c.Data == "img" {
					found = c
				}
				walk(c)
			}
		}
	}
	walk(n)
	if count == 1 && found != nil {
		return found
	}
	return nil
}

// previousElement returns n's nearest preceding sibling element, skipping
// whitespace-only text nodes; a non-blank text node in between breaks the
// adjacency and previousElement reports no match.
func previousElement(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
		if s.Type == html.TextNode && strings.TrimSpace(s.Data) != "" {
			return nil
		}
	}
	return nil
}

func mergeMissingAttrs(dst, src *html.Node) {
	have := make(map[string]bool, len(dst.Attr))
	for _, a := range dst.Attr {
		have[strings.ToLower(a.Key)] = true
	}
	for _, a := range src.Attr {
		if !have[strings.ToLower(a.Key)] {
			dst.Attr = append(dst.Attr, a)
		}
	}
}
