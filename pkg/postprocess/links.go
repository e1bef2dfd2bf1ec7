package postprocess

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/artscr/artscr/pkg/docurl"
	"github.com/artscr/artscr/pkg/htmlnode"
)

var absolutiseAttrs = []string{"href", "src", "poster"}

// srcsetCandidateRE splits a srcset list into "url descriptor?" candidates,
// ported from the teacher's absolutizeSet regex.
var srcsetCandidateRE = regexp.MustCompile(`(?:\s*)(\S+(?:\s*[\d.]+[wx])?)(?:\s*,\s*)?`)

// Absolutise rewrites javascript: links to a bare text node or a <span>
// wrapper, then resolves the remaining href/src/poster/srcset values against
// doc per §4.7.
func Absolutise(root *selection, doc docurl.DocumentURL) {
	replaceJavascriptLinks(root)

	for _, attr := range absolutiseAttrs {
		root.Find("[" + attr + "]").Each(func(_ int, sel *selection) {
			v, ok := htmlnode.AttrFold(sel, attr)
			if !ok || v == "" {
				return
			}
			if abs, ok := doc.TryMakeAbsolute(v); ok {
				sel.SetAttr(attr, abs)
			}
		})
	}

	root.Find("[srcset]").Each(func(_ int, sel *selection) {
		v, ok := htmlnode.AttrFold(sel, "srcset")
		if !ok || v == "" {
			return
		}
		sel.SetAttr("srcset", absolutiseSrcset(v, doc))
	})
}

func absolutiseSrcset(srcset string, doc docurl.DocumentURL) string {
	candidates := srcsetCandidateRE.FindAllString(srcset, -1)
	seen := make(map[string]bool, len(candidates))
	var out []string
	for _, c := range candidates {
		trimmed := strings.TrimSuffix(strings.TrimSpace(c), ",")
		parts := strings.Fields(trimmed)
		if len(parts) == 0 {
			continue
		}
		if abs, ok := doc.TryMakeAbsolute(parts[0]); ok {
			parts[0] = abs
		}
		joined := strings.Join(parts, " ")
		if !seen[joined] {
			seen[joined] = true
			out = append(out, joined)
		}
	}
	return strings.Join(out, ", ")
}

// replaceJavascriptLinks replaces <a href="javascript:...">'s href behavior:
// an anchor with a single text-node child is unwrapped to that text node;
// otherwise the anchor is retagged to a <span> so its children survive.
func replaceJavascriptLinks(root *selection) {
	var toReplace []*html.Node
	root.Find("a").Each(func(_ int, sel *selection) {
		href, ok := htmlnode.AttrFold(sel, "href")
		if !ok || !strings.HasPrefix(strings.TrimSpace(href), "javascript:") {
			return
		}
		toReplace = append(toReplace, sel.Nodes[0])
	})

	for _, n := range toReplace {
		if onlyTextChild(n) {
			unwrapToText(n)
			continue
		}
		n.Data = "span"
		n.DataAtom = 0
		removeAttr(n, "href")
	}
}

func onlyTextChild(n *html.Node) bool {
	return n.FirstChild != nil && n.FirstChild == n.LastChild && n.FirstChild.Type == html.TextNode
}

func unwrapToText(n *html.Node) {
	if n.Parent == nil {
		return
	}
	text := n.FirstChild
	n.RemoveChild(text)
	n.Parent.InsertBefore(text, n)
	n.Parent.RemoveChild(n)
}

func removeAttr(n *html.Node, name string) {
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}
