package postprocess

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/artscr/artscr/pkg/htmlnode"
)

func wrapNode(n *html.Node) *selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// SimplifyContainers removes empty <div>/<section> elements (skipping any
// carrying a "readability*" id) and collapses a one-child div>div or
// section>section pair by promoting the child into the parent's position,
// repeating until a pass makes no further change.
func SimplifyContainers(root *selection) {
	for {
		removed := removeEmptyContainers(root)
		collapsed := collapseSingleChildContainers(root)
		if !removed && !collapsed {
			return
		}
	}
}

func removeEmptyContainers(root *selection) bool {
	var toRemove []*html.Node
	root.Find("div, section").Each(func(_ int, sel *selection) {
		if hasReadabilityID(sel) {
			return
		}
		if strings.TrimSpace(sel.Text()) != "" {
			return
		}
		if sel.Find("img, picture, video, audio, iframe, object, embed, svg").Length() > 0 {
			return
		}
		toRemove = append(toRemove, sel.Nodes[0])
	})
	for _, n := range toRemove {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
	return len(toRemove) > 0
}

func collapseSingleChildContainers(root *selection) bool {
	var pairs [][2]*html.Node
	root.Find("div, section").Each(func(_ int, sel *selection) {
		parent := sel.Nodes[0]
		if hasReadabilityID(sel) {
			return
		}
		child := onlyElementChild(parent)
		if child == nil || child.Data != parent.Data {
			return
		}
		if hasReadabilityID(wrapNode(child)) {
			return
		}
		pairs = append(pairs, [2]*html.Node{parent, child})
	})

	for _, pair := range pairs {
		parent, child := pair[0], pair[1]
		if parent.Parent == nil {
			continue
		}
		parent.RemoveChild(child)
		parent.Parent.InsertBefore(child, parent)
		parent.Parent.RemoveChild(parent)
	}
	return len(pairs) > 0
}

func hasReadabilityID(sel *selection) bool {
	v, ok := htmlnode.AttrFold(sel, "id")
	return ok && strings.HasPrefix(v, "readability")
}

func onlyElementChild(n *html.Node) *html.Node {
	var found *html.Node
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return nil
		}
		if c.Type == html.ElementNode {
			count++
			found = c
		}
	}
	if count == 1 {
		return found
	}
	return nil
}
