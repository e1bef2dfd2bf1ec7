package retry

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/artscr/artscr/pkg/htmlnode"
)

var removableEmptyTags = map[string]bool{
	"div": true, "section": true, "header": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// stripUnwanted implements §4.3 step 1: removes hidden elements, aria-modal
// dialogs, bylines, and (when stripUnlikelys is set) unlikely-candidate
// elements, then removes empty div/section/header/heading elements.
func stripUnwanted(root *selection, stripUnlikelys bool) {
	var toRemove []*html.Node
	var walk func(sel *selection)
	walk = func(sel *selection) {
		for _, child := range htmlnode.ElementChildren(sel) {
			walk(child)

			if shouldStrip(child, stripUnlikelys) {
				toRemove = append(toRemove, child.Nodes[0])
			}
		}
	}
	walk(root)

	for _, n := range toRemove {
		detach(n)
	}

	removeEmptyElements(root)
}

func shouldStrip(sel *selection, stripUnlikelys bool) bool {
	if htmlnode.ProbablyHidden(sel) {
		return true
	}
	if ariaModal, ok := htmlnode.AttrFold(sel, "aria-modal"); ok && strings.EqualFold(ariaModal, "true") {
		if role, ok := htmlnode.AttrFold(sel, "role"); ok && strings.EqualFold(role, "dialog") {
			return true
		}
	}
	if isByline(sel) {
		return true
	}
	if stripUnlikelys {
		tag := htmlnode.TagName(sel)
		if tag == "body" || tag == "a" {
			return false
		}
		if insideTableOrCode(sel) {
			return false
		}
		if isUnlikelyCandidate(sel) {
			return true
		}
	}
	return false
}

func insideTableOrCode(sel *selection) bool {
	for _, anc := range htmlnode.Ancestors(sel) {
		tag := htmlnode.TagName(anc)
		if tag == "table" || tag == "code" {
			return true
		}
	}
	return false
}

func removeEmptyElements(root *selection) {
	var toRemove []*html.Node
	var walk func(sel *selection)
	walk = func(sel *selection) {
		for _, child := range htmlnode.ElementChildren(sel) {
			walk(child)
			tag := htmlnode.TagName(child)
			if removableEmptyTags[tag] && strings.TrimSpace(child.Text()) == "" && !hasMediaChild(child) {
				toRemove = append(toRemove, child.Nodes[0])
			}
		}
	}
	walk(root)
	for _, n := range toRemove {
		detach(n)
	}
}

func hasMediaChild(sel *selection) bool {
	return sel.Find("img, picture, video, iframe, embed, object").Length() > 0
}

func detach(n *html.Node) {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}
