package metadata

import (
	"strings"

	"github.com/artscr/artscr/pkg/htmlnode"
)

var bylineNames = []string{"byline", "author", "dateline", "writtenby", "p-author"}

// DetectByline finds the first tag matching §4.6's byline predicate (rel or
// itemprop "author", or class/id containing a byline name, with text length
// in (0, 100)), removes it from the document, and returns its text.
func DetectByline(root *selection) (text string, removed bool) {
	var found *selection
	root.Find("*").EachWithBreak(func(_ int, sel *selection) bool {
		if found != nil {
			return false
		}
		if isBylineCandidate(sel) {
			found = sel
			return false
		}
		return true
	})
	if found == nil {
		return "", false
	}

	text = strings.TrimSpace(found.Text())
	n := found.Nodes[0]
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	return text, true
}

func isBylineCandidate(sel *selection) bool {
	if v, ok := htmlnode.AttrFold(sel, "rel"); ok && v == "author" {
		return textLenOK(sel)
	}
	if v, ok := htmlnode.AttrFold(sel, "itemprop"); ok && v == "author" {
		return textLenOK(sel)
	}
	classAndID := strings.ToLower(htmlnode.ClassAndID(sel))
	for _, name := range bylineNames {
		if strings.Contains(classAndID, name) {
			return textLenOK(sel)
		}
	}
	return false
}

func textLenOK(sel *selection) bool {
	n := len([]rune(strings.TrimSpace(sel.Text())))
	return n > 0 && n < 100
}
