package prep

import "github.com/artscr/artscr/pkg/htmlnode"

var presentationalAttrs = []string{
	"align", "background", "bgcolor", "border", "cellpadding", "cellspacing",
	"frame", "hspace", "rules", "style", "valign", "vspace",
}

var sizeAttrTags = map[string]bool{"table": true, "th": true, "td": true, "hr": true, "pre": true}

// stripPresentationalAttrs removes the fixed presentational attribute list
// from every element except <svg>, plus width/height on the table-ish tags.
func stripPresentationalAttrs(root *selection) {
	var walk func(sel *selection)
	walk = func(sel *selection) {
		tag := htmlnode.TagName(sel)
		if tag != "svg" {
			for _, attr := range presentationalAttrs {
				sel.RemoveAttr(attr)
			}
			if sizeAttrTags[tag] {
				sel.RemoveAttr("width")
				sel.RemoveAttr("height")
			}
		}
		for _, child := range htmlnode.ElementChildren(sel) {
			walk(child)
		}
	}
	walk(root)
}
