package htmlnode

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/artscr/artscr/pkg/cssinline"
)

// ProbablyHidden implements the visibility predicate of §4.6: a
// `display:none`/`visibility:hidden` inline style, a `hidden` attribute, an
// `aria-hidden="true"` attribute, a class containing "hidden", or
// `type="hidden"`. Answers defensively — false unless proven hidden — to
// minimise false removals in the candidate scorer and retry pass.
func ProbablyHidden(sel *goquery.Selection) bool {
	if style, ok := AttrFold(sel, "style"); ok && style != "" {
		decls := cssinline.Parse(style)
		if v, ok := cssinline.Value(decls, "display"); ok && strings.EqualFold(strings.TrimSpace(v), "none") {
			return true
		}
		if v, ok := cssinline.Value(decls, "visibility"); ok && strings.EqualFold(strings.TrimSpace(v), "hidden") {
			return true
		}
	}
	if _, ok := AttrFold(sel, "hidden"); ok {
		return true
	}
	if v, ok := AttrFold(sel, "aria-hidden"); ok && strings.EqualFold(v, "true") {
		return true
	}
	if v, ok := AttrFold(sel, "class"); ok && strings.Contains(strings.ToLower(v), "hidden") {
		return true
	}
	if v, ok := AttrFold(sel, "type"); ok && strings.EqualFold(v, "hidden") {
		return true
	}
	return false
}
