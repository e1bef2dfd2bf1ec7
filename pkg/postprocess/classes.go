package postprocess

import "strings"

// DefaultPreservedClasses is the built-in preserved-class set; callers'
// classesToPreserve is appended to it.
var DefaultPreservedClasses = []string{"page"}

// StripClasses removes every class token from content's elements except
// those named in preserve (plus DefaultPreservedClasses).
func StripClasses(root *selection, preserve []string) {
	keep := make(map[string]bool, len(DefaultPreservedClasses)+len(preserve))
	for _, c := range DefaultPreservedClasses {
		keep[c] = true
	}
	for _, c := range preserve {
		keep[c] = true
	}

	root.Find("*").Each(func(_ int, sel *selection) {
		v, ok := sel.Attr("class")
		if !ok {
			return
		}
		var kept []string
		for _, tok := range strings.Fields(v) {
			if keep[tok] {
				kept = append(kept, tok)
			}
		}
		if len(kept) == 0 {
			sel.RemoveAttr("class")
			return
		}
		sel.SetAttr("class", strings.Join(kept, " "))
	})
}
