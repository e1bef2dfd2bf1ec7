package metadata

import "golang.org/x/text/unicode/bidi"

// detectDirection classifies the title's text direction as "ltr", "rtl",
// "bidi" (mixed), or "" (no directional content), matching the teacher's
// title-only direction extractor but via x/text/bidi instead of a
// hand-rolled Unicode-block scan.
func detectDirection(title string) string {
	if title == "" {
		return ""
	}

	var p bidi.Paragraph
	if _, err := p.SetString(title); err != nil {
		return ""
	}
	dir, err := p.Direction()
	if err != nil {
		return ""
	}

	switch dir {
	case bidi.LeftToRight:
		return "ltr"
	case bidi.RightToLeft:
		return "rtl"
	case bidi.Mixed:
		return "bidi"
	default:
		return ""
	}
}
