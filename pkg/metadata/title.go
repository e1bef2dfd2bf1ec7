package metadata

import (
	"regexp"
	"strings"
)

var hierarchicalSeparatorRE = regexp.MustCompile(`\s[|\-\\/>»]\s`)
var hierarchicalStripRE = regexp.MustCompile(`[|\-\\/>»]+`)

// resolveTitle implements §4.6's title heuristic: hierarchical-separator
// splitting, falling back to colon-splitting, falling back to a sole <h1>
// when the title length is out of range, with a final ≤4-word sanity check.
func resolveTitle(htmlTitle string, doc *document) string {
	origTitle := htmlTitle
	curTitle := htmlTitle
	hadHierarchical := false

	if loc := hierarchicalSeparatorRE.FindStringIndex(curTitle); loc != nil {
		hadHierarchical = true
		left := strings.TrimSpace(curTitle[:loc[0]])
		right := strings.TrimSpace(curTitle[loc[1]:])

		leftWords, rightWords := wordCount(left), wordCount(right)
		var kept string
		if leftWords > rightWords {
			kept = left
		} else {
			kept = right
		}

		if leftWords == rightWords || wordCount(kept) <= 3 {
			curTitle = origTitle
		} else {
			curTitle = kept
		}
	} else if idx := strings.Index(curTitle, ":"); idx >= 0 {
		firstPre, firstPost := strings.TrimSpace(curTitle[:idx]), strings.TrimSpace(curTitle[idx+1:])

		pre, post := firstPre, firstPost
		if lastIdx := strings.LastIndex(curTitle, ":"); lastIdx != idx {
			lastPre, lastPost := strings.TrimSpace(curTitle[:lastIdx]), strings.TrimSpace(curTitle[lastIdx+1:])
			if wordCount(lastPost) > 3 {
				pre, post = lastPre, lastPost
			}
		}
		// if the chosen split's post-colon half is too short, fall back to
		// the first colon instead.
		if wordCount(post) <= 3 {
			pre, post = firstPre, firstPost
		}

		if wordCount(pre) > 5 {
			curTitle = origTitle
		} else {
			curTitle = post
		}
	} else if len(origTitle) < 15 || len(origTitle) > 150 {
		h1s := doc.Find("h1")
		if h1s.Length() == 1 {
			curTitle = strings.TrimSpace(h1s.First().Text())
		}
	}

	curTitle = normalizeSpaces(strings.TrimSpace(curTitle))
	if wordCount(curTitle) <= 4 {
		strippedOrigWords := wordCount(hierarchicalStripRE.ReplaceAllString(origTitle, ""))
		if !hadHierarchical || wordCount(curTitle) != strippedOrigWords-1 {
			curTitle = normalizeSpaces(strings.TrimSpace(origTitle))
		}
	}

	return curTitle
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
