package retry

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/artscr/artscr/pkg/htmlnode"
)

// selection is a package-local alias to keep signatures short.
type selection = goquery.Selection

// Flags are the three cascading toggles §4.3 degrades, in disable order.
type Flags struct {
	StripUnlikelys     bool
	WeightClasses      bool
	CleanConditionally bool
}

// AllFlags returns the initial, fully-enabled flag set.
func AllFlags() Flags {
	return Flags{StripUnlikelys: true, WeightClasses: true, CleanConditionally: true}
}

// disableNext turns off the next active flag in stripUnlikelys ->
// weightClasses -> cleanConditionally order, reporting whether any flag was
// still on to disable.
func (f Flags) disableNext() (Flags, bool) {
	switch {
	case f.StripUnlikelys:
		f.StripUnlikelys = false
		return f, true
	case f.WeightClasses:
		f.WeightClasses = false
		return f, true
	case f.CleanConditionally:
		f.CleanConditionally = false
		return f, true
	default:
		return f, false
	}
}

// PrepFunc applies §4.4's presentation prep to an elected subtree; it is
// supplied by the caller (pkg/article) rather than imported directly so
// pkg/retry has no dependency on pkg/prep. cleanConditionally mirrors the
// current attempt's flag so the conditional-clean stage of prep can be
// gated the same way the rest of this attempt is.
type PrepFunc func(content *selection, cleanConditionally bool) *selection

// Attempt is one flag-configuration's outcome: the prepped content subtree
// and its resulting text length, the currency the §4.8 state machine
// compares attempts by.
type Attempt struct {
	Content    *selection
	TextLength int
	Flags      Flags
}

// Run drives the full §4.3/§4.8 retry loop: select content with the current
// flags, prep it, measure its text length, and — if short of charThreshold
// and a flag remains — restore a pristine clone of doc and retry with the
// next flag disabled. It returns the attempt with the greatest text length
// once a threshold-meeting attempt is found or all flags are exhausted, and
// ok=false only when no attempt ever produced a non-empty selection.
func Run(doc *selection, charThreshold, topN int, prep PrepFunc) (Attempt, bool) {
	flags := AllFlags()
	var best Attempt
	haveBest := false

	for {
		clone := cloneSelection(doc)
		content, ok := selectOnce(clone, flags, topN)
		if ok {
			prepped := prep(content, flags.CleanConditionally)
			attempt := Attempt{
				Content:    prepped,
				TextLength: len([]rune(prepped.Text())),
				Flags:      flags,
			}
			if !haveBest || attempt.TextLength > best.TextLength {
				best, haveBest = attempt, true
			}
			if attempt.TextLength >= charThreshold {
				return attempt, true
			}
		}

		next, more := flags.disableNext()
		if !more {
			break
		}
		flags = next
	}

	return best, haveBest
}

// cloneSelection deep-copies the node backing sel into a fresh, detached
// subtree, the "restore the DOM clone" step §4.3's retry loop requires
// before each degraded attempt so earlier removals don't compound.
func cloneSelection(sel *selection) *selection {
	n := sel.Nodes[0]
	cloned := htmlnode.Clone(n)
	doc := goquery.NewDocumentFromNode(cloned)
	return doc.Selection
}
