// ABOUTME: Splits an inline style attribute's declaration list into
// ABOUTME: (property, value) pairs; used only by the visibility predicate.
package cssinline

import (
	"strings"

	"github.com/gorilla/css/scanner"
)

// Declaration is a (property, value) string-view pair, unescaped and
// trimmed.
type Declaration struct {
	Property string
	Value    string
}

// Parse splits an inline `style="..."` attribute value on unescaped `;`,
// trims each `property:value` pair, and unescapes `\;` that appears inside a
// value. CSS string tokens (quoted values that may themselves contain a
// literal `;`, e.g. `content: "a;b"`) are tokenized with
// github.com/gorilla/css/scanner so such a semicolon is not mistaken for a
// declaration boundary.
func Parse(style string) []Declaration {
	segments := splitDeclarations(style)

	decls := make([]Declaration, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		colon := strings.IndexByte(seg, ':')
		if colon < 0 {
			continue
		}
		prop := strings.TrimSpace(seg[:colon])
		val := strings.TrimSpace(seg[colon+1:])
		if prop == "" {
			continue
		}
		decls = append(decls, Declaration{Property: strings.ToLower(prop), Value: val})
	}
	return decls
}

// splitDeclarations performs the unescaped-`;` split, honouring CSS string
// tokens so a `;` inside a quoted value never ends a declaration early.
func splitDeclarations(style string) []string {
	s := scanner.New(style)

	var segments []string
	var current strings.Builder
	escaped := false

	for {
		tok := s.Next()
		if tok == nil || tok.Type == scanner.TokenEOF || tok.Type == scanner.TokenError {
			break
		}
		if tok.Type == scanner.TokenChar && tok.Value == `\` {
			escaped = true
			current.WriteString(tok.Value)
			continue
		}
		if tok.Type == scanner.TokenChar && tok.Value == ";" && !escaped {
			segments = append(segments, current.String())
			current.Reset()
			escaped = false
			continue
		}
		escaped = false
		current.WriteString(tok.Value)
	}
	if strings.TrimSpace(current.String()) != "" {
		segments = append(segments, current.String())
	}

	// Undo the literal `\;` escape now that boundaries are resolved.
	for i, seg := range segments {
		segments[i] = strings.ReplaceAll(seg, `\;`, ";")
	}
	return segments
}

// Value looks up the first declaration matching property (case-insensitive).
func Value(decls []Declaration, property string) (string, bool) {
	property = strings.ToLower(property)
	for _, d := range decls {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}
