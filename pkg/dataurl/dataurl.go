// ABOUTME: Minimal RFC 2397 data-URL parser used by visibility checks and
// ABOUTME: lazy-image fixups; exposes ranges into the original string.
package dataurl

import "strings"

// DataURL is a view over a source string: Mime, Params, and Data are byte
// ranges of Source, never copies, matching the "string spans" discipline of
// spec.md §9.
type DataURL struct {
	Source  string
	Mime    string // e.g. "image/png"; empty for the default text/plain
	Params  []Param
	Base64  bool
	Data    string
}

// Param is a single `;key=value` parameter, e.g. charset=utf-8.
type Param struct {
	Key   string
	Value string
}

// Parse parses s as an RFC 2397 data URL:
//
//	data:[<mime>][;<param>=<val>]*[;base64],<data>
//
// It returns (DataURL{}, false) for anything that isn't a well-formed data
// URL; callers treat that as "unresolved" per spec.md §4.7/§7.
func Parse(s string) (DataURL, bool) {
	const scheme = "data:"
	if !strings.HasPrefix(strings.ToLower(s), scheme) {
		return DataURL{}, false
	}
	rest := s[len(scheme):]

	commaIdx := strings.IndexByte(rest, ',')
	if commaIdx < 0 {
		return DataURL{}, false
	}
	header := rest[:commaIdx]
	data := rest[commaIdx+1:]

	d := DataURL{Source: s, Data: data}

	if header == "" {
		return d, true
	}

	segments := strings.Split(header, ";")
	if segments[0] != "" {
		if !strings.Contains(segments[0], "/") {
			return DataURL{}, false
		}
		d.Mime = segments[0]
	}

	for _, seg := range segments[1:] {
		if seg == "" {
			continue
		}
		if strings.EqualFold(seg, "base64") {
			d.Base64 = true
			continue
		}
		eq := strings.IndexByte(seg, '=')
		if eq < 0 {
			return DataURL{}, false
		}
		d.Params = append(d.Params, Param{Key: seg[:eq], Value: seg[eq+1:]})
	}

	return d, true
}

// IsDataURL reports whether s parses as a data URL. Used by the absolutiser
// to decide "unresolved".
func IsDataURL(s string) bool {
	_, ok := Parse(s)
	return ok
}
