// ABOUTME: DocumentUrl value type and the URL absolutiser (§4.7 of the spec).
// ABOUTME: Grounded on the teacher's MakeLinksAbsolute / ArticleBaseURL helpers.
package docurl

import (
	"net/url"
	"strings"

	"github.com/artscr/artscr/pkg/dataurl"
)

// DocumentURL is created once per extraction run. BaseURL is
// "scheme://authority"; PathURL is BaseURL plus the document's directory
// (the URL path with its last path segment stripped).
type DocumentURL struct {
	Raw     string
	Scheme  string
	BaseURL string
	PathURL string
}

// New builds a DocumentURL from an absolute document URL string. Returns the
// zero value and false if raw does not parse as an absolute URL.
func New(raw string) (DocumentURL, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return DocumentURL{}, false
	}

	base := u.Scheme + "://" + u.Host

	dir := u.Path
	if idx := strings.LastIndexByte(dir, '/'); idx >= 0 {
		dir = dir[:idx+1]
	} else {
		dir = "/"
	}

	return DocumentURL{
		Raw:     raw,
		Scheme:  u.Scheme,
		BaseURL: base,
		PathURL: base + dir,
	}, true
}

// TryMakeAbsolute resolves candidate v against the document URL per §4.7:
//
//   - ""        -> BaseURL
//   - "//..."   -> scheme + ":" + v
//   - "/..."    -> BaseURL + v
//   - "./..."   -> PathURL + suffix
//   - "#..."    -> unresolved (fragment, drop)
//   - data URL  -> unresolved (drop)
//   - absolute  -> unresolved (drop; it's already absolute, caller keeps it)
//   - otherwise -> PathURL + v
func (d DocumentURL) TryMakeAbsolute(v string) (string, bool) {
	if v == "" {
		return d.BaseURL, true
	}
	if strings.HasPrefix(v, "#") {
		return "", false
	}
	if dataurl.IsDataURL(v) {
		return "", false
	}
	if strings.HasPrefix(v, "//") {
		return d.Scheme + ":" + v, true
	}
	if strings.HasPrefix(v, "/") {
		return d.BaseURL + v, true
	}
	if strings.HasPrefix(v, "./") {
		return d.PathURL + v[2:], true
	}
	if isAbsoluteURL(v) {
		return "", false
	}
	return d.PathURL + v, true
}

// isAbsoluteURL reports whether v parses as an absolute URL (has a scheme
// and an authority component).
func isAbsoluteURL(v string) bool {
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}

// DiscoverDocumentURL finds the document URL per §4.7: `<link
// rel="canonical" href>` in `<head>`, else `<meta property="og:url"
// content>`. Callers pass in pre-extracted candidate strings; see
// pkg/article's resolveDocumentURL for the DOM lookup that supplies them.
func DiscoverDocumentURL(canonical, ogURL string) string {
	if canonical != "" {
		return canonical
	}
	return ogURL
}
