package artscr

import "github.com/artscr/artscr/pkg/article"

// ErrArticleNotFound is the one recoverable failure kind extraction can
// report: no candidate subtree ever qualified as article content.
var ErrArticleNotFound = article.ErrArticleNotFound

// ExtractError wraps a failure with the documentURI that was being parsed.
type ExtractError = article.ExtractError
