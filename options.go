package artscr

import "github.com/artscr/artscr/pkg/article"

// Config holds the tunables for a single extraction run.
type Config = article.Config

// Option mutates a Config being built up by Parse or TryParse.
type Option = article.Option

// DefaultConfig returns the library's documented defaults.
func DefaultConfig() Config {
	return article.DefaultConfig()
}

// WithNTopCandidates bounds how many top-scoring candidates the ancestor
// resolver draws from.
func WithNTopCandidates(n int) Option {
	return article.WithNTopCandidates(n)
}

// WithCharThreshold sets the minimum text length (in runes) an attempt
// must reach before the retry loop stops degrading its flags.
func WithCharThreshold(n int) Option {
	return article.WithCharThreshold(n)
}

// WithClassesToPreserve appends to the built-in preserved-class set used
// when stripping classes from the final content.
func WithClassesToPreserve(classes []string) Option {
	return article.WithClassesToPreserve(classes)
}

// WithKeepClasses disables class stripping entirely.
func WithKeepClasses(keep bool) Option {
	return article.WithKeepClasses(keep)
}

// WithFallbackOnThinContent toggles the ReadabilityJS-compatible retry
// loop used when the primary element-based scorer's pick is too short.
func WithFallbackOnThinContent(enabled bool) Option {
	return article.WithFallbackOnThinContent(enabled)
}
