package article

// Config holds the tunables §6.1 lists for a single extraction run.
type Config struct {
	// NTopCandidates bounds the min-heap §4.1/§4.2 draw their ancestor
	// resolution from.
	NTopCandidates int

	// CharThreshold is the minimum text length (in runes) an attempt must
	// reach before the §4.8 state machine stops retrying.
	CharThreshold int

	// ClassesToPreserve is appended to postprocess.DefaultPreservedClasses
	// when stripping classes, unless KeepClasses is set.
	ClassesToPreserve []string

	// KeepClasses disables class stripping entirely.
	KeepClasses bool

	// FallbackOnThinContent enables the §4.3 ReadabilityJS-compatible
	// retry loop when the primary element-based scorer's pick falls short
	// of CharThreshold. spec.md §9 leaves this as an open strategy choice;
	// defaulting to true gives every extraction the same two-strategy
	// resilience the original offers.
	FallbackOnThinContent bool
}

// DefaultConfig returns §6.1's documented defaults.
func DefaultConfig() Config {
	return Config{
		NTopCandidates:        5,
		CharThreshold:         500,
		ClassesToPreserve:     []string{"caption"},
		KeepClasses:           false,
		FallbackOnThinContent: true,
	}
}

// Option mutates a Config being built up by Parse or TryParse.
type Option func(*Config)

func WithNTopCandidates(n int) Option {
	return func(c *Config) { c.NTopCandidates = n }
}

func WithCharThreshold(n int) Option {
	return func(c *Config) { c.CharThreshold = n }
}

func WithClassesToPreserve(classes []string) Option {
	return func(c *Config) { c.ClassesToPreserve = classes }
}

func WithKeepClasses(keep bool) Option {
	return func(c *Config) { c.KeepClasses = keep }
}

func WithFallbackOnThinContent(enabled bool) Option {
	return func(c *Config) { c.FallbackOnThinContent = enabled }
}

func newConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
