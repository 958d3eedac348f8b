package validator

import (
	"github.com/erraggy/oasmodel/oaslog"
	"github.com/erraggy/oasmodel/walker"
)

// Option configures a Validator.
type Option func(*config)

type config struct {
	includeWarnings bool
	strict          bool
	maxDepth        int
	logger          oaslog.Logger
}

func applyOptions(opts ...Option) *config {
	cfg := &config{
		includeWarnings: true,
		maxDepth:        walker.DefaultMaxDepth,
		logger:          oaslog.NopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithIncludeWarnings controls whether warnings are reported. Default true.
func WithIncludeWarnings(enabled bool) Option {
	return func(c *config) { c.includeWarnings = enabled }
}

// WithStrictMode makes warnings fail validation as well. Default false.
func WithStrictMode(enabled bool) Option {
	return func(c *config) { c.strict = enabled }
}

// WithMaxDepth sets the deepest schema nesting accepted before validation
// reports an error. Values <= 0 keep the default.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(l oaslog.Logger) Option {
	return func(c *config) { c.logger = oaslog.OrNop(l) }
}
