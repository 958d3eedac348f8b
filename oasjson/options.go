package oasjson

import (
	"fmt"

	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/oaslog"
)

// DefaultMaxDepth is the default nesting limit for encoding and decoding.
const DefaultMaxDepth = 128

// Option configures an encode or decode call.
type Option func(*config) error

type config struct {
	prefix     string
	indent     string
	maxDepth   int
	escapeHTML bool
	logger     oaslog.Logger
}

func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		maxDepth: DefaultMaxDepth,
		logger:   oaslog.NopLogger{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("oasjson: invalid options: %w", err)
		}
	}
	return cfg, nil
}

// WithIndent pretty-prints the output. Each element begins on a new line
// starting with prefix followed by one copy of indent per nesting level.
// Indentation never changes the structure of the output.
func WithIndent(prefix, indent string) Option {
	return func(cfg *config) error {
		cfg.prefix = prefix
		cfg.indent = indent
		return nil
	}
}

// WithMaxDepth sets the maximum nesting depth of objects and arrays.
// Exceeding it fails with *oaserrors.ResourceLimitError.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) error {
		if depth < 1 {
			return &oaserrors.ConfigError{
				Option:  "WithMaxDepth",
				Value:   depth,
				Message: "depth must be at least 1",
			}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithEscapeHTML escapes HTML-significant characters (<, >, &) inside
// strings using \u escapes. It is off by default.
func WithEscapeHTML(escape bool) Option {
	return func(cfg *config) error {
		cfg.escapeHTML = escape
		return nil
	}
}

// WithLogger sets the logger. Decoding logs ignored fields at debug level.
func WithLogger(l oaslog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = oaslog.OrNop(l)
		return nil
	}
}
