package lilx

import (
	"fmt"

	"github.com/pauldmccarthy/lilx/internal/automaton"
	"github.com/pauldmccarthy/lilx/internal/parser"
)

const (
	// DefaultMaxTokenLength bounds element names and bodies, and
	// attribute names and values.
	DefaultMaxTokenLength = 1000

	// DefaultMaxDepth bounds the combined element and attribute nesting
	// depth. Attributes occupy the same stack as elements, so documents
	// with many attributes per element need a larger bound.
	DefaultMaxDepth = 10
)

// Option configures a parse attempt.
type Option func(*settings)

type settings struct {
	singleQuotes bool
	maxToken     int
	maxDepth     int
	trace        parser.Trace
}

// SingleQuotes selects the grammar variant that expects attribute values
// wrapped in single quotes. Some devices emit this style instead of the
// default double quotes.
func SingleQuotes() Option {
	return func(s *settings) {
		s.singleQuotes = true
	}
}

// MaxTokenLength overrides DefaultMaxTokenLength. Zero keeps the default.
func MaxTokenLength(n int) Option {
	return func(s *settings) {
		s.maxToken = n
	}
}

// MaxDepth overrides DefaultMaxDepth. Zero keeps the default.
func MaxDepth(n int) Option {
	return func(s *settings) {
		s.maxDepth = n
	}
}

// WithTrace installs a debug trace function that receives one line per
// automaton step. Intended for diagnostics only.
func WithTrace(fn func(format string, args ...any)) Option {
	return func(s *settings) {
		s.trace = fn
	}
}

func buildConfig(opts ...Option) (parser.Config, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	if s.maxToken < 0 {
		return parser.Config{}, fmt.Errorf("max token length must be >= 0")
	}
	if s.maxDepth < 0 {
		return parser.Config{}, fmt.Errorf("max depth must be >= 0")
	}

	style := automaton.DoubleQuotes
	if s.singleQuotes {
		style = automaton.SingleQuotes
	}
	return parser.Config{
		Style:          style,
		MaxTokenLength: defaultLimit(s.maxToken, DefaultMaxTokenLength),
		MaxDepth:       defaultLimit(s.maxDepth, DefaultMaxDepth),
		Trace:          s.trace,
	}, nil
}

func defaultLimit(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
