package parser

import "formulae/internal/limits"

// DefaultMaxDepth bounds grouping, call and unary nesting.
const DefaultMaxDepth = limits.DefaultMaxDepth

// Option configures a Parser.
type Option func(*options)

type options struct {
	maxDepth int
}

// WithMaxDepth sets the maximum nesting depth. Zero disables the limit.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}
