// SPDX-License-Identifier: MIT
// Package: replica/registry
//
// options.go — functional options; constructors panic on meaningless values.

package registry

import "github.com/rs/zerolog"

// DefaultMaxDepth bounds nesting when WithMaxDepth is not given.
const DefaultMaxDepth = 256

// Option customizes a Registry at construction time.
type Option func(*config)

type config struct {
	logger      zerolog.Logger
	walkStructs bool
	maxDepth    int
	defaults    bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:   zerolog.Nop(),
		maxDepth: DefaultMaxDepth,
		defaults: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes debug events about strategy resolution to l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStructWalking lets the registry copy unregistered struct types field by
// field, provided every field is exported.
func WithStructWalking() Option {
	return func(c *config) { c.walkStructs = true }
}

// WithMaxDepth sets the nesting limit. Panics if n < 1.
func WithMaxDepth(n int) Option {
	if n < 1 {
		panic("registry: WithMaxDepth(n<1)")
	}
	return func(c *config) { c.maxDepth = n }
}

// WithoutDefaults skips the built-in shared registrations.
func WithoutDefaults() Option {
	return func(c *config) { c.defaults = false }
}
