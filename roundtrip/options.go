// SPDX-License-Identifier: MIT
// Package: replica/roundtrip
//
// options.go — functional options for Copier; constructors panic on nil or
// meaningless values.

package roundtrip

import "github.com/rs/zerolog"

// DefaultMaxDepth bounds validation when no option or config overrides it.
// Only fields, elements and map values count as levels.
const DefaultMaxDepth = 64

// Option customizes a Copier.
type Option func(*Copier)

// WithCodec selects the codec. Panics on nil.
func WithCodec(c Codec) Option {
	if c == nil {
		panic("roundtrip: WithCodec(nil)")
	}
	return func(cp *Copier) { cp.codec = c }
}

// WithMaxDepth sets the validation nesting limit. Panics if n < 1.
func WithMaxDepth(n int) Option {
	if n < 1 {
		panic("roundtrip: WithMaxDepth(n<1)")
	}
	return func(cp *Copier) { cp.maxDepth = n }
}

// WithLogger routes debug events (codec, payload size, failures) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(cp *Copier) { cp.logger = l }
}
