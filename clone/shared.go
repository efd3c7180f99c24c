// SPDX-License-Identifier: MIT
// Package: replica/clone
//
// shared.go — explicit aliasing for externally owned, immutable parts.

package clone

// Shared marks a field that is aliased rather than copied: a lookup table, a
// catalog, a configuration snapshot owned elsewhere. DeepCopy of a Shared
// returns the same reference, so the copy and the source observe the same
// value. Holders MUST treat it as immutable; the independence guarantee of
// DeepCopy does not cover it.
//
// Use at the field site:
//
//	type Order struct {
//		Lines   []*Line
//		// Rates is shared with every copy; never mutate it.
//		Rates   clone.Shared[map[string]float64]
//	}
type Shared[T any] struct {
	v   T
	set bool
}

// Share wraps v for aliasing.
func Share[T any](v T) Shared[T] {
	return Shared[T]{v: v, set: true}
}

// Get returns the aliased value.
func (s Shared[T]) Get() T {
	return s.v
}

// IsZero reports whether nothing was shared.
func (s Shared[T]) IsZero() bool {
	return !s.set
}

// DeepCopy returns s itself: the wrapped value is aliased, never copied.
func (s Shared[T]) DeepCopy() Shared[T] {
	return s
}
