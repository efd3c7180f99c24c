// SPDX-License-Identifier: MIT
// Package: replica/clone
//
// collections.go — element-wise copies of owned collections.
//
// Contract:
//   • A nil collection stays nil; an empty one stays empty (not nil).
//   • Every element is copied individually; the container's references are
//     never reused verbatim.
//   • Absent elements (nil pointers) stay absent.
// AI-Hints:
//   • Slice/Map for Copyable elements, Values/MapValues for plain values
//     (strings, numbers, structs without owned references).

package clone

import (
	"maps"
	"slices"
)

// Slice returns a new slice holding a deep copy of every element of in.
// Complexity: O(Σ element graph sizes).
func Slice[T Copyable[T]](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = DeepCopyOrNil(v)
	}

	return out
}

// Map returns a new map with every value deep-copied. Keys are comparable
// values and are reused as-is.
func Map[K comparable, V Copyable[V]](in map[K]V) map[K]V {
	if in == nil {
		return nil
	}
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = DeepCopyOrNil(v)
	}

	return out
}

// Values returns a new backing array with the same plain values.
func Values[T any](in []T) []T {
	return slices.Clone(in)
}

// MapValues returns a new map with the same plain keys and values.
func MapValues[K comparable, V any](in map[K]V) map[K]V {
	return maps.Clone(in)
}

// Ptr returns a pointer to a copy of *p, or nil when p is nil.
func Ptr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
