// SPDX-License-Identifier: MIT
// Package: replica/clone

package clone

// Shallow returns a memberwise copy of *src: value fields are duplicated,
// while pointers, slices and maps still reference the source's sub-objects.
// Mutating copy.Address.Number is visible through src. It is NOT a deep copy.
func Shallow[T any](src *T) (*T, error) {
	if src == nil {
		return nil, absentf(MethodShallow, "source")
	}
	cp := *src

	return &cp, nil
}
