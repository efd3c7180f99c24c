// SPDX-License-Identifier: MIT
// Package: replica/clone
//
// api.go — DeepCopy entry points over the Copyable capability.
// AI-Hints:
//   • Call DeepCopy through the widest interface you hold; dispatch happens on
//     the dynamic type, so subtype state survives.
//   • Use DeepCopyOrNil inside copy methods for optional owned fields.

package clone

// DeepCopy returns an independent copy of src.
//
// Behavior:
//   - Absent src (nil pointer, nil interface, nil map/slice) → ErrInvalidArgument.
//   - Otherwise src.DeepCopy() is invoked on the dynamic type of src.
//
// The result is structurally equal to src and shares no owned mutable
// sub-object with it. Fields marked Shared are aliased.
//
// Complexity: O(size of the owned graph).
func DeepCopy[T Copyable[T]](src T) (T, error) {
	if isAbsent(src) {
		var zero T
		return zero, absentf(MethodDeepCopy, "source")
	}

	return src.DeepCopy(), nil
}

// DeepCopyOrNil is the permissive variant of DeepCopy: an absent src yields
// the zero value of T instead of an error.
func DeepCopyOrNil[T Copyable[T]](src T) T {
	if isAbsent(src) {
		var zero T
		return zero
	}

	return src.DeepCopy()
}

// MustDeepCopy is like DeepCopy but panics on an absent src.
// Intended for fixtures and package-level initialization.
func MustDeepCopy[T Copyable[T]](src T) T {
	cp, err := DeepCopy(src)
	if err != nil {
		panic(MethodMustDeepCopy + ": " + err.Error())
	}

	return cp
}
