// SPDX-License-Identifier: MIT
// Package: replica/clone
//
// errors.go — sentinel errors shared by every replica copy path.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("DeepCopy: clone: invalid argument").
//   • Copy functions never panic on user input. MustDeepCopy and option
//     constructors are the documented exceptions.

package clone

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates an absent (nil) source or target was passed
// to a copy operation that requires one. No partial copy is returned.
var ErrInvalidArgument = errors.New("clone: invalid argument")

// ErrSerialization indicates the round-trip path met a shape it cannot
// represent (unsupported field type, reference cycle) or the codec failed.
var ErrSerialization = errors.New("clone: serialization failed")

// ErrUnsupportedType indicates that no copy strategy could be resolved for a
// reachable type. Only the registry/reflection path reports it.
var ErrUnsupportedType = errors.New("clone: unsupported type")

// Canonical operation names used as error prefixes.
const (
	MethodDeepCopy      = "DeepCopy"
	MethodMustDeepCopy  = "MustDeepCopy"
	MethodPopulate      = "Populate"
	MethodPopulateInto  = "PopulateInto"
	MethodShallow       = "Shallow"
	MethodDeepCopyGraph = "DeepCopyGraph"
)

// absentf wraps ErrInvalidArgument with the operation name and a short detail.
func absentf(method, what string) error {
	return fmt.Errorf("%s: %s is absent: %w", method, what, ErrInvalidArgument)
}
