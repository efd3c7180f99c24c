// SPDX-License-Identifier: MIT

// Package clone is the composition-based deep-copy path of replica.
//
// Every copyable type declares, once, how to produce an independent copy of
// itself by implementing Copyable[T]:
//
//	func (a *Address) DeepCopy() *Address {
//		return &Address{Street: a.Street, Number: a.Number}
//	}
//
// A composite type copies every owned field by calling that field's own
// DeepCopy, and every element of an owned collection individually (Slice, Map).
// No reflection is involved on this path: behavior is explicit and type-safe.
//
// Entry points:
//
//	DeepCopy(src)        // ErrInvalidArgument on an absent source
//	DeepCopyOrNil(src)   // permissive: absent in, zero value out
//	MustDeepCopy(src)    // panics on an absent source
//	Populate(src)        // default-construct + CopyInto, statically bound to T
//	PopulateInto(src,dst)// CopyInto an externally supplied instance
//	Shallow(src)         // memberwise copy, referenced sub-objects stay shared
//	DeepCopyGraph(src)   // cycle-aware copy through a per-pass Memo
//
// Ownership vs. sharing:
//
//   - Owned fields are copied recursively; mutating the copy is never visible
//     through the source.
//   - Fields wrapped in Shared[T] are aliased. They are exempt from the
//     independence guarantee and MUST be treated as immutable by every holder.
//
// Dispatch and fidelity:
//
//	DeepCopy is resolved on the dynamic type. Called through an interface type
//	(e.g. a Staff holding a *Manager) it returns a *Manager with all manager state.
//	Populate is resolved on the static type T. Applied to the embedded base of a
//	richer value (Populate(&m.Employee)) it returns only the base representation.
//	Both paths are kept; pick Populate only when narrowing is the intent.
//
// Errors:
//
//	ErrInvalidArgument  – absent source (or target) where one is required.
//	ErrSerialization    – round-trip path could not represent the graph (see roundtrip).
//	ErrUnsupportedType  – no strategy resolvable for a reachable type (see registry).
//
// Concurrency: all functions are synchronous and never write to the source,
// so concurrent copies of the same read-only source need no locking.
package clone
