// SPDX-License-Identifier: MIT

// Package registry is the reflection/registry-based deep-copy path of replica.
//
// Where package clone asks every type to implement DeepCopy, a Registry
// resolves a copy strategy for each reachable value at run time:
//
//  1. nil pointers, maps, slices, interfaces, funcs and channels stay nil
//  2. types registered as shared (RegisterShared) are aliased
//  3. types with a registered strategy (Register) use it
//  4. protobuf messages are copied with proto.Clone
//  5. a DeepCopy() method on the dynamic type is used when its result fits
//  6. otherwise the value is copied by kind: scalars by value, arrays, slices
//     and maps element by element, pointers by copying the pointee, structs
//     field by field when WithStructWalking is set
//
// Anything else (channels, funcs, unsafe pointers, structs with unexported
// fields, structs without walking) fails with clone.ErrUnsupportedType,
// reported at the path of the unresolved value ("Person.Address.Owner").
//
// Interface-typed positions dispatch on the dynamic value, so a Staff holding a
// *Manager is copied as a *Manager. A DeepCopy whose result would change the
// dynamic type (a named map returning its underlying map) is converted back
// to the dynamic type instead.
//
// Pointer and map identities are memoised for the duration of one Copy call,
// whichever strategy produced the copy, so cycles and shared sub-objects are
// reproduced in the copy instead of recursing forever.
//
// A Registry is an explicit object owned by the caller; there is no package
// default. It is safe for concurrent Copy calls, including while Register runs.
//
// Options:
//
//	WithLogger(zerolog.Logger) – debug events for resolved strategies (default Nop)
//	WithStructWalking()        – walk unregistered structs with exported fields
//	WithMaxDepth(n)            – nesting limit, ErrTooDeep beyond it (default 256)
//	WithoutDefaults()          – do not pre-register time.Time / *time.Location as shared
package registry
