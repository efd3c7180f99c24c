// SPDX-License-Identifier: MIT
// Package: replica/clone
//
// types.go — capability interfaces and the absent-value check.

package clone

import "reflect"

// Copyable is implemented by every type that knows how to produce an
// independent copy of itself. T is normally the implementing pointer type
// (*Address) or an interface the implementation satisfies (Staff).
type Copyable[T any] interface {
	DeepCopy() T
}

// Populator is the collaborator interface for composite types: CopyInto
// populates dst field by field, recursing into owned sub-entities through their
// own copy operations. dst is a fresh or externally supplied instance.
type Populator[T any] interface {
	CopyInto(dst T)
}

// isAbsent reports whether v is nil or a nil pointer, map, slice, interface,
// func or channel.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
