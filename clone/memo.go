// SPDX-License-Identifier: MIT
// Package: replica/clone
//
// memo.go — cycle-aware copying.
//
// A Memo maps every source identity already copied during ONE pass to its
// copy, so a reference cycle resolves to the shared copy instead of recursing
// forever. It is created and released by WithMemo (or DeepCopyGraph): there is
// no process-wide memo and no implicit caching between passes.
//
// Pattern for a node type:
//
//	func (n *Node) DeepCopyWith(m *clone.Memo) *Node {
//		cp := &Node{Name: n.Name}
//		clone.Remember(m, n, cp)          // register BEFORE recursing
//		cp.Next = clone.CopyWith(m, n.Next)
//		return cp
//	}
//
// AI-Hints:
//   • Forgetting Remember before recursion turns a cycle into a stack overflow.
//   • Memo is not safe for concurrent use; one pass, one goroutine.

package clone

// GraphCopyable is implemented by types that take part in possibly cyclic
// graphs. DeepCopyWith must Remember its copy before copying children.
type GraphCopyable[T any] interface {
	comparable
	DeepCopyWith(m *Memo) T
}

// Memo is the visited map of a single copy pass.
type Memo struct {
	seen     map[any]any
	released bool
}

func newMemo() *Memo {
	return &Memo{seen: make(map[any]any)}
}

// Len returns the number of source identities copied so far.
func (m *Memo) Len() int {
	return len(m.seen)
}

func (m *Memo) release() {
	m.seen = nil
	m.released = true
}

// Remember records dst as the copy of src. Panics if the memo was released,
// which means a copy method kept the memo past its pass.
func Remember[T comparable](m *Memo, src, dst T) {
	if m.released {
		panic("clone: Memo used after release")
	}
	m.seen[src] = dst
}

// Recall returns the copy recorded for src, if any.
func Recall[T comparable](m *Memo, src T) (T, bool) {
	cp, ok := m.seen[src].(T)

	return cp, ok
}

// CopyWith copies src within the pass owned by m: absent src → zero value,
// already copied src → the recorded copy, otherwise src.DeepCopyWith(m).
func CopyWith[T GraphCopyable[T]](m *Memo, src T) T {
	var zero T
	if isAbsent(src) {
		return zero
	}
	if cp, ok := Recall(m, src); ok {
		return cp
	}

	return src.DeepCopyWith(m)
}

// WithMemo runs fn with a fresh Memo and releases it when fn returns,
// whether fn succeeds, fails or panics.
func WithMemo[T any](fn func(m *Memo) (T, error)) (T, error) {
	m := newMemo()
	defer m.release()

	return fn(m)
}

// DeepCopyGraph copies a possibly cyclic graph rooted at src.
// Absent src → ErrInvalidArgument.
func DeepCopyGraph[T GraphCopyable[T]](src T) (T, error) {
	if isAbsent(src) {
		var zero T
		return zero, absentf(MethodDeepCopyGraph, "source")
	}

	return WithMemo(func(m *Memo) (T, error) {
		return CopyWith(m, src), nil
	})
}
