// SPDX-License-Identifier: MIT
// Package: replica/registry
//
// registry.go — Registry type, registration and the public Copy entry points.
// Concurrency:
//   - Strategy tables are copy-on-write behind an atomic pointer; writers are
//     serialized by mu, readers never lock. A copy pass sees one snapshot.

package registry

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/replica/clone"
	"github.com/rs/zerolog"
)

// Strategy copies one value of a registered type.
type Strategy func(src reflect.Value) (reflect.Value, error)

type tables struct {
	strategies map[reflect.Type]Strategy
	shared     map[reflect.Type]struct{}
}

// Registry resolves copy strategies for reachable types.
type Registry struct {
	mu     sync.Mutex // serializes writers
	tables atomic.Pointer[tables]

	logger      zerolog.Logger
	walkStructs bool
	maxDepth    int
}

// New creates a Registry. By default time.Time and *time.Location are shared:
// both are immutable values.
func New(opts ...Option) *Registry {
	cfg := newConfig(opts...)
	r := &Registry{
		logger:      cfg.logger,
		walkStructs: cfg.walkStructs,
		maxDepth:    cfg.maxDepth,
	}
	r.tables.Store(&tables{
		strategies: make(map[reflect.Type]Strategy),
		shared:     make(map[reflect.Type]struct{}),
	})
	if cfg.defaults {
		RegisterShared[time.Time](r)
		RegisterShared[*time.Location](r)
	}

	return r
}

// update applies fn to a private copy of the tables and publishes it.
func (r *Registry) update(fn func(t *tables)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur := r.tables.Load()
	next := &tables{
		strategies: make(map[reflect.Type]Strategy, len(cur.strategies)+1),
		shared:     make(map[reflect.Type]struct{}, len(cur.shared)+1),
	}
	for k, v := range cur.strategies {
		next.strategies[k] = v
	}
	for k := range cur.shared {
		next.shared[k] = struct{}{}
	}
	fn(next)
	r.tables.Store(next)
}

// Register installs fn as the copy strategy for exactly type T (interface
// types match only values whose static position is T). A later registration
// replaces an earlier one and removes T from the shared set.
func Register[T any](r *Registry, fn func(T) (T, error)) {
	if fn == nil {
		panic("registry: Register(nil)")
	}
	t := reflect.TypeFor[T]()
	r.RegisterStrategy(t, func(src reflect.Value) (reflect.Value, error) {
		out, err := fn(src.Interface().(T))
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(&out).Elem(), nil
	})
}

// RegisterStrategy is the untyped form of Register.
func (r *Registry) RegisterStrategy(t reflect.Type, s Strategy) {
	if t == nil || s == nil {
		panic("registry: RegisterStrategy(nil)")
	}
	r.update(func(tb *tables) {
		tb.strategies[t] = s
		delete(tb.shared, t)
	})
	r.logger.Debug().Str("type", t.String()).Msg("registered copy strategy")
}

// RegisterShared marks T as shared-immutable: values of T are aliased, never
// copied, and are exempt from the independence guarantee.
func RegisterShared[T any](r *Registry) {
	t := reflect.TypeFor[T]()
	r.update(func(tb *tables) {
		tb.shared[t] = struct{}{}
		delete(tb.strategies, t)
	})
	r.logger.Debug().Str("type", t.String()).Msg("registered shared type")
}

// Registered reports whether t has a strategy or is shared.
func (r *Registry) Registered(t reflect.Type) bool {
	tb := r.tables.Load()
	_, ok := tb.strategies[t]
	if !ok {
		_, ok = tb.shared[t]
	}

	return ok
}

// Copy returns an independent copy of src resolved through r.
// Absent src → clone.ErrInvalidArgument; no partial copy is ever returned.
func Copy[T any](r *Registry, src T) (T, error) {
	var zero T
	if isAbsent(src) {
		return zero, fmt.Errorf("registry: Copy: source is absent: %w", clone.ErrInvalidArgument)
	}
	v := reflect.ValueOf(&src).Elem()
	out, err := r.run(v)
	if err != nil {
		return zero, err
	}

	return out.Interface().(T), nil
}

// CopyAny is the untyped form of Copy. The dynamic type of the result equals
// the dynamic type of src.
func (r *Registry) CopyAny(src any) (any, error) {
	if isAbsent(src) {
		return nil, fmt.Errorf("registry: CopyAny: source is absent: %w", clone.ErrInvalidArgument)
	}
	out, err := r.run(reflect.ValueOf(src))
	if err != nil {
		return nil, err
	}

	return out.Interface(), nil
}

func (r *Registry) run(v reflect.Value) (reflect.Value, error) {
	p := &pass{
		r:       r,
		tables:  r.tables.Load(),
		visited: make(map[visitKey]reflect.Value),
	}
	out, err := p.copy(v, rootPath(v.Type()), 0)
	if err != nil {
		r.logger.Debug().Err(err).Str("type", v.Type().String()).Msg("copy failed")
		return reflect.Value{}, err
	}
	r.logger.Debug().Str("type", v.Type().String()).Int("identities", len(p.visited)).Msg("copy complete")

	return out, nil
}

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

// rootPath names the root type without pointer stars or package qualifier.
func rootPath(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}
