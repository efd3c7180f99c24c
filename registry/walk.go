// SPDX-License-Identifier: MIT
// Package: replica/registry
//
// walk.go — one copy pass: strategy resolution and the kind-based walk.
// Determinism:
//   - Struct fields and array/slice elements are visited in index order.
//   - Map iteration order is irrelevant to the result (keys are reused as-is).
// AI-HINT (file):
//   - Pointers and maps are remembered BEFORE their contents are copied so a
//     cycle resolves to the copy under construction.

package registry

import (
	"fmt"
	"reflect"

	"google.golang.org/protobuf/proto"
)

var protoMessageType = reflect.TypeFor[proto.Message]()

// visitKey identifies a source pointer or map within one pass.
type visitKey struct {
	addr uintptr
	typ  reflect.Type
}

type pass struct {
	r       *Registry
	tables  *tables
	visited map[visitKey]reflect.Value
}

func (p *pass) copy(v reflect.Value, path string, depth int) (reflect.Value, error) {
	t := v.Type()
	if depth > p.r.maxDepth {
		return reflect.Value{}, fmt.Errorf("registry: %s: depth %d: %w", path, depth, ErrTooDeep)
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return reflect.Zero(t), nil
		}
	}

	if _, ok := p.tables.shared[t]; ok {
		return v, nil
	}
	key, tracked := identityOf(v)
	if tracked {
		if cp, ok := p.visited[key]; ok {
			return cp, nil
		}
	}
	if s, ok := p.tables.strategies[t]; ok {
		p.trace(path, t, "registered")
		out, err := s(v)
		if err != nil {
			return reflect.Value{}, strategyErr(path, err)
		}
		return p.remember(key, tracked, out), nil
	}
	if v.Kind() == reflect.Pointer && t.Implements(protoMessageType) {
		p.trace(path, t, "proto")
		return p.remember(key, tracked, reflect.ValueOf(proto.Clone(v.Interface().(proto.Message)))), nil
	}
	if out, ok := p.viaMethod(v, t); ok {
		p.trace(path, t, "method")
		return p.remember(key, tracked, out), nil
	}

	return p.byKind(v, t, path, depth)
}

// identityOf returns the visited key of a pointer or map.
func identityOf(v reflect.Value) (visitKey, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		return visitKey{addr: v.Pointer(), typ: v.Type()}, true
	default:
		return visitKey{}, false
	}
}

func (p *pass) remember(key visitKey, tracked bool, out reflect.Value) reflect.Value {
	if tracked {
		p.visited[key] = out
	}

	return out
}

// viaMethod uses a DeepCopy() method of v whose result fits in a position of
// type target. For an addressable struct value it also accepts a pointer
// receiver returning *T.
func (p *pass) viaMethod(v reflect.Value, target reflect.Type) (reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		if v.IsNil() {
			return reflect.Value{}, false
		}
	}
	if m := v.MethodByName("DeepCopy"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 0 && mt.NumOut() == 1 && mt.Out(0).AssignableTo(target) {
			out := reflect.New(target).Elem()
			out.Set(m.Call(nil)[0])
			return out, true
		}
	}
	if v.Kind() == reflect.Struct && v.CanAddr() {
		if m := v.Addr().MethodByName("DeepCopy"); m.IsValid() {
			mt := m.Type()
			if mt.NumIn() == 0 && mt.NumOut() == 1 && mt.Out(0) == reflect.PointerTo(target) {
				res := m.Call(nil)[0]
				if !res.IsNil() {
					return res.Elem(), true
				}
			}
		}
	}

	return reflect.Value{}, false
}

func (p *pass) byKind(v reflect.Value, t reflect.Type, path string, depth int) (reflect.Value, error) {
	switch v.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return v, nil

	case reflect.Array:
		out := reflect.New(t).Elem()
		for i := 0; i < v.Len(); i++ {
			cp, err := p.copy(v.Index(i), fmt.Sprintf("%s[%d]", path, i), depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(cp)
		}
		return out, nil

	case reflect.Slice:
		out := reflect.MakeSlice(t, v.Len(), v.Len())
		if p.plain(t.Elem()) {
			reflect.Copy(out, v)
			return out, nil
		}
		for i := 0; i < v.Len(); i++ {
			cp, err := p.copy(v.Index(i), fmt.Sprintf("%s[%d]", path, i), depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(cp)
		}
		return out, nil

	case reflect.Map:
		key := visitKey{addr: v.Pointer(), typ: t}
		out := reflect.MakeMapWithSize(t, v.Len())
		p.visited[key] = out
		iter := v.MapRange()
		for iter.Next() {
			cp, err := p.copy(iter.Value(), fmt.Sprintf("%s[%v]", path, iter.Key()), depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			out.SetMapIndex(iter.Key(), cp)
		}
		return out, nil

	case reflect.Pointer:
		key := visitKey{addr: v.Pointer(), typ: t}
		out := reflect.New(t.Elem())
		p.visited[key] = out
		cp, err := p.copy(v.Elem(), path, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Elem().Set(cp)
		return out, nil

	case reflect.Interface:
		elem := v.Elem()
		out := reflect.New(t).Elem()
		key, tracked := identityOf(elem)
		if cp, ok := p.visited[key]; tracked && ok {
			out.Set(cp)
			return out, nil
		}
		// A DeepCopy typed for the interface is kept only when it preserves
		// the dynamic type; otherwise the dynamic value resolves on its own.
		if cp, ok := p.viaMethod(elem, t); ok && !cp.IsNil() && cp.Elem().Type() == elem.Type() {
			p.trace(path, elem.Type(), "method")
			p.remember(key, tracked, cp.Elem())
			return cp, nil
		}
		cp, err := p.copy(elem, path, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Set(cp)
		return out, nil

	case reflect.Struct:
		return p.walkStruct(v, t, path, depth)

	default: // Chan, Func, UnsafePointer
		return reflect.Value{}, unsupportedf(path, t, v.Kind().String()+" has no copy strategy")
	}
}

func (p *pass) walkStruct(v reflect.Value, t reflect.Type, path string, depth int) (reflect.Value, error) {
	if !p.r.walkStructs {
		return reflect.Value{}, unsupportedf(path, t, "struct is not registered and struct walking is off")
	}
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); !f.IsExported() {
			return reflect.Value{}, unsupportedf(path+"."+f.Name, t, "unexported field")
		}
	}
	out := reflect.New(t).Elem()
	for i := 0; i < t.NumField(); i++ {
		cp, err := p.copy(v.Field(i), path+"."+t.Field(i).Name, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Field(i).Set(cp)
	}

	return out, nil
}

func (p *pass) trace(path string, t reflect.Type, strategy string) {
	p.r.logger.Debug().
		Str("path", path).
		Str("type", t.String()).
		Str("strategy", strategy).
		Msg("resolved copy strategy")
}

// plain reports whether elements of t can be bulk-copied: scalar kind, no
// methods and no registered strategy.
func (p *pass) plain(t reflect.Type) bool {
	if !isScalar(t.Kind()) || t.NumMethod() > 0 {
		return false
	}
	_, ok := p.tables.strategies[t]

	return !ok
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
