// SPDX-License-Identifier: MIT
// Package: replica/roundtrip
//
// validate.go — pre-encode shape check.
// Policy:
//   - Types with a marshaler the active codec honors are leaves: the codec
//     owns them.
//   - Depth counts struct fields, slice/array elements and map values;
//     pointer and interface hops do not add a level.
//   - Nil pointers, maps, slices and interfaces are always representable.
//   - Pointers and maps on the current descent path form a cycle.
//   - Unexported fields are skipped (the codec drops them too), except
//     embedded structs, whose exported fields are promoted.

package roundtrip

import (
	"encoding"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

var (
	jsonMarshaler   = reflect.TypeFor[json.Marshaler]()
	textMarshaler   = reflect.TypeFor[encoding.TextMarshaler]()
	binaryMarshaler = reflect.TypeFor[encoding.BinaryMarshaler]()
	gobEncoder      = reflect.TypeFor[gob.GobEncoder]()
	yamlMarshaler   = reflect.TypeFor[yaml.Marshaler]()
	msgpackEncoder  = reflect.TypeFor[msgpack.CustomEncoder]()
	msgpackMarsh    = reflect.TypeFor[msgpack.Marshaler]()
	cborMarshaler   = reflect.TypeFor[cbor.Marshaler]()
	tomlMarshaler   = reflect.TypeFor[toml.Marshaler]()
)

// anyMarshaler is the leaf set for codecs that are not built in: their
// marshaler support is unknown, so every known interface counts.
var anyMarshaler = []reflect.Type{
	jsonMarshaler, textMarshaler, binaryMarshaler, gobEncoder, yamlMarshaler,
	msgpackEncoder, msgpackMarsh, cborMarshaler, tomlMarshaler,
}

type onPathKey struct {
	addr uintptr
	typ  reflect.Type
}

type validator struct {
	rules    *builtin
	maxDepth int
	onPath   map[onPathKey]struct{}
}

func newValidator(c Codec, maxDepth int) *validator {
	return &validator{
		rules:    rulesOf(c),
		maxDepth: maxDepth,
		onPath:   make(map[onPathKey]struct{}),
	}
}

// root validates the value the codec will receive.
func (w *validator) root(v reflect.Value) error {
	path := rootPath(v.Type())
	if w.rules.tableAtRoot {
		t := v.Type()
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct && t.Kind() != reflect.Map {
			return shapeErr(path, v.Type(), w.rules.name+" needs a struct or map at the root")
		}
	}

	return w.check(v, path, 0)
}

func (w *validator) check(v reflect.Value, path string, depth int) error {
	t := v.Type()
	if depth > w.maxDepth {
		return shapeErr(path, t, fmt.Sprintf("nests deeper than %d", w.maxDepth))
	}
	if hasMarshaler(t, w.rules.leaves) {
		return nil
	}

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return shapeErr(path, t, v.Kind().String()+" cannot be serialized")

	case reflect.Complex64, reflect.Complex128:
		if w.rules.noComplex {
			return shapeErr(path, t, "complex numbers are not supported by "+w.rules.name)
		}
		return nil

	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return w.descend(v, path, func() error {
			return w.check(v.Elem(), path, depth)
		})

	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		if t.NumMethod() > 0 {
			return shapeErr(path, t, "non-empty interface cannot be decoded")
		}
		return w.check(v.Elem(), path, depth)

	case reflect.Map:
		if err := w.checkKey(t.Key(), path, t); err != nil {
			return err
		}
		if v.IsNil() {
			return nil
		}
		return w.descend(v, path, func() error {
			iter := v.MapRange()
			for iter.Next() {
				if err := w.check(iter.Value(), fmt.Sprintf("%s[%v]", path, iter.Key()), depth+1); err != nil {
					return err
				}
			}
			return nil
		})

	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return nil
		}
		for i := 0; i < v.Len(); i++ {
			if err := w.check(v.Index(i), fmt.Sprintf("%s[%d]", path, i), depth+1); err != nil {
				return err
			}
		}
		return nil

	case reflect.Struct:
		return w.checkStruct(v, t, path, depth)

	default:
		return nil
	}
}

func (w *validator) checkStruct(v reflect.Value, t reflect.Type, path string, depth int) error {
	if opaque(t) {
		return shapeErr(path, t, "opaque struct (no exported fields, no marshaler)")
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() && !f.Anonymous {
			continue
		}
		if w.rules.tag != "" && f.Tag.Get(w.rules.tag) == "-" {
			continue
		}
		fv := v.Field(i)
		if f.Anonymous && !f.IsExported() {
			if fv.Kind() == reflect.Pointer && !fv.IsNil() {
				fv = fv.Elem()
			}
			if fv.Kind() != reflect.Struct {
				continue
			}
		}
		if err := w.check(fv, path+"."+f.Name, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func (w *validator) checkKey(k reflect.Type, path string, t reflect.Type) error {
	switch {
	case w.rules.stringKeys && k.Kind() != reflect.String:
		return shapeErr(path, t, w.rules.name+" map keys must be strings")
	case w.rules.textKeys && !integerOrString(k.Kind()) && !k.Implements(textMarshaler):
		return shapeErr(path, t, w.rules.name+" map keys must be strings, integers or text marshalers")
	}

	return nil
}

// descend marks the pointer or map v as on the current path for fn.
func (w *validator) descend(v reflect.Value, path string, fn func() error) error {
	key := onPathKey{addr: v.Pointer(), typ: v.Type()}
	if _, ok := w.onPath[key]; ok {
		return shapeErr(path, v.Type(), "reference cycle")
	}
	w.onPath[key] = struct{}{}
	defer delete(w.onPath, key)

	return fn()
}

func hasMarshaler(t reflect.Type, leaves []reflect.Type) bool {
	pt := reflect.PointerTo(t)
	for _, m := range leaves {
		if t.Implements(m) || pt.Implements(m) {
			return true
		}
	}

	return false
}

// opaque reports whether t has fields but none a codec can see.
func opaque(t reflect.Type) bool {
	if t.NumField() == 0 {
		return false
	}
	for _, f := range reflect.VisibleFields(t) {
		if f.IsExported() {
			return false
		}
	}

	return true
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
