// SPDX-License-Identifier: MIT
// Package: replica/roundtrip
//
// roundtrip.go — Copier and the Copy / DeepCopy entry points.
// Concurrency:
//   - A Copier is immutable after New; Copy may run concurrently.

package roundtrip

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/replica/clone"
	"github.com/rs/zerolog"
)

// Copier copies values by encoding and decoding them with one codec.
type Copier struct {
	codec    Codec
	maxDepth int
	logger   zerolog.Logger
}

// New creates a Copier. Defaults: JSON codec, DefaultMaxDepth, Nop logger.
func New(opts ...Option) *Copier {
	c := &Copier{
		codec:    JSON(),
		maxDepth: DefaultMaxDepth,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Codec returns the codec in use.
func (c *Copier) Codec() Codec {
	return c.codec
}

// Copy returns a copy of src rebuilt from its serialized form.
//
// Behavior:
//   - Absent src → clone.ErrInvalidArgument.
//   - Unrepresentable shape or codec failure → clone.ErrSerialization.
//   - When T is an interface type, the copy is decoded into the dynamic type
//     of src, so the result keeps it.
//
// Complexity: O(graph size) time and memory for validation, encoding and decoding.
func Copy[T any](c *Copier, src T) (T, error) {
	var zero T
	if isAbsent(src) {
		return zero, fmt.Errorf("roundtrip: Copy: source is absent: %w", clone.ErrInvalidArgument)
	}
	v := reflect.ValueOf(&src).Elem()
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	out, err := c.copyValue(v)
	if err != nil {
		return zero, err
	}
	res := reflect.New(reflect.TypeFor[T]()).Elem()
	res.Set(out)

	return res.Interface().(T), nil
}

// DeepCopy copies src through a fresh JSON Copier.
func DeepCopy[T any](src T) (T, error) {
	return Copy(New(), src)
}

func (c *Copier) copyValue(v reflect.Value) (reflect.Value, error) {
	name := c.codec.Name()
	if err := newValidator(c.codec, c.maxDepth).root(v); err != nil {
		c.logger.Debug().Err(err).Str("codec", name).Msg("round-trip rejected")
		return reflect.Value{}, err
	}

	data, err := c.codec.Marshal(v.Interface())
	if err != nil {
		return reflect.Value{}, codecErr(name, "encode", err)
	}
	c.logger.Debug().Str("codec", name).Str("type", v.Type().String()).Int("bytes", len(data)).Msg("round-trip encoded")

	t := v.Type()
	target := t
	if t.Kind() == reflect.Pointer {
		target = t.Elem()
	}
	dst := reflect.New(target)
	if err := c.codec.Unmarshal(data, dst.Interface()); err != nil {
		return reflect.Value{}, codecErr(name, "decode", err)
	}
	if t.Kind() == reflect.Pointer {
		return dst, nil
	}

	return dst.Elem(), nil
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
