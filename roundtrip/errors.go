// SPDX-License-Identifier: MIT
// Package: replica/roundtrip
//
// errors.go — configuration sentinels and ErrSerialization wrappers.
// Shape and codec failures always match clone.ErrSerialization via errors.Is.

package roundtrip

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/katalvlaran/replica/clone"
)

// ErrUnknownCodec indicates a codec name that is not built in.
var ErrUnknownCodec = errors.New("roundtrip: unknown codec")

// ErrBadConfig indicates a configuration value outside its domain.
var ErrBadConfig = errors.New("roundtrip: invalid configuration")

func shapeErr(path string, t reflect.Type, why string) error {
	return fmt.Errorf("roundtrip: %s (%s): %s: %w", path, t, why, clone.ErrSerialization)
}

func codecErr(codec, stage string, err error) error {
	return fmt.Errorf("roundtrip: %s %s: %w: %w", codec, stage, clone.ErrSerialization, err)
}
