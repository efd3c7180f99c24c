// SPDX-License-Identifier: MIT
// Package: replica/registry
//
// errors.go — registry-specific sentinels. Unsupported types and absent
// sources reuse clone.ErrUnsupportedType / clone.ErrInvalidArgument so callers
// branch the same way on every copy path.

package registry

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/katalvlaran/replica/clone"
)

// ErrTooDeep indicates the graph nests deeper than the configured limit.
var ErrTooDeep = errors.New("registry: graph nests too deep")

func unsupportedf(path string, t reflect.Type, why string) error {
	return fmt.Errorf("registry: %s (%s): %s: %w", path, t, why, clone.ErrUnsupportedType)
}

func strategyErr(path string, err error) error {
	return fmt.Errorf("registry: %s: %w", path, err)
}
