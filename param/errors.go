// SPDX-License-Identifier: MIT
// Package: photonic/param
//
// errors.go — sentinel errors for parameters.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Call sites attach context (parameter name, bounds) with %w wrapping.
//   - Option constructors (WithX) panic on nonsensical values; nothing else panics.

package param

import (
	"errors"
	"fmt"
)

var (
	// ErrRange indicates that a value lies outside the declared [min, max] bounds.
	ErrRange = errors.New("param: value out of range")

	// ErrDuplicate indicates that two distinct variable parameters sharing one
	// name were found reachable from the same composition.
	ErrDuplicate = errors.New("param: duplicate parameter name")

	// ErrEmptyName indicates that a parameter was created with an empty name.
	ErrEmptyName = errors.New("param: empty name")

	// ErrFixed indicates an attempt to mutate a fixed (constant) parameter.
	ErrFixed = errors.New("param: parameter is fixed")
)

// paramErrorf prefixes err with the operation and parameter name.
func paramErrorf(op, name string, err error) error {
	return fmt.Errorf("%s(%q): %w", op, name, err)
}
