// SPDX-License-Identifier: MIT
// Package: photonic/symbolic
//
// errors.go — sentinel errors for expression evaluation.

package symbolic

import "errors"

var (
	// ErrUnbound indicates numeric evaluation reached a free parameter.
	ErrUnbound = errors.New("symbolic: unbound parameter")

	// ErrShape indicates incompatible symbolic matrix shapes.
	ErrShape = errors.New("symbolic: shape mismatch")
)
