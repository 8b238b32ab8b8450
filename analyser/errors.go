// SPDX-License-Identifier: MIT
// Package: photonic/analyser
//
// errors.go — sentinel errors for probability tables.
//
// States whose mode count differs from the backend's fail with
// backend.ErrModeMismatch; malformed literals with fock.ErrBadLiteral.

package analyser

import "errors"

var (
	// ErrNilBackend indicates New was called without a backend.
	ErrNilBackend = errors.New("analyser: nil backend")

	// ErrNoInputs indicates an empty input state list.
	ErrNoInputs = errors.New("analyser: no input states")

	// ErrDuplicateState indicates the same state listed twice as input or output.
	ErrDuplicateState = errors.New("analyser: duplicate state")

	// ErrIndex indicates a row or column outside the table.
	ErrIndex = errors.New("analyser: index out of range")

	// ErrBadSelector indicates an output selector literal that cannot be parsed.
	ErrBadSelector = errors.New("analyser: bad output selector")
)
