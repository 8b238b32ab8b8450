// SPDX-License-Identifier: MIT
// Package: photonic/circuit
//
// errors.go — sentinel errors for the circuit package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context (modes, mode count, element name) with %w.
//   • Parameter and evaluation failures from param/symbolic/matrix are
//     propagated unchanged so errors.Is keeps working across packages.

package circuit

import "errors"

// ErrInvalidPlacement indicates a mode subset that does not fit the element or
// the circuit: wrong length, out of range, or not strictly increasing.
var ErrInvalidPlacement = errors.New("circuit: invalid placement")

// ErrInvalidFloor indicates a composition offset that would place the element
// partly outside the circuit.
var ErrInvalidFloor = errors.New("circuit: invalid interferometer floor")

// ErrInvalidModes indicates a non-positive mode count.
var ErrInvalidModes = errors.New("circuit: mode count must be positive")

// ErrBadUnitaryShape indicates a component builder produced a matrix whose
// shape does not match the component's mode count.
var ErrBadUnitaryShape = errors.New("circuit: unitary shape mismatch")

// ErrInvalidPermutation indicates a PERM vector that is not a permutation of 0..m-1.
var ErrInvalidPermutation = errors.New("circuit: invalid permutation")

// ErrUnknownShape indicates a mesh identifier other than "triangle" or "rectangle".
var ErrUnknownShape = errors.New("circuit: unknown mesh shape")

// ErrNilElement indicates a nil element, builder or parameter.
var ErrNilElement = errors.New("circuit: nil element")
