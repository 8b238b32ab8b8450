// SPDX-License-Identifier: MIT
// Package: photonic/fock
//
// errors.go — sentinel errors for Fock states.

package fock

import "errors"

var (
	// ErrBadLiteral indicates a state literal that is not of the form |n1,...,nk>.
	ErrBadLiteral = errors.New("fock: bad state literal")

	// ErrNegativeOccupation indicates a negative photon count.
	ErrNegativeOccupation = errors.New("fock: negative occupation")

	// ErrNoModes indicates a state with zero modes.
	ErrNoModes = errors.New("fock: state needs at least one mode")
)
