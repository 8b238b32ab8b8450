// SPDX-License-Identifier: MIT
// Package: photonic/decomposition
//
// errors.go — sentinel errors for unitary decomposition.
//
// Target problems surface as matrix.ErrNilMatrix, matrix.ErrNonSquare and
// matrix.ErrNonUnitary, wrapped with the failing call.

package decomposition

import "errors"

var (
	// ErrBadTemplate indicates a template that is not a 2-mode element with
	// free parameters, or a phase-shifter generator that does not yield a
	// 1-mode element with free parameters.
	ErrBadTemplate = errors.New("decomposition: unusable template")

	// ErrNoSolution indicates a site the template cannot null within
	// precision after every restart. The target may still be decomposable
	// with a more flexible template.
	ErrNoSolution = errors.New("decomposition: no solution for template")

	// ErrDecomposition indicates a residual that is not diagonal after every
	// site was solved.
	ErrDecomposition = errors.New("decomposition: residual is not diagonal")
)
