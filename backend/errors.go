// SPDX-License-Identifier: MIT
// Package: photonic/backend
//
// errors.go — sentinel errors for simulation backends.
//
// Unitary problems surface as matrix.ErrNonSquare / matrix.ErrNonUnitary and
// unresolved parameters as symbolic.ErrUnbound; both are wrapped, not replaced.

package backend

import "errors"

var (
	// ErrUnknownBackend indicates a backend identifier absent from the registry.
	ErrUnknownBackend = errors.New("backend: unknown backend")

	// ErrDuplicateBackend indicates Register was called twice for one name.
	ErrDuplicateBackend = errors.New("backend: backend already registered")

	// ErrModeMismatch indicates a state whose mode count differs from the unitary's.
	ErrModeMismatch = errors.New("backend: mode count mismatch")

	// ErrPhotonMismatch indicates input and output states with different photon
	// counts. Amplitude reports it; Prob maps it to probability 0.
	ErrPhotonMismatch = errors.New("backend: photon count mismatch")

	// ErrEmptyDistribution indicates sampling found no state with positive probability.
	ErrEmptyDistribution = errors.New("backend: empty distribution")
)
