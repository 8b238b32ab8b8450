// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/unitarity checks here.
//
// Determinism & Performance:
//   - All checks are pure and deterministic.
//   - Unitarity check computes U·U† on the fly, O(n³), allocating nothing.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// DefaultEpsilon defines the tolerance used by unitarity and closeness checks.
const DefaultEpsilon = 1e-9

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateFinite rejects NaN/Inf entries.
func ValidateFinite(m *Dense) error {
	for idx, v := range m.data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return validatorErrorf("ValidateFinite", denseErrorf("At", idx/m.c, idx%m.c, ErrNaNInf))
		}
	}

	return nil
}

// UnitarityDefect returns max |(U·U†)[i][j] − δij| for a square matrix.
// Complexity: O(n³) time, O(1) space.
func UnitarityDefect(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, err
	}
	n := m.r
	worst := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for k := 0; k < n; k++ {
				s += m.data[i*n+k] * cmplx.Conj(m.data[j*n+k])
			}
			if i == j {
				s -= 1
			}
			if d := cmplx.Abs(s); d > worst {
				worst = d
			}
		}
	}

	return worst, nil
}

// IsUnitary reports whether m is square and U·U† = I within eps.
// A non-positive eps selects DefaultEpsilon.
func (m *Dense) IsUnitary(eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	d, err := UnitarityDefect(m)

	return err == nil && d <= eps
}

// ValidateUnitary returns ErrNonUnitary (with the observed defect and size)
// when m is not unitary within eps; shape errors are returned unchanged.
func ValidateUnitary(m *Dense, eps float64) error {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	d, err := UnitarityDefect(m)
	if err != nil {
		return validatorErrorf("ValidateUnitary", err)
	}
	if d > eps {
		return validatorErrorf("ValidateUnitary", fmt.Errorf("%dx%d defect %.3g > %.3g: %w", m.r, m.c, d, eps, ErrNonUnitary))
	}

	return nil
}

// AllClose reports whether |a−b| ≤ atol + rtol·|b| elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf for invalid tolerances.
// Complexity: O(r*c), early exit on first violation.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	if a == nil || b == nil {
		return false, matrixErrorf("AllClose", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return false, matrixErrorf("AllClose", ErrDimensionMismatch)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for idx := range a.data {
		if cmplx.Abs(a.data[idx]-b.data[idx]) > atol+rtol*cmplx.Abs(b.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// IsDiagonal reports whether every off-diagonal entry has magnitude ≤ eps.
func (m *Dense) IsDiagonal(eps float64) bool {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if i != j && cmplx.Abs(m.data[i*m.c+j]) > eps {
				return false
			}
		}
	}

	return true
}
