// SPDX-License-Identifier: MIT
// Package matrix — linear algebra kernels over complex Dense matrices.
//
// Determinism & Policy:
//   - Fixed loop orders (i→k→j) so results are bit-reproducible.
//   - Operands are never mutated; every kernel allocates exactly one result.

package matrix

import (
	"fmt"
	"math/cmplx"
)

const (
	opMul       = "Mul"
	opDagger    = "Dagger"
	opEmbed     = "Embed"
	opApplyLeft = "ApplyLeft"
)

// Mul returns the matrix product a×b.
// Errors: ErrNilMatrix, ErrDimensionMismatch when a.Cols != b.Rows.
// Complexity: O(r*n*c). Zero entries of a are skipped.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	res := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	var (
		i, j, k int
		av      complex128
	)
	for i = 0; i < a.r; i++ {
		rowA := i * a.c
		rowR := i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB := k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Dagger returns the conjugate transpose m†.
// Complexity: O(r*c).
func Dagger(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opDagger, ErrNilMatrix)
	}
	res := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return res, nil
}

// validateModes checks that modes has len == k, lies in [0,n) and is strictly increasing.
func validateModes(n, k int, modes []int) error {
	if len(modes) != k {
		return fmt.Errorf("%d modes for a %dx%d block: %w", len(modes), k, k, ErrDimensionMismatch)
	}
	for idx, md := range modes {
		if md < 0 || md >= n {
			return fmt.Errorf("mode %d not in [0,%d): %w", md, n, ErrOutOfRange)
		}
		if idx > 0 && md <= modes[idx-1] {
			return fmt.Errorf("modes %v not strictly increasing: %w", modes, ErrOutOfRange)
		}
	}

	return nil
}

// Embed places the square block u into an n×n identity at the given modes:
// out[modes[a]][modes[b]] = u[a][b].
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrOutOfRange.
// Complexity: O(n^2 + k^2).
func Embed(u *Dense, n int, modes []int) (*Dense, error) {
	if u == nil {
		return nil, matrixErrorf(opEmbed, ErrNilMatrix)
	}
	if !u.IsSquare() {
		return nil, matrixErrorf(opEmbed, ErrNonSquare)
	}
	if err := validateModes(n, u.r, modes); err != nil {
		return nil, matrixErrorf(opEmbed, err)
	}
	out, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opEmbed, err)
	}
	for a, ra := range modes {
		out.data[ra*n+ra] = 0
		for b, cb := range modes {
			out.data[ra*n+cb] = u.data[a*u.c+b]
		}
	}

	return out, nil
}

// ApplyLeft returns Embed(u, acc.Rows(), modes) × acc without materialising
// the embedding: only the rows listed in modes change.
// Complexity: O(k^2 * c) instead of O(n^2 * c).
func ApplyLeft(u, acc *Dense, modes []int) (*Dense, error) {
	if u == nil || acc == nil {
		return nil, matrixErrorf(opApplyLeft, ErrNilMatrix)
	}
	if !u.IsSquare() {
		return nil, matrixErrorf(opApplyLeft, ErrNonSquare)
	}
	if err := validateModes(acc.r, u.r, modes); err != nil {
		return nil, matrixErrorf(opApplyLeft, err)
	}
	res := acc.Clone()
	k := u.r
	for a := 0; a < k; a++ {
		row := modes[a] * acc.c
		for j := 0; j < acc.c; j++ {
			var s complex128
			for b := 0; b < k; b++ {
				s += u.data[a*k+b] * acc.data[modes[b]*acc.c+j]
			}
			res.data[row+j] = s
		}
	}

	return res, nil
}

// ApplyRight returns acc × Embed(u, acc.Cols(), modes); only the listed columns change.
// Complexity: O(k^2 * r).
func ApplyRight(acc, u *Dense, modes []int) (*Dense, error) {
	if u == nil || acc == nil {
		return nil, matrixErrorf("ApplyRight", ErrNilMatrix)
	}
	if !u.IsSquare() {
		return nil, matrixErrorf("ApplyRight", ErrNonSquare)
	}
	if err := validateModes(acc.c, u.r, modes); err != nil {
		return nil, matrixErrorf("ApplyRight", err)
	}
	res := acc.Clone()
	k := u.r
	for i := 0; i < acc.r; i++ {
		row := i * acc.c
		for b := 0; b < k; b++ {
			var s complex128
			for a := 0; a < k; a++ {
				s += acc.data[row+modes[a]] * u.data[a*k+b]
			}
			res.data[row+modes[b]] = s
		}
	}

	return res, nil
}

// Submatrix gathers rows[i], cols[j] into a len(rows)×len(cols) matrix.
// Indices may repeat; this is how photon multiplicities are expanded.
func Submatrix(m *Dense, rows, cols []int) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("Submatrix", ErrNilMatrix)
	}
	if len(rows) == 0 || len(cols) == 0 {
		return nil, matrixErrorf("Submatrix", ErrInvalidDimensions)
	}
	out := &Dense{r: len(rows), c: len(cols), data: make([]complex128, len(rows)*len(cols))}
	for i, ri := range rows {
		if ri < 0 || ri >= m.r {
			return nil, matrixErrorf("Submatrix", denseErrorf("Submatrix", ri, 0, ErrOutOfRange))
		}
		for j, cj := range cols {
			if cj < 0 || cj >= m.c {
				return nil, matrixErrorf("Submatrix", denseErrorf("Submatrix", ri, cj, ErrOutOfRange))
			}
			out.data[i*out.c+j] = m.data[ri*m.c+cj]
		}
	}

	return out, nil
}
