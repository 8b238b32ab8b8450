// SPDX-License-Identifier: MIT
// Package: photonic/backend
//
// permanent.go — matrix permanents.

package backend

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/photonic/matrix"
)

// Permanent computes perm(a) = Σ_σ Π_i a[i][σ(i)] by direct expansion.
// The 0×0 permanent is 1 and is requested with a nil matrix.
// Errors: matrix.ErrNonSquare.
// Complexity: O(n!·n) time, O(n) space.
func Permanent(a *matrix.Dense) (complex128, error) {
	if a == nil {
		return 1, nil
	}
	if !a.IsSquare() {
		return 0, fmt.Errorf("Permanent: %w", matrix.ErrNonSquare)
	}
	permanentsComputed.Inc()
	n := a.Rows()
	used := make([]bool, n)
	var expand func(row int) complex128
	expand = func(row int) complex128 {
		if row == n {
			return 1
		}
		var s complex128
		for col := 0; col < n; col++ {
			if used[col] {
				continue
			}
			x := a.Elem(row, col)
			if x == 0 {
				continue
			}
			used[col] = true
			s += x * expand(row+1)
			used[col] = false
		}
		return s
	}

	return expand(0), nil
}

// PermanentGlynn computes the permanent with Glynn's formula, walking the
// sign vectors δ (δ_0 = +1) in Gray-code order:
//
//	perm(a) = 2^{1-n} Σ_δ (Π_k δ_k) Π_j Σ_i δ_i a[i][j]
//
// Errors: matrix.ErrNonSquare.
// Complexity: O(2ⁿ·n) time, O(n) space.
func PermanentGlynn(a *matrix.Dense) (complex128, error) {
	if a == nil {
		return 1, nil
	}
	if !a.IsSquare() {
		return 0, fmt.Errorf("PermanentGlynn: %w", matrix.ErrNonSquare)
	}
	n := a.Rows()
	sums := make([]complex128, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			sums[j] += a.Elem(i, j)
		}
	}
	delta := make([]float64, n)
	for i := range delta {
		delta[i] = 1
	}
	prod := func() complex128 {
		p := complex128(1)
		for _, s := range sums {
			p *= s
		}
		return p
	}
	total := prod()
	sign := 1.0
	for k := uint(1); k < 1<<(n-1); k++ {
		row := bits.TrailingZeros(k) + 1
		delta[row] = -delta[row]
		f := complex(2*delta[row], 0)
		for j := 0; j < n; j++ {
			sums[j] += f * a.Elem(row, j)
		}
		sign = -sign
		total += complex(sign, 0) * prod()
	}

	return total / complex(float64(uint(1)<<(n-1)), 0), nil
}
