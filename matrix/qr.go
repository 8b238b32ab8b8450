// SPDX-License-Identifier: MIT
// Package: matrix
//
// qr.go — complex Householder QR of a square matrix.

package matrix

import (
	"math"
	"math/cmplx"
)

// QR returns a unitary Q and an upper-triangular R with m = Q×R.
// Column k is reflected onto −e^{i·arg(m[k][k])}·‖m[k:,k]‖·e_k, so R's
// diagonal carries phases and Q×diag(R_kk/|R_kk|) is Haar distributed when m
// is complex Gaussian.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³) time, O(n²) memory.
func QR(m *Dense) (*Dense, *Dense, error) {
	if m == nil {
		return nil, nil, matrixErrorf("QR", ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, nil, matrixErrorf("QR", ErrNonSquare)
	}
	n := m.r
	r := m.Clone()
	acc, _ := Identity(n) // H_k ⋯ H_1
	v := make([]complex128, n)

	for k := 0; k < n; k++ {
		norm := 0.0
		for i := k; i < n; i++ {
			z := r.data[i*n+k]
			norm += real(z)*real(z) + imag(z)*imag(z)
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}
		pivot := r.data[k*n+k]
		phase := complex(1, 0)
		if pivot != 0 {
			phase = pivot / complex(cmplx.Abs(pivot), 0)
		}
		alpha := -phase * complex(norm, 0)

		for i := range v {
			v[i] = 0
		}
		for i := k; i < n; i++ {
			v[i] = r.data[i*n+k]
		}
		v[k] -= alpha
		beta := 0.0
		for i := k; i < n; i++ {
			beta += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		}
		if beta == 0 {
			continue
		}
		tau := complex(2/beta, 0)

		reflect(r, v, tau, k, k)
		reflect(acc, v, tau, k, 0)
	}

	q, _ := Dagger(acc)

	return q, r, nil
}

// reflect applies I − τ·v·v† to rows k.. of a, columns from..n-1.
func reflect(a *Dense, v []complex128, tau complex128, k, from int) {
	n := a.c
	for j := from; j < n; j++ {
		var s complex128
		for i := k; i < a.r; i++ {
			s += cmplx.Conj(v[i]) * a.data[i*n+j]
		}
		s *= tau
		for i := k; i < a.r; i++ {
			a.data[i*n+j] -= v[i] * s
		}
	}
}
