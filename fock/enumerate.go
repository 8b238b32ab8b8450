// SPDX-License-Identifier: MIT
// Package: photonic/fock
//
// enumerate.go — lazy enumeration of the m-mode, n-photon Fock space.

package fock

import (
	"iter"

	"gonum.org/v1/gonum/stat/combin"
)

// Count returns the number of m-mode states holding n photons, C(n+m-1, n).
// It returns 0 when m <= 0 or n < 0.
func Count(m, n int) int {
	if m <= 0 || n < 0 {
		return 0
	}

	return combin.Binomial(n+m-1, n)
}

// All yields every m-mode state with n photons exactly once, in descending
// lexicographic order. Yielded states own their storage. Nothing is yielded
// when m <= 0 or n < 0.
// Complexity: O(m) per state.
func All(m, n int) iter.Seq[BasicState] {
	return func(yield func(BasicState) bool) {
		if m <= 0 || n < 0 {
			return
		}
		if n == 0 {
			if v, err := Vacuum(m); err == nil {
				yield(v)
			}
			return
		}
		buf := make([]int, m)
		var rec func(k, left int) bool
		rec = func(k, left int) bool {
			if k == m-1 {
				buf[k] = left
				return yield(BasicState{n: append([]int(nil), buf...)})
			}
			for v := left; v >= 0; v-- {
				buf[k] = v
				if !rec(k+1, left-v) {
					return false
				}
			}
			return true
		}
		rec(0, n)
	}
}

// Index returns the position of s within All(s.M(), s.N()).
// Complexity: O(m·n).
func Index(s BasicState) int { return IndexOccupations(s.n) }

// IndexOccupations is Index over a raw occupation vector.
func IndexOccupations(ns []int) int {
	left := 0
	for _, v := range ns {
		left += v
	}
	m, idx := len(ns), 0
	for k := 0; k < m-1; k++ {
		// states with a larger count in mode k come first
		for v := left; v > ns[k]; v-- {
			idx += Count(m-k-1, left-v)
		}
		left -= ns[k]
	}

	return idx
}
