// SPDX-License-Identifier: MIT
// Package: matrix
//
// random.go — seeded random unitaries.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - No time-based sources; a nil *rand.Rand selects the default seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.

package matrix

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// DefaultRNGSeed is the seed used when callers pass seed==0 or a nil source.
const DefaultRNGSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultRNGSeed; otherwise the seed verbatim.
func RNGFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomUnitary draws an n×n Haar-random unitary: QR of a complex Gaussian
// matrix with R's diagonal phases folded back into Q.
// Complexity: O(n³).
func RandomUnitary(n int, rng *rand.Rand) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf("RandomUnitary", ErrInvalidDimensions)
	}
	if rng == nil {
		rng = RNGFromSeed(0)
	}
	g, _ := NewDense(n, n)
	for idx := range g.data {
		g.data[idx] = complex(rng.NormFloat64(), rng.NormFloat64()) / math.Sqrt2
	}
	q, r, err := QR(g)
	if err != nil {
		return nil, matrixErrorf("RandomUnitary", err)
	}
	for k := 0; k < n; k++ {
		d := r.data[k*n+k]
		if d == 0 {
			continue
		}
		ph := d / complex(cmplx.Abs(d), 0)
		for i := 0; i < n; i++ {
			q.data[i*n+k] *= ph
		}
	}

	return q, nil
}
