// SPDX-License-Identifier: MIT
// Package: photonic/backend
//
// slos.go — strong linear optical simulation.
//
// For an input with photons in modes j_1 ≤ … ≤ j_n, each creation operator
// maps as a†_j → Σ_i U[i][j] a†_i. Starting from the vacuum and applying the
// photons one at a time,
//
//	T_{k+1}[s + e_i] += T_k[s] · U[i][j_{k+1}] · √(s_i + 1)
//
// gives after n steps √(Π_k in_k!) · ⟨out|U|in⟩ for every n-photon output at
// once. T_k depends only on the prefix j_1..j_k, so tables are cached by
// prefix and shared between inputs.

package backend

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/photonic/fock"
	"github.com/katalvlaran/photonic/matrix"
)

// SLOSName is the registry identifier of the SLOS backend.
const SLOSName = "SLOS"

// SLOS computes whole output distributions by successive creation operators.
type SLOS struct {
	core
	cache map[string][]complex128 // prefix of input photon modes → T_k in All(m, k) order
}

var _ Backend = (*SLOS)(nil)

// NewSLOS validates u and returns a SLOS backend.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNonUnitary.
func NewSLOS(u *matrix.Dense, opts ...Option) (*SLOS, error) {
	c, err := newCore(SLOSName, u, opts)
	if err != nil {
		return nil, err
	}

	return &SLOS{core: c, cache: make(map[string][]complex128)}, nil
}

// CacheSize returns the number of memoised partial tables.
func (b *SLOS) CacheSize() int { return len(b.cache) }

// ClearCache drops every memoised table.
func (b *SLOS) ClearCache() { b.cache = make(map[string][]complex128) }

func prefixKey(modes []int) string {
	var sb strings.Builder
	for i, md := range modes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(md))
	}

	return sb.String()
}

// table returns the unnormalised amplitudes of every output of in, indexed
// like fock.All(m, in.N()).
// Complexity: O(n · m · C(n+m-1, n)) without cache hits.
func (b *SLOS) table(in fock.BasicState) []complex128 {
	modes := in.Modes()
	start := 0
	cur := []complex128{1}
	for k := len(modes); k > 0; k-- {
		if t, ok := b.cache[prefixKey(modes[:k])]; ok {
			slosCacheHits.Inc()
			start, cur = k, t
			break
		}
	}
	m := b.u.Rows()
	for k := start; k < len(modes); k++ {
		cur = b.step(cur, m, k, modes[k])
		b.cache[prefixKey(modes[:k+1])] = cur
	}

	return cur
}

// step applies a†_j to every k-photon state of prev.
func (b *SLOS) step(prev []complex128, m, k, j int) []complex128 {
	next := make([]complex128, fock.Count(m, k+1))
	idx := 0
	for s := range fock.All(m, k) {
		a := prev[idx]
		idx++
		if a == 0 {
			continue
		}
		occ := s.Occupations()
		for i := 0; i < m; i++ {
			uij := b.u.Elem(i, j)
			if uij == 0 {
				continue
			}
			f := math.Sqrt(float64(occ[i] + 1))
			occ[i]++
			next[fock.IndexOccupations(occ)] += a * uij * complex(f, 0)
			occ[i]--
		}
	}

	return next
}

// Amplitude returns ⟨out|U|in⟩ from the (cached) distribution of in.
// Errors: ErrModeMismatch, ErrPhotonMismatch.
func (b *SLOS) Amplitude(in, out fock.BasicState) (complex128, error) {
	if err := b.checkPair(in, out); err != nil {
		return 0, err
	}
	probQueries.WithLabelValues(b.name).Inc()
	t := b.table(in)

	return t[fock.Index(out)] / complex(math.Sqrt(in.ProductOfFactorials()), 0), nil
}

// Prob returns |Amplitude|², or 0 for states with different photon counts.
func (b *SLOS) Prob(in, out fock.BasicState) (float64, error) {
	return probFromAmplitude(b.Amplitude(in, out))
}

// Evolve returns the full output superposition in one pass.
func (b *SLOS) Evolve(in fock.BasicState) (*fock.StateVector, error) {
	if err := b.checkState("Evolve", in); err != nil {
		return nil, err
	}
	t := b.table(in)
	norm := complex(math.Sqrt(in.ProductOfFactorials()), 0)
	v := fock.NewStateVector()
	idx := 0
	for out := range b.AllStates(in) {
		v.Add(out, t[idx]/norm)
		idx++
	}
	v.Prune(DefaultPruneEpsilon)

	return v, nil
}

// Sample draws from the distribution of in computed in one pass.
func (b *SLOS) Sample(in fock.BasicState) (fock.BasicState, error) {
	if err := b.checkState("Sample", in); err != nil {
		return fock.BasicState{}, err
	}
	t := b.table(in)
	pof := in.ProductOfFactorials()
	states := make([]fock.BasicState, 0, len(t))
	probs := make([]float64, 0, len(t))
	idx := 0
	for out := range b.AllStates(in) {
		states = append(states, out)
		probs = append(probs, abs2(t[idx])/pof)
		idx++
	}

	return b.sample(states, probs)
}
