// SPDX-License-Identifier: MIT
// Package: photonic/backend
//
// naive.go — permanent-per-amplitude reference simulator.

package backend

import (
	"fmt"
	"math"

	"github.com/katalvlaran/photonic/fock"
	"github.com/katalvlaran/photonic/matrix"
)

// NaiveName is the registry identifier of the Naive backend.
const NaiveName = "Naive"

// Naive computes every amplitude as a permanent.
type Naive struct {
	core
}

var _ Backend = (*Naive)(nil)

// NewNaive validates u and returns a Naive backend.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNonUnitary.
func NewNaive(u *matrix.Dense, opts ...Option) (*Naive, error) {
	c, err := newCore(NaiveName, u, opts)
	if err != nil {
		return nil, err
	}

	return &Naive{core: c}, nil
}

// Amplitude returns perm(U[out rows, in cols]) / √(Π in! · Π out!).
// Errors: ErrModeMismatch, ErrPhotonMismatch.
// Complexity: O(n!·n) for n photons.
func (b *Naive) Amplitude(in, out fock.BasicState) (complex128, error) {
	if err := b.checkPair(in, out); err != nil {
		return 0, err
	}
	probQueries.WithLabelValues(b.name).Inc()
	if in.N() == 0 {
		return 1, nil
	}
	sub, err := matrix.Submatrix(b.u, out.Modes(), in.Modes())
	if err != nil {
		return 0, fmt.Errorf("%s.Amplitude: %w", b.name, err)
	}
	p, err := Permanent(sub)
	if err != nil {
		return 0, fmt.Errorf("%s.Amplitude: %w", b.name, err)
	}

	return p / complex(math.Sqrt(in.ProductOfFactorials()*out.ProductOfFactorials()), 0), nil
}

// Prob returns |Amplitude|², or 0 for states with different photon counts.
func (b *Naive) Prob(in, out fock.BasicState) (float64, error) {
	return probFromAmplitude(b.Amplitude(in, out))
}

// Evolve computes one permanent per reachable output state.
func (b *Naive) Evolve(in fock.BasicState) (*fock.StateVector, error) {
	if err := b.checkState("Evolve", in); err != nil {
		return nil, err
	}
	v := fock.NewStateVector()
	for out := range b.AllStates(in) {
		a, err := b.Amplitude(in, out)
		if err != nil {
			return nil, err
		}
		v.Add(out, a)
	}
	v.Prune(DefaultPruneEpsilon)

	return v, nil
}

// Sample draws from the full output distribution of in.
func (b *Naive) Sample(in fock.BasicState) (fock.BasicState, error) {
	if err := b.checkState("Sample", in); err != nil {
		return fock.BasicState{}, err
	}
	states, probs, err := Distribution(b, in)
	if err != nil {
		return fock.BasicState{}, err
	}

	return b.sample(states, probs)
}
