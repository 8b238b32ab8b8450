// SPDX-License-Identifier: MIT
// Package: photonic/fock
//
// vector.go — ordered superpositions of basic states.

package fock

import (
	"math"
	"strings"

	"github.com/katalvlaran/photonic/matrix"
)

// StateVector is a superposition Σ a_k |s_k>. Components keep insertion order;
// adding to an existing state accumulates its amplitude. The zero value is empty.
type StateVector struct {
	states []BasicState
	amps   []complex128
	index  map[string]int
}

// NewStateVector returns an empty superposition.
func NewStateVector() *StateVector { return &StateVector{} }

// Add accumulates amp onto s.
func (v *StateVector) Add(s BasicState, amp complex128) {
	if v.index == nil {
		v.index = make(map[string]int)
	}
	k := s.Key()
	if i, ok := v.index[k]; ok {
		v.amps[i] += amp
		return
	}
	v.index[k] = len(v.states)
	v.states = append(v.states, s)
	v.amps = append(v.amps, amp)
}

// Len returns the number of distinct components.
func (v *StateVector) Len() int { return len(v.states) }

// Amplitude returns the amplitude of s (0 when absent).
func (v *StateVector) Amplitude(s BasicState) complex128 {
	if i, ok := v.index[s.Key()]; ok {
		return v.amps[i]
	}

	return 0
}

// Probability returns |amplitude(s)|².
func (v *StateVector) Probability(s BasicState) float64 {
	a := v.Amplitude(s)
	return real(a)*real(a) + imag(a)*imag(a)
}

// Components returns the states and amplitudes in insertion order.
func (v *StateVector) Components() ([]BasicState, []complex128) {
	return append([]BasicState(nil), v.states...), append([]complex128(nil), v.amps...)
}

// Norm returns √Σ|a_k|².
func (v *StateVector) Norm() float64 {
	var s float64
	for _, a := range v.amps {
		s += real(a)*real(a) + imag(a)*imag(a)
	}

	return math.Sqrt(s)
}

// Prune drops components whose probability is at most eps.
func (v *StateVector) Prune(eps float64) {
	states, amps := v.states[:0], v.amps[:0]
	v.index = make(map[string]int, len(v.states))
	for i, s := range v.states {
		a := v.amps[i]
		if real(a)*real(a)+imag(a)*imag(a) <= eps {
			continue
		}
		v.index[s.Key()] = len(states)
		states = append(states, s)
		amps = append(amps, a)
	}
	v.states, v.amps = states, amps
}

// String renders "a1*|s1>+a2*|s2>"; complex amplitudes are parenthesised.
func (v *StateVector) String() string {
	var sb strings.Builder
	for i, s := range v.states {
		a := v.amps[i]
		txt := matrix.FormatComplex(a)
		if math.Abs(real(a)) >= 1e-15 && math.Abs(imag(a)) >= 1e-15 {
			txt = "(" + txt + ")"
		}
		if i > 0 && !strings.HasPrefix(txt, "-") {
			sb.WriteByte('+')
		}
		sb.WriteString(txt)
		sb.WriteByte('*')
		sb.WriteString(s.String())
	}

	return sb.String()
}
