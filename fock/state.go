// SPDX-License-Identifier: MIT
// Package: photonic/fock
//
// state.go — the BasicState value type and its literal syntax.

package fock

import (
	"fmt"
	"strconv"
	"strings"
)

// BasicState is an occupation vector. The zero value has no modes.
type BasicState struct {
	n []int
}

// New returns the state with the given occupation numbers.
// Errors: ErrNoModes, ErrNegativeOccupation.
func New(ns ...int) (BasicState, error) {
	if len(ns) == 0 {
		return BasicState{}, fmt.Errorf("New: %w", ErrNoModes)
	}
	own := make([]int, len(ns))
	for i, v := range ns {
		if v < 0 {
			return BasicState{}, fmt.Errorf("New: mode %d holds %d: %w", i, v, ErrNegativeOccupation)
		}
		own[i] = v
	}

	return BasicState{n: own}, nil
}

// MustNew is New that panics on error.
func MustNew(ns ...int) BasicState {
	s, err := New(ns...)
	if err != nil {
		panic(err)
	}

	return s
}

// Vacuum returns the m-mode state with no photons.
func Vacuum(m int) (BasicState, error) { return New(make([]int, m)...) }

// Parse reads a ket literal such as "|1,0>". Spaces around numbers are allowed.
func Parse(s string) (BasicState, error) {
	t := strings.TrimSpace(s)
	if len(t) < 3 || t[0] != '|' || t[len(t)-1] != '>' {
		return BasicState{}, fmt.Errorf("Parse(%q): %w", s, ErrBadLiteral)
	}
	fields := strings.Split(t[1:len(t)-1], ",")
	ns := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || v < 0 {
			return BasicState{}, fmt.Errorf("Parse(%q): field %d: %w", s, i, ErrBadLiteral)
		}
		ns[i] = v
	}

	return New(ns...)
}

// MustParse is Parse that panics on error.
func MustParse(s string) BasicState {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return st
}

// M returns the number of modes.
func (s BasicState) M() int { return len(s.n) }

// N returns the total photon count.
func (s BasicState) N() int {
	total := 0
	for _, v := range s.n {
		total += v
	}

	return total
}

// At returns the occupation of mode k.
func (s BasicState) At(k int) int { return s.n[k] }

// Occupations returns a copy of the occupation vector.
func (s BasicState) Occupations() []int { return append([]int(nil), s.n...) }

// Modes expands the state to one entry per photon: |2,0,1> → [0, 0, 2].
func (s BasicState) Modes() []int {
	out := make([]int, 0, s.N())
	for k, v := range s.n {
		for ; v > 0; v-- {
			out = append(out, k)
		}
	}

	return out
}

// ProductOfFactorials returns Π n_k!.
func (s BasicState) ProductOfFactorials() float64 {
	p := 1.0
	for _, v := range s.n {
		for f := 2; f <= v; f++ {
			p *= float64(f)
		}
	}

	return p
}

// Equal reports content equality.
func (s BasicState) Equal(o BasicState) bool {
	if len(s.n) != len(o.n) {
		return false
	}
	for i := range s.n {
		if s.n[i] != o.n[i] {
			return false
		}
	}

	return true
}

// Key returns a comparable representation for map keys.
func (s BasicState) Key() string { return s.String() }

// String renders the ket literal "|n1,...,nk>".
func (s BasicState) String() string {
	var sb strings.Builder
	sb.WriteByte('|')
	for i, v := range s.n {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('>')

	return sb.String()
}
