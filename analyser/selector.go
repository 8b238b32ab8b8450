// SPDX-License-Identifier: MIT
// Package: photonic/analyser
//
// selector.go — output state policies.

package analyser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/photonic/fock"
)

// Wildcard is the selector literal for AllStates.
const Wildcard = "*"

// Selector decides the output columns of a table.
type Selector interface {
	resolve(m int, inputs []fock.BasicState) []fock.BasicState
	wildcard() bool
}

type stateList []fock.BasicState

func (s stateList) resolve(int, []fock.BasicState) []fock.BasicState {
	return slices.Clone([]fock.BasicState(s))
}
func (stateList) wildcard() bool { return false }

type sameAsInputs struct{}

func (sameAsInputs) resolve(_ int, inputs []fock.BasicState) []fock.BasicState {
	return slices.Clone(inputs)
}
func (sameAsInputs) wildcard() bool { return false }

type allStates struct{}

func (allStates) resolve(m int, inputs []fock.BasicState) []fock.BasicState {
	counts := make([]int, 0, len(inputs))
	for _, in := range inputs {
		counts = append(counts, in.N())
	}
	slices.Sort(counts)
	counts = slices.Compact(counts)

	var out []fock.BasicState
	for _, n := range counts {
		for s := range fock.All(m, n) {
			out = append(out, s)
		}
	}

	return out
}
func (allStates) wildcard() bool { return true }

// States selects an explicit list of output states.
func States(states ...fock.BasicState) Selector { return stateList(slices.Clone(states)) }

// SameAsInputs uses the input states as outputs.
func SameAsInputs() Selector { return sameAsInputs{} }

// AllStates selects every state with the photon count of some input.
func AllStates() Selector { return allStates{} }

// ParseSelector accepts Wildcard, an empty string (SameAsInputs) or
// whitespace-separated state literals such as "|1,0> |0,1>".
// Errors: ErrBadSelector wrapping fock.ErrBadLiteral.
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	switch s {
	case Wildcard:
		return AllStates(), nil
	case "":
		return SameAsInputs(), nil
	}
	var states []fock.BasicState
	for _, lit := range strings.Fields(s) {
		st, err := fock.Parse(lit)
		if err != nil {
			return nil, fmt.Errorf("ParseSelector(%q): %w: %w", s, ErrBadSelector, err)
		}
		states = append(states, st)
	}

	return stateList(states), nil
}
