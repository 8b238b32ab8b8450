// SPDX-License-Identifier: MIT
// Package: photonic/circuit
//
// element.go — the Element capability shared by leaves and circuits.

package circuit

import (
	"github.com/katalvlaran/photonic/matrix"
	"github.com/katalvlaran/photonic/param"
	"github.com/katalvlaran/photonic/symbolic"
)

// Element is anything that can be placed in a Circuit.
type Element interface {
	// M is the number of modes the element acts on.
	M() int
	// Name is a short display label ("BS", "PS", "CPLX", ...).
	Name() string
	// Parameters returns the distinct variable parameters reachable from the
	// element, in first-discovery order.
	Parameters() []*param.Parameter
	// ComputeUnitary returns the numeric M×M unitary; fails with
	// symbolic.ErrUnbound if any parameter has no value.
	ComputeUnitary() (*matrix.Dense, error)
	// ComputeSymbolic returns the unitary with free parameters kept symbolic.
	ComputeSymbolic() (*symbolic.Matrix, error)
	// Depths returns the per-mode placement depth.
	Depths() []int
	// NComponents counts leaf components recursively.
	NComponents() int
	// Describe returns a one-line-per-placement textual description.
	Describe() string
	// Substitute returns a structural copy in which every parameter found in
	// repl is replaced by its mapped value.
	Substitute(repl map[*param.Parameter]*param.Parameter) Element
}

// Must unwraps (v, err), panicking on error. Intended for literals in tests,
// examples and generator functions whose inputs are static.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// Unitary is ComputeUnitary for any element.
func Unitary(e Element) (*matrix.Dense, error) {
	if e == nil {
		return nil, ErrNilElement
	}

	return e.ComputeUnitary()
}

func ones(m int) []int {
	d := make([]int, m)
	for i := range d {
		d[i] = 1
	}

	return d
}
