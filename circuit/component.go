// SPDX-License-Identifier: MIT
// Package: photonic/circuit
//
// component.go — leaf elements: parametrised components, fixed unitaries and
// permutations.

package circuit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/photonic/matrix"
	"github.com/katalvlaran/photonic/param"
	"github.com/katalvlaran/photonic/symbolic"
)

// Builder returns the component's local matrix from its keyed parameter
// expressions. It must return an m×m matrix for every key set it was declared with.
type Builder func(p map[string]symbolic.Expr) *symbolic.Matrix

// Arg binds a builder key ("theta", "phi_a", ...) to a parameter.
type Arg struct {
	Key   string
	Param *param.Parameter
}

// Component is a leaf element.
type Component struct {
	name   string
	m      int
	args   []Arg
	build  Builder
	hidden bool // opaque block: Describe omits arguments
}

// NewComponent validates and returns a leaf component.
// Errors: ErrInvalidModes, ErrNilElement (nil builder or parameter),
// param.ErrDuplicate (two distinct variables sharing a name).
func NewComponent(name string, m int, build Builder, args ...Arg) (*Component, error) {
	if m <= 0 {
		return nil, fmt.Errorf("NewComponent(%s, m=%d): %w", name, m, ErrInvalidModes)
	}
	if build == nil {
		return nil, fmt.Errorf("NewComponent(%s): builder: %w", name, ErrNilElement)
	}
	ps := make([]*param.Parameter, 0, len(args))
	seen := make(map[string]struct{}, len(args))
	for _, a := range args {
		if a.Param == nil {
			return nil, fmt.Errorf("NewComponent(%s): parameter %q: %w", name, a.Key, ErrNilElement)
		}
		if _, dup := seen[a.Key]; dup {
			return nil, fmt.Errorf("NewComponent(%s): key %q twice: %w", name, a.Key, param.ErrDuplicate)
		}
		seen[a.Key] = struct{}{}
		ps = append(ps, a.Param)
	}
	if err := param.CheckUnique(ps...); err != nil {
		return nil, fmt.Errorf("NewComponent(%s): %w", name, err)
	}
	own := make([]Arg, len(args))
	copy(own, args)

	return &Component{name: name, m: m, args: own, build: build}, nil
}

// NewUnitary wraps a fixed unitary as an opaque leaf.
// Errors: matrix.ErrNonSquare, matrix.ErrNonUnitary (tolerance matrix.DefaultEpsilon).
func NewUnitary(name string, u *matrix.Dense) (*Component, error) {
	if err := matrix.ValidateUnitary(u, matrix.DefaultEpsilon); err != nil {
		return nil, fmt.Errorf("NewUnitary(%s): %w", name, err)
	}
	fixed := symbolic.FromDense(u)
	c, err := NewComponent(name, u.Rows(), func(map[string]symbolic.Expr) *symbolic.Matrix { return fixed.Clone() })
	if err != nil {
		return nil, err
	}
	c.hidden = true

	return c, nil
}

// NewPerm returns the permutation leaf sending input mode i to output mode perm[i].
func NewPerm(perm []int) (*Component, error) {
	m := len(perm)
	if m == 0 {
		return nil, fmt.Errorf("NewPerm(%v): %w", perm, ErrInvalidModes)
	}
	seen := make([]bool, m)
	for _, p := range perm {
		if p < 0 || p >= m || seen[p] {
			return nil, fmt.Errorf("NewPerm(%v): %w", perm, ErrInvalidPermutation)
		}
		seen[p] = true
	}
	own := make([]int, m)
	copy(own, perm)
	c, err := NewComponent("PERM", m, func(map[string]symbolic.Expr) *symbolic.Matrix {
		u, _ := symbolic.NewMatrix(m, m)
		for i, p := range own {
			u.Set(p, i, symbolic.One)
		}
		return u
	})
	if err != nil {
		return nil, err
	}
	c.hidden = true

	return c, nil
}

// M returns the mode count.
func (c *Component) M() int { return c.m }

// Name returns the display label.
func (c *Component) Name() string { return c.name }

// Param returns the parameter bound to key.
func (c *Component) Param(key string) (*param.Parameter, bool) {
	for _, a := range c.args {
		if a.Key == key {
			return a.Param, true
		}
	}

	return nil, false
}

// Args returns a copy of the keyed parameters in declaration order.
func (c *Component) Args() []Arg {
	out := make([]Arg, len(c.args))
	copy(out, c.args)

	return out
}

// Parameters returns the distinct variable parameters in declaration order.
func (c *Component) Parameters() []*param.Parameter {
	s := param.NewSet()
	for _, a := range c.args {
		if !a.Param.IsFixed() {
			s.Add(a.Param)
		}
	}

	return s.Items()
}

// ComputeSymbolic evaluates the builder with bound parameters folded to
// constants and free ones kept as variables.
func (c *Component) ComputeSymbolic() (*symbolic.Matrix, error) {
	env := make(map[string]symbolic.Expr, len(c.args))
	for _, a := range c.args {
		env[a.Key] = symbolic.Of(a.Param)
	}
	u := c.build(env)
	if u == nil || u.Rows() != c.m || u.Cols() != c.m {
		return nil, fmt.Errorf("%s: builder result for m=%d: %w", c.name, c.m, ErrBadUnitaryShape)
	}

	return u, nil
}

// ComputeUnitary evaluates the builder numerically.
// Errors: symbolic.ErrUnbound (wrapped with the parameter name), ErrBadUnitaryShape.
func (c *Component) ComputeUnitary() (*matrix.Dense, error) {
	u, err := c.ComputeSymbolic()
	if err != nil {
		return nil, err
	}
	d, err := u.Numeric()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}

	return d, nil
}

// Depths is 1 on every mode.
func (c *Component) Depths() []int { return ones(c.m) }

// NComponents is 1 for a leaf.
func (c *Component) NComponents() int { return 1 }

// Describe renders the component as NAME(key=value, ...). Variable
// parameters print their name; fixed ones print their value.
func (c *Component) Describe() string {
	if c.hidden || len(c.args) == 0 {
		return c.name
	}
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		v, ok := a.Param.Value()
		switch {
		case a.Param.IsFixed() && ok:
			parts[i] = a.Key + "=" + strconv.FormatFloat(v, 'g', 6, 64)
		default:
			parts[i] = a.Key + "=" + a.Param.Name()
		}
	}

	return c.name + "(" + strings.Join(parts, ", ") + ")"
}

// String is Describe.
func (c *Component) String() string { return c.Describe() }

// Substitute returns a copy of c with parameters replaced according to repl.
func (c *Component) Substitute(repl map[*param.Parameter]*param.Parameter) Element {
	cp := *c
	cp.args = make([]Arg, len(c.args))
	for i, a := range c.args {
		if r, ok := repl[a.Param]; ok && r != nil {
			a.Param = r
		}
		cp.args[i] = a
	}

	return &cp
}
