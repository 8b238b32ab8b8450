// SPDX-License-Identifier: MIT
// Package: photonic/circuit
//
// circuit.go — ordered placements, composition and global unitary assembly.

package circuit

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/photonic/matrix"
	"github.com/katalvlaran/photonic/param"
	"github.com/katalvlaran/photonic/symbolic"
)

// DefaultName labels circuits built without WithName.
const DefaultName = "CPLX"

// Placement is one element placed on strictly increasing modes of its parent.
type Placement struct {
	Modes   []int
	Element Element
}

// Circuit is an ordered composition of elements over a fixed number of modes.
// The zero value is not usable; construct with New.
type Circuit struct {
	m          int
	name       string
	placements []Placement
	depths     []int
	err        error // first error recorded by Then/ThenAt
}

// Option configures a Circuit at construction time.
type Option func(*Circuit)

// WithName sets the display label. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("circuit: WithName(\"\")")
	}
	return func(c *Circuit) { c.name = name }
}

// New returns an empty circuit of m modes; its unitary is the identity.
// Errors: ErrInvalidModes.
func New(m int, opts ...Option) (*Circuit, error) {
	if m <= 0 {
		return nil, fmt.Errorf("New(%d): %w", m, ErrInvalidModes)
	}
	c := &Circuit{m: m, name: DefaultName, depths: make([]int, m)}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MustNew is New that panics on error.
func MustNew(m int, opts ...Option) *Circuit { return Must(New(m, opts...)) }

// M returns the mode count.
func (c *Circuit) M() int { return c.m }

// Name returns the display label.
func (c *Circuit) Name() string { return c.name }

// Err returns the first error recorded by a Then/ThenAt chain.
func (c *Circuit) Err() error { return c.err }

// Len returns the number of direct placements.
func (c *Circuit) Len() int { return len(c.placements) }

// Placements returns a copy of the direct placements.
func (c *Circuit) Placements() []Placement {
	out := make([]Placement, len(c.placements))
	for i, p := range c.placements {
		out[i] = Placement{Modes: append([]int(nil), p.Modes...), Element: p.Element}
	}

	return out
}

func (c *Circuit) checkModes(op string, modes []int, e Element) error {
	if len(modes) != e.M() {
		return fmt.Errorf("%s(%v) on %d modes: %s needs %d modes: %w", op, modes, c.m, e.Name(), e.M(), ErrInvalidPlacement)
	}
	for i, md := range modes {
		if md < 0 || md >= c.m || (i > 0 && md <= modes[i-1]) {
			return fmt.Errorf("%s(%v) on %d modes: %w", op, modes, c.m, ErrInvalidPlacement)
		}
	}

	return nil
}

// Add places e on modes. With merge=true a sub-circuit's own placements are
// inlined (remapped into this circuit's modes); otherwise it stays one opaque
// placement. A sub-circuit carrying a recorded error, or one that already
// contains c, is refused. Nothing changes on failure.
// Errors: ErrNilElement, ErrInvalidPlacement, param.ErrDuplicate, sub.Err().
// Complexity: O(P) for the uniqueness walk over P reachable parameters.
func (c *Circuit) Add(modes []int, e Element, merge bool) error {
	if e == nil {
		return fmt.Errorf("Add(%v): %w", modes, ErrNilElement)
	}
	if sub, ok := e.(*Circuit); ok {
		if err := sub.Err(); err != nil {
			return fmt.Errorf("Add(%v, %s): %w", modes, sub.Name(), err)
		}
		if sub.reaches(c) {
			return fmt.Errorf("Add(%v, %s): circuit into itself: %w", modes, sub.Name(), ErrInvalidPlacement)
		}
	}
	if err := c.checkModes("Add", modes, e); err != nil {
		return err
	}
	all := append(c.Parameters(), e.Parameters()...)
	if err := param.CheckUnique(all...); err != nil {
		return fmt.Errorf("Add(%v, %s): %w", modes, e.Name(), err)
	}

	var added []Placement
	if sub, ok := e.(*Circuit); ok && merge {
		for _, p := range sub.placements {
			remapped := make([]int, len(p.Modes))
			for i, md := range p.Modes {
				remapped[i] = modes[md]
			}
			added = append(added, Placement{Modes: remapped, Element: p.Element})
		}
	} else {
		added = []Placement{{Modes: append([]int(nil), modes...), Element: e}}
	}
	for _, p := range added {
		for i, d := range p.Element.Depths() {
			c.depths[p.Modes[i]] += d
		}
	}
	c.placements = append(c.placements, added...)

	return nil
}

// MustAdd is Add(modes, e, true) that panics on error and returns c for chaining.
func (c *Circuit) MustAdd(modes []int, e Element) *Circuit {
	if err := c.Add(modes, e, true); err != nil {
		panic(err)
	}

	return c
}

// AddAt places e (merged) on the consecutive modes offset..offset+e.M()-1.
func (c *Circuit) AddAt(offset int, e Element) error {
	if e == nil {
		return fmt.Errorf("AddAt(%d): %w", offset, ErrNilElement)
	}
	if offset < 0 || offset+e.M() > c.m {
		return fmt.Errorf("AddAt(%d, %s) on %d modes: %w", offset, e.Name(), c.m, ErrInvalidFloor)
	}

	return c.Add(consecutive(offset, e.M()), e, true)
}

// Then appends e on the first e.M() modes. It is the "//" operator: the
// first failure is recorded in Err and later calls become no-ops.
func (c *Circuit) Then(e Element) *Circuit { return c.ThenAt(0, e) }

// ThenAt appends e starting at mode offset. Out of range is ErrInvalidFloor.
func (c *Circuit) ThenAt(offset int, e Element) *Circuit {
	if c.err != nil {
		return c
	}
	c.err = c.AddAt(offset, e)

	return c
}

func consecutive(offset, k int) []int {
	modes := make([]int, k)
	for i := range modes {
		modes[i] = offset + i
	}

	return modes
}

// Parameters returns the distinct variable parameters of every placement,
// in first-discovery order.
func (c *Circuit) Parameters() []*param.Parameter {
	s := param.NewSet()
	for _, p := range c.placements {
		s.Add(p.Element.Parameters()...)
	}

	return s.Items()
}

// ComputeUnitary multiplies the embedded placement unitaries in order.
// An empty circuit yields the identity.
// Errors: symbolic.ErrUnbound, ErrBadUnitaryShape.
// Complexity: O(P · k² · m) for P placements of at most k modes.
func (c *Circuit) ComputeUnitary() (*matrix.Dense, error) {
	acc, err := matrix.Identity(c.m)
	if err != nil {
		return nil, err
	}
	for _, p := range c.placements {
		u, err := p.Element.ComputeUnitary()
		if err != nil {
			return nil, err
		}
		if acc, err = matrix.ApplyLeft(u, acc, p.Modes); err != nil {
			return nil, fmt.Errorf("%s: %w", p.Element.Name(), err)
		}
	}

	return acc, nil
}

// ComputeSymbolic is ComputeUnitary over symbolic matrices.
func (c *Circuit) ComputeSymbolic() (*symbolic.Matrix, error) {
	acc, err := symbolic.Identity(c.m)
	if err != nil {
		return nil, err
	}
	for _, p := range c.placements {
		u, err := p.Element.ComputeSymbolic()
		if err != nil {
			return nil, err
		}
		if acc, err = symbolic.ApplyLeft(u, acc, p.Modes); err != nil {
			return nil, fmt.Errorf("%s: %w", p.Element.Name(), err)
		}
	}

	return acc, nil
}

// Depths returns a copy of the per-mode depth counters.
func (c *Circuit) Depths() []int { return append([]int(nil), c.depths...) }

// NComponents sums the leaf counts of every placement.
func (c *Circuit) NComponents() int {
	n := 0
	for _, p := range c.placements {
		n += p.Element.NComponents()
	}

	return n
}

// reaches reports whether target is c or is nested, unmerged, anywhere below c.
func (c *Circuit) reaches(target *Circuit) bool {
	if c == target {
		return true
	}
	for _, p := range c.placements {
		if sub, ok := p.Element.(*Circuit); ok && sub.reaches(target) {
			return true
		}
	}

	return false
}

// Leaves yields every leaf component with its absolute modes, descending into
// unmerged sub-circuits.
func (c *Circuit) Leaves() iter.Seq2[[]int, *Component] {
	return func(yield func([]int, *Component) bool) {
		c.leaves(nil, yield)
	}
}

func (c *Circuit) leaves(outer []int, yield func([]int, *Component) bool) bool {
	for _, p := range c.placements {
		modes := p.Modes
		if outer != nil {
			modes = make([]int, len(p.Modes))
			for i, md := range p.Modes {
				modes[i] = outer[md]
			}
		} else {
			modes = append([]int(nil), modes...)
		}
		switch e := p.Element.(type) {
		case *Component:
			if !yield(modes, e) {
				return false
			}
		case *Circuit:
			if !e.leaves(modes, yield) {
				return false
			}
		}
	}

	return true
}

// Describe renders the circuit header and one line per placement.
func (c *Circuit) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%d)", c.name, c.m)
	for _, p := range c.placements {
		desc := strings.ReplaceAll(p.Element.Describe(), "\n", "\n  ")
		fmt.Fprintf(&sb, "\n  %v %s", p.Modes, desc)
	}

	return sb.String()
}

// String is Describe.
func (c *Circuit) String() string { return c.Describe() }

// Substitute returns a deep structural copy with parameters replaced.
func (c *Circuit) Substitute(repl map[*param.Parameter]*param.Parameter) Element {
	cp := &Circuit{m: c.m, name: c.name, depths: c.Depths(), err: c.err}
	cp.placements = make([]Placement, len(c.placements))
	for i, p := range c.placements {
		cp.placements[i] = Placement{Modes: append([]int(nil), p.Modes...), Element: p.Element.Substitute(repl)}
	}

	return cp
}
