// SPDX-License-Identifier: MIT
// Package: photonic/circuit
//
// mesh.go — generic interferometers (triangle and rectangle meshes).
//
// Layouts (0-based modes, block k couples (j, j+1)):
//   • Rectangle: m columns; column c couples the pairs j ≡ c (mod 2).
//   • Triangle:  for i=1..m-1, j=0..m-1-i; pair (j, j+1) appears m-1-j times.
//     Row i holds m-i blocks, so rows grow as i descends toward 1 and the
//     staircase is anchored at pair (0, 1).
// Both full meshes hold m(m-1)/2 blocks. For either shape WithDepth(d) skips
// any block that would push one of its modes beyond d blocks; it is a
// per-mode limit, not a row or column count.

package circuit

import (
	"fmt"
	"strings"
)

// Shape selects a mesh layout.
type Shape int

const (
	// Rectangle is the alternating-parity (Clements) layout.
	Rectangle Shape = iota
	// Triangle is the staircase (Reck) layout.
	Triangle
)

// DefaultShape is used when WithShape is not given.
const DefaultShape = Rectangle

// String returns the identifier accepted by ParseShape.
func (s Shape) String() string {
	switch s {
	case Rectangle:
		return "rectangle"
	case Triangle:
		return "triangle"
	}

	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape resolves "triangle" or "rectangle" (case-insensitive).
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangle":
		return Rectangle, nil
	case "triangle":
		return Triangle, nil
	}

	return 0, fmt.Errorf("ParseShape(%q): %w", s, ErrUnknownShape)
}

// Generator returns the element for the idx-th block (or phase shifter).
type Generator func(idx int) Element

// MeshOption configures GenericInterferometer.
type MeshOption func(*meshOptions)

type meshOptions struct {
	shape Shape
	depth int // 0 = unlimited
	ps    Generator
	name  string
}

// WithShape selects the layout. Panics on an unknown Shape value.
func WithShape(s Shape) MeshOption {
	if s != Rectangle && s != Triangle {
		panic("circuit: WithShape: unknown shape")
	}
	return func(o *meshOptions) { o.shape = s }
}

// WithDepth limits every mode to at most d blocks, in both shapes.
// Panics if d <= 0.
func WithDepth(d int) MeshOption {
	if d <= 0 {
		panic("circuit: WithDepth: depth must be positive")
	}
	return func(o *meshOptions) { o.depth = d }
}

// WithPhaseShifters prepends one single-mode element per mode, produced by gen(mode).
// Panics on nil.
func WithPhaseShifters(gen Generator) MeshOption {
	if gen == nil {
		panic("circuit: WithPhaseShifters(nil)")
	}
	return func(o *meshOptions) { o.ps = gen }
}

// WithMeshName sets the resulting circuit's label.
func WithMeshName(name string) MeshOption {
	if name == "" {
		panic("circuit: WithMeshName(\"\")")
	}
	return func(o *meshOptions) { o.name = name }
}

// MeshPairs returns the upper modes j of the (j, j+1) blocks in mesh order.
func MeshPairs(m int, shape Shape, depth int) []int {
	var pairs []int
	count := make([]int, m)
	try := func(j int) {
		if depth > 0 && (count[j] >= depth || count[j+1] >= depth) {
			return
		}
		count[j]++
		count[j+1]++
		pairs = append(pairs, j)
	}
	switch shape {
	case Triangle:
		for i := 1; i < m; i++ {
			for j := 0; j <= m-1-i; j++ {
				try(j)
			}
		}
	default:
		for col := 0; col < m; col++ {
			for j := col % 2; j+1 < m; j += 2 {
				try(j)
			}
		}
	}

	return pairs
}

// GenericInterferometer builds an m-mode mesh whose 2-mode blocks are gen(0),
// gen(1), ... in placement order.
// Errors: ErrInvalidModes, ErrNilElement, ErrInvalidPlacement (a generated
// element of the wrong size), param.ErrDuplicate.
func GenericInterferometer(m int, gen Generator, opts ...MeshOption) (*Circuit, error) {
	if gen == nil {
		return nil, fmt.Errorf("GenericInterferometer: %w", ErrNilElement)
	}
	o := meshOptions{shape: DefaultShape, name: DefaultName}
	for _, opt := range opts {
		opt(&o)
	}
	c, err := New(m, WithName(o.name))
	if err != nil {
		return nil, fmt.Errorf("GenericInterferometer: %w", err)
	}
	if o.ps != nil {
		for md := 0; md < m; md++ {
			if err := c.Add([]int{md}, o.ps(md), true); err != nil {
				return nil, fmt.Errorf("GenericInterferometer: phase shifter %d: %w", md, err)
			}
		}
	}
	for idx, j := range MeshPairs(m, o.shape, o.depth) {
		if err := c.Add([]int{j, j + 1}, gen(idx), true); err != nil {
			return nil, fmt.Errorf("GenericInterferometer: block %d: %w", idx, err)
		}
	}

	return c, nil
}
