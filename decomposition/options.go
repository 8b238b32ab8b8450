// SPDX-License-Identifier: MIT
// Package: photonic/decomposition
//
// options.go — functional options for Decompose.

package decomposition

import (
	"math"

	"github.com/katalvlaran/photonic/circuit"
	"go.uber.org/zap"
)

const (
	// DefaultShape is the mesh layout used when WithShape is not given.
	DefaultShape = circuit.Triangle
	// DefaultPrecision bounds the residual of every solved site.
	DefaultPrecision = 1e-9
	// DefaultMaxTry is the number of random restarts per site.
	DefaultMaxTry = 10
	// DefaultMerge inlines solved template circuits into the result.
	DefaultMerge = true
)

// Option configures Decompose.
type Option func(*options)

type options struct {
	shape     circuit.Shape
	ps        circuit.Generator
	precision float64
	maxTry    int
	seed      int64
	logger    *zap.Logger
	merge     bool
}

func gatherOptions(opts ...Option) options {
	o := options{
		shape:     DefaultShape,
		precision: DefaultPrecision,
		maxTry:    DefaultMaxTry,
		logger:    zap.NewNop(),
		merge:     DefaultMerge,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithShape selects the mesh layout. Panics on an unknown Shape value.
func WithShape(s circuit.Shape) Option {
	if s != circuit.Rectangle && s != circuit.Triangle {
		panic("decomposition: WithShape: unknown shape")
	}
	return func(o *options) { o.shape = s }
}

// WithPhaseShifters absorbs the residual diagonal into one generated 1-mode
// element per mode; gen(i) is placed on mode i. Panics on nil.
func WithPhaseShifters(gen circuit.Generator) Option {
	if gen == nil {
		panic("decomposition: WithPhaseShifters: nil generator")
	}
	return func(o *options) { o.ps = gen }
}

// WithPrecision sets the residual tolerance. Panics unless eps > 0.
func WithPrecision(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("decomposition: WithPrecision: precision must be positive and finite")
	}
	return func(o *options) { o.precision = eps }
}

// WithMaxTry sets the number of random restarts per site. Panics if n <= 0.
func WithMaxTry(n int) Option {
	if n <= 0 {
		panic("decomposition: WithMaxTry: n must be positive")
	}
	return func(o *options) { o.maxTry = n }
}

// WithSeed seeds the random starting points (seed 0 selects matrix.DefaultRNGSeed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithLogger sets the logger for per-site debug output; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithMerge controls whether solved template circuits are inlined.
func WithMerge(merge bool) Option {
	return func(o *options) { o.merge = merge }
}
