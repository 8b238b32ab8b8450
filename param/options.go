// SPDX-License-Identifier: MIT
// Package: photonic/param
//
// options.go — functional options for New.
//
// Defaults (single source of truth):
//   - unbounded: min=-Inf, max=+Inf
//   - non-periodic
//   - unbound (free)

package param

import "math"

// TwoPi is the default upper bound of angle-like parameters.
const TwoPi = 2 * math.Pi

const (
	panicValueNaN     = "param: WithValue: value must not be NaN"
	panicBoundsOrder  = "param: WithBounds: min must be <= max and not NaN"
	panicPeriodicSpan = "param: WithPeriodic: requires finite bounds"
)

// Option configures a Parameter at construction time.
type Option func(*options)

type options struct {
	value    float64
	hasValue bool
	min, max float64
	periodic bool
}

// WithValue binds the parameter to v at construction.
// Panics if v is NaN.
func WithValue(v float64) Option {
	if math.IsNaN(v) {
		panic(panicValueNaN)
	}
	return func(o *options) {
		o.value = v
		o.hasValue = true
	}
}

// WithBounds declares the closed interval [min, max].
// Panics if min > max or either is NaN.
func WithBounds(min, max float64) Option {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		panic(panicBoundsOrder)
	}
	return func(o *options) {
		o.min = min
		o.max = max
	}
}

// WithPeriodic marks the parameter as periodic over its bounds. Must be
// combined with finite bounds; the check happens when options are gathered.
func WithPeriodic() Option {
	return func(o *options) { o.periodic = true }
}

// WithAngle is shorthand for WithBounds(0, 2π) + WithPeriodic().
func WithAngle() Option {
	return func(o *options) {
		o.min = 0
		o.max = TwoPi
		o.periodic = true
	}
}

func gatherOptions(opts ...Option) options {
	o := options{min: math.Inf(-1), max: math.Inf(1)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.periodic && (math.IsInf(o.min, 0) || math.IsInf(o.max, 0)) {
		panic(panicPeriodicSpan)
	}

	return o
}
