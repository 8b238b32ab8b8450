// SPDX-License-Identifier: MIT
// Package: photonic/param
//
// parameter.go — the Parameter value and its mutation rules.

package param

import (
	"math"
	"strconv"
	"strings"
)

// Parameter is a named scalar shared by reference across components.
// The zero value is not usable; construct with New or Fixed.
type Parameter struct {
	name     string
	value    float64
	bound    bool
	min, max float64
	fixed    bool
	periodic bool
}

// New creates a variable parameter. Without WithValue it is free (unbound).
// Returns ErrEmptyName for an empty name and ErrRange when the initial value
// violates the requested bounds.
func New(name string, opts ...Option) (*Parameter, error) {
	if name == "" {
		return nil, paramErrorf("New", name, ErrEmptyName)
	}
	cfg := gatherOptions(opts...)

	p := &Parameter{
		name:     name,
		min:      cfg.min,
		max:      cfg.max,
		periodic: cfg.periodic,
	}
	if cfg.hasValue {
		if err := p.SetValue(cfg.value); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// MustNew is New that panics on error. Intended for literals in tests and examples.
func MustNew(name string, opts ...Option) *Parameter {
	p, err := New(name, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// Fixed creates a constant parameter bound to v. Fixed parameters are exempt
// from the duplicate-name check and reject SetValue.
func Fixed(name string, v float64) *Parameter {
	return &Parameter{
		name:  name,
		value: v,
		bound: true,
		min:   math.Inf(-1),
		max:   math.Inf(1),
		fixed: true,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Value returns the bound value and whether one is assigned.
func (p *Parameter) Value() (float64, bool) { return p.value, p.bound }

// IsBound reports whether a concrete value is assigned.
func (p *Parameter) IsBound() bool { return p.bound }

// IsFixed reports whether the parameter is a constant.
func (p *Parameter) IsFixed() bool { return p.fixed }

// IsFree reports whether the parameter is variable and currently unbound.
func (p *Parameter) IsFree() bool { return !p.fixed && !p.bound }

// IsPeriodic reports whether values are reduced modulo (max-min) on SetValue.
func (p *Parameter) IsPeriodic() bool { return p.periodic }

// Bounds returns the declared [min, max] interval (±Inf when unbounded).
func (p *Parameter) Bounds() (float64, float64) { return p.min, p.max }

// HasBounds reports whether both bounds are finite.
func (p *Parameter) HasBounds() bool {
	return !math.IsInf(p.min, 0) && !math.IsInf(p.max, 0)
}

// SetValue assigns v. Periodic parameters are first reduced into [min, max).
// Returns ErrFixed for constants and ErrRange when v is NaN or out of bounds;
// on error the previous value is kept.
func (p *Parameter) SetValue(v float64) error {
	if p.fixed {
		return paramErrorf("SetValue", p.name, ErrFixed)
	}
	if p.periodic && p.HasBounds() {
		v = wrap(v, p.min, p.max)
	}
	if math.IsNaN(v) || v < p.min || v > p.max {
		return paramErrorf("SetValue", p.name, ErrRange)
	}
	p.value = v
	p.bound = true

	return nil
}

// Reset unbinds a variable parameter. Fixed parameters are left untouched.
func (p *Parameter) Reset() {
	if p.fixed {
		return
	}
	p.value = 0
	p.bound = false
}

// ApplyDefaultBounds installs [min, max] (and periodicity) on a variable
// parameter that was created without bounds. An already bound value is
// re-validated against the new bounds; on failure the bounds are rolled back.
func (p *Parameter) ApplyDefaultBounds(min, max float64, periodic bool) error {
	if p.fixed || p.HasBounds() {
		return nil
	}
	oldMin, oldMax, oldPeriodic := p.min, p.max, p.periodic
	p.min, p.max, p.periodic = min, max, periodic
	if p.bound {
		if err := p.SetValue(p.value); err != nil {
			p.min, p.max, p.periodic = oldMin, oldMax, oldPeriodic
			return err
		}
	}

	return nil
}

// String renders the parameter as P(name='phi', value=0, min_v=0, max_v=6.283185307179586).
func (p *Parameter) String() string {
	var sb strings.Builder
	sb.WriteString("P(name='")
	sb.WriteString(p.name)
	sb.WriteString("'")
	if p.bound {
		sb.WriteString(", value=")
		sb.WriteString(formatFloat(p.value))
	}
	if !math.IsInf(p.min, 0) {
		sb.WriteString(", min_v=")
		sb.WriteString(formatFloat(p.min))
	}
	if !math.IsInf(p.max, 0) {
		sb.WriteString(", max_v=")
		sb.WriteString(formatFloat(p.max))
	}
	sb.WriteString(")")

	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// wrap reduces v into [lo, hi). The upper bound itself is kept as-is so that
// a full turn (2π) stays representable when explicitly requested.
func wrap(v, lo, hi float64) float64 {
	if v >= lo && v <= hi {
		return v
	}
	period := hi - lo
	if period <= 0 {
		return v
	}
	r := math.Mod(v-lo, period)
	if r < 0 {
		r += period
	}

	return lo + r
}
