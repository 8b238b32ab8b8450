// SPDX-License-Identifier: MIT
// Package: photonic/lib
//
// arg.go — number-or-parameter arguments for component constructors.

package lib

import (
	"fmt"
	"math"

	"github.com/katalvlaran/photonic/circuit"
	"github.com/katalvlaran/photonic/param"
)

// Arg is either a plain number or a parameter handle. The zero Arg is unset.
type Arg struct {
	v   float64
	p   *param.Parameter
	set bool
}

// Value passes a number; the component stores it as a fixed parameter.
func Value(x float64) Arg {
	if math.IsNaN(x) {
		panic("lib: Value(NaN)")
	}
	return Arg{v: x, set: true}
}

// Param passes a shared parameter handle. Panics on nil.
func Param(p *param.Parameter) Arg {
	if p == nil {
		panic("lib: Param(nil)")
	}
	return Arg{p: p, set: true}
}

// IsSet reports whether the argument was given.
func (a Arg) IsSet() bool { return a.set }

// Spec describes one keyed argument of a component.
type Spec struct {
	Key      string
	Default  float64
	Min, Max float64
	Periodic bool
}

// Angle is a periodic [0, 2π) argument.
func Angle(key string, def float64) Spec {
	return Spec{Key: key, Default: def, Min: 0, Max: param.TwoPi, Periodic: true}
}

// Unit is a [0, 1] argument such as a reflectivity.
func Unit(key string, def float64) Spec {
	return Spec{Key: key, Default: def, Min: 0, Max: 1}
}

// Resolve turns a (possibly unset) argument into a circuit.Arg. Unset means
// the default value; numbers become fixed parameters; handles receive the
// declared bounds when they have none. Numbers outside non-periodic bounds fail
// with param.ErrRange. Nothing is mutated when Resolve fails.
func Resolve(s Spec, a Arg) (circuit.Arg, error) {
	r, err := check(s, a)
	if err != nil {
		return circuit.Arg{}, err
	}
	if err := bind(s, a); err != nil {
		return circuit.Arg{}, err
	}

	return r, nil
}

// ResolveAll resolves specs[i] against args[i]. Every argument is validated,
// and the handles are checked for duplicate names, before any handle
// receives its declared bounds.
func ResolveAll(specs []Spec, args []Arg) ([]circuit.Arg, error) {
	out := make([]circuit.Arg, len(specs))
	handles := make([]*param.Parameter, 0, len(specs))
	for i, s := range specs {
		r, err := check(s, args[i])
		if err != nil {
			return nil, err
		}
		out[i] = r
		if args[i].p != nil {
			handles = append(handles, args[i].p)
		}
	}
	if err := param.CheckUnique(handles...); err != nil {
		return nil, err
	}
	for i, s := range specs {
		if err := bind(s, args[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// check validates a against s without touching the handle.
func check(s Spec, a Arg) (circuit.Arg, error) {
	switch {
	case !a.set:
		return circuit.Arg{Key: s.Key, Param: param.Fixed(s.Key, s.Default)}, nil
	case a.p != nil:
		if v, ok := a.p.Value(); ok && !a.p.IsFixed() && !a.p.HasBounds() && !s.Periodic && (v < s.Min || v > s.Max) {
			return circuit.Arg{}, fmt.Errorf("%s=%g not in [%g, %g]: %w", s.Key, v, s.Min, s.Max, param.ErrRange)
		}
		return circuit.Arg{Key: s.Key, Param: a.p}, nil
	}
	v := a.v
	if !s.Periodic && (v < s.Min || v > s.Max) {
		return circuit.Arg{}, fmt.Errorf("%s=%g not in [%g, %g]: %w", s.Key, v, s.Min, s.Max, param.ErrRange)
	}

	return circuit.Arg{Key: s.Key, Param: param.Fixed(s.Key, v)}, nil
}

// bind installs the declared bounds on an unbounded handle.
func bind(s Spec, a Arg) error {
	if a.p == nil {
		return nil
	}
	if err := a.p.ApplyDefaultBounds(s.Min, s.Max, s.Periodic); err != nil {
		return fmt.Errorf("%s: %w", s.Key, err)
	}

	return nil
}
