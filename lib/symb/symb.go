// SPDX-License-Identifier: MIT
// Package: photonic/lib/symb
//
// symb.go — symmetric-convention components.

package symb

import (
	"fmt"
	"math"

	"github.com/katalvlaran/photonic/circuit"
	"github.com/katalvlaran/photonic/lib"
	"github.com/katalvlaran/photonic/symbolic"
)

// Option sets one beam-splitter argument.
type Option func(*bsArgs)

type bsArgs struct {
	theta, r, phi lib.Arg
}

// Theta sets the mixing angle.
func Theta(a lib.Arg) Option { return func(b *bsArgs) { b.theta = a } }

// R sets the reflectivity (exclusive with Theta).
func R(a lib.Arg) Option { return func(b *bsArgs) { b.r = a } }

// Phi sets the phase.
func Phi(a lib.Arg) Option { return func(b *bsArgs) { b.phi = a } }

// BS returns a symmetric beam splitter.
// Errors: lib.ErrConflictingArgs, param.ErrRange, param.ErrDuplicate.
func BS(opts ...Option) (*circuit.Component, error) {
	var a bsArgs
	for _, opt := range opts {
		opt(&a)
	}
	if a.theta.IsSet() && a.r.IsSet() {
		return nil, fmt.Errorf("symb.BS: R and theta: %w", lib.ErrConflictingArgs)
	}
	phi := lib.Angle("phi", 0)
	if a.r.IsSet() {
		args, err := lib.ResolveAll([]lib.Spec{lib.Unit("R", 0.5), phi}, []lib.Arg{a.r, a.phi})
		if err != nil {
			return nil, fmt.Errorf("symb.BS: %w", err)
		}
		return circuit.NewComponent("BS", 2, func(p map[string]symbolic.Expr) *symbolic.Matrix {
			return bsMatrix(symbolic.Sqrt(p["R"]), symbolic.Sqrt(symbolic.Sub(symbolic.One, p["R"])), p["phi"])
		}, args...)
	}
	args, err := lib.ResolveAll([]lib.Spec{lib.Angle("theta", math.Pi/4), phi}, []lib.Arg{a.theta, a.phi})
	if err != nil {
		return nil, fmt.Errorf("symb.BS: %w", err)
	}

	return circuit.NewComponent("BS", 2, func(p map[string]symbolic.Expr) *symbolic.Matrix {
		cos, sin := cosSin(p["theta"])
		return bsMatrix(cos, sin, p["phi"])
	}, args...)
}

// cosSin returns cos θ and sin θ, with both set to √½ exactly at θ = π/4 so
// that two balanced splitters compose to an exact swap.
func cosSin(theta symbolic.Expr) (symbolic.Expr, symbolic.Expr) {
	if symbolic.IsConst(theta) {
		if v, _ := theta.Eval(); v == complex(math.Pi/4, 0) {
			h := symbolic.Real(math.Sqrt(0.5))
			return h, h
		}
	}

	return symbolic.Cos(theta), symbolic.Sin(theta)
}

func bsMatrix(cos, sin, phi symbolic.Expr) *symbolic.Matrix {
	return symbolic.MustFromRows([][]symbolic.Expr{
		{cos, symbolic.Mul(symbolic.I, symbolic.ExpI(symbolic.Neg(phi)), sin)},
		{symbolic.Mul(symbolic.I, symbolic.ExpI(phi), sin), cos},
	})
}

// PS returns a phase shifter e^{iφ}.
func PS(phi lib.Arg) (*circuit.Component, error) {
	args, err := lib.ResolveAll([]lib.Spec{lib.Angle("phi", 0)}, []lib.Arg{phi})
	if err != nil {
		return nil, fmt.Errorf("symb.PS: %w", err)
	}

	return circuit.NewComponent("PS", 1, func(p map[string]symbolic.Expr) *symbolic.Matrix {
		return symbolic.MustFromRows([][]symbolic.Expr{{symbolic.ExpI(p["phi"])}})
	}, args...)
}

// PBS returns a polarizing beam splitter on (0H, 0V, 1H, 1V).
func PBS() (*circuit.Component, error) {
	z, o, i := symbolic.Zero, symbolic.One, symbolic.I
	u := symbolic.MustFromRows([][]symbolic.Expr{
		{z, z, i, z},
		{z, o, z, z},
		{i, z, z, z},
		{z, z, z, o},
	})

	return circuit.NewComponent("PBS", 4, func(map[string]symbolic.Expr) *symbolic.Matrix { return u.Clone() })
}

// PERM returns the permutation sending mode i to perm[i].
func PERM(perm []int) (*circuit.Component, error) { return circuit.NewPerm(perm) }
