// SPDX-License-Identifier: MIT
// Package: photonic/lib/phys
//
// phys.go — physical-convention components.

package phys

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
	r, theta, phiA, phiB, phiD lib.Arg
}

// R sets the reflectivity cos²θ.
func R(a lib.Arg) Option { return func(b *bsArgs) { b.r = a } }

// Theta sets the mixing angle (exclusive with R).
func Theta(a lib.Arg) Option { return func(b *bsArgs) { b.theta = a } }

// PhiA sets the phase on the upper reflected path.
func PhiA(a lib.Arg) Option { return func(b *bsArgs) { b.phiA = a } }

// PhiB sets the phase on the transmitted path.
func PhiB(a lib.Arg) Option { return func(b *bsArgs) { b.phiB = a } }

// PhiD sets the phase on the lower reflected path.
func PhiD(a lib.Arg) Option { return func(b *bsArgs) { b.phiD = a } }

var phaseSpecs = []lib.Spec{
	lib.Angle("phi_a", 0),
	lib.Angle("phi_b", 3*math.Pi/2),
	lib.Angle("phi_d", math.Pi),
}

// BS returns a physical beam splitter.
// Errors: lib.ErrConflictingArgs, param.ErrRange, param.ErrDuplicate.
func BS(opts ...Option) (*circuit.Component, error) {
	var a bsArgs
	for _, opt := range opts {
		opt(&a)
	}
	if a.theta.IsSet() && a.r.IsSet() {
		return nil, fmt.Errorf("phys.BS: R and theta: %w", lib.ErrConflictingArgs)
	}
	phases := []lib.Arg{a.phiA, a.phiB, a.phiD}
	if a.theta.IsSet() {
		args, err := lib.ResolveAll(append([]lib.Spec{lib.Angle("theta", math.Pi/4)}, phaseSpecs...), append([]lib.Arg{a.theta}, phases...))
		if err != nil {
			return nil, fmt.Errorf("phys.BS: %w", err)
		}
		return circuit.NewComponent("BS", 2, func(p map[string]symbolic.Expr) *symbolic.Matrix {
			return bsMatrix(symbolic.Cos(p["theta"]), symbolic.Sin(p["theta"]), p)
		}, args...)
	}
	args, err := lib.ResolveAll(append([]lib.Spec{lib.Unit("R", 0.5)}, phaseSpecs...), append([]lib.Arg{a.r}, phases...))
	if err != nil {
		return nil, fmt.Errorf("phys.BS: %w", err)
	}

	return circuit.NewComponent("BS", 2, func(p map[string]symbolic.Expr) *symbolic.Matrix {
		return bsMatrix(symbolic.Sqrt(p["R"]), symbolic.Sqrt(symbolic.Sub(symbolic.One, p["R"])), p)
	}, args...)
}

func bsMatrix(cos, sin symbolic.Expr, p map[string]symbolic.Expr) *symbolic.Matrix {
	a, b, d := p["phi_a"], p["phi_b"], p["phi_d"]
	return symbolic.MustFromRows([][]symbolic.Expr{
		{symbolic.Mul(cos, symbolic.ExpI(a)), symbolic.Mul(symbolic.I, sin, symbolic.ExpI(b))},
		{symbolic.Mul(symbolic.I, sin, symbolic.ExpI(symbolic.Add(a, symbolic.Neg(b), d))), symbolic.Mul(cos, symbolic.ExpI(d))},
	})
}

// PS returns a phase shifter e^{iφ}.
func PS(phi lib.Arg) (*circuit.Component, error) {
	args, err := lib.ResolveAll([]lib.Spec{lib.Angle("phi", 0)}, []lib.Arg{phi})
	if err != nil {
		return nil, fmt.Errorf("phys.PS: %w", err)
	}

	return circuit.NewComponent("PS", 1, func(p map[string]symbolic.Expr) *symbolic.Matrix {
		return symbolic.MustFromRows([][]symbolic.Expr{{symbolic.ExpI(p["phi"])}})
	}, args...)
}

// PBS returns a polarizing beam splitter on (0H, 0V, 1H, 1V).
func PBS() (*circuit.Component, error) {
	z, o := symbolic.Zero, symbolic.One
	u := symbolic.MustFromRows([][]symbolic.Expr{
		{z, z, o, z},
		{z, o, z, z},
		{o, z, z, z},
		{z, z, z, o},
	})

	return circuit.NewComponent("PBS", 4, func(map[string]symbolic.Expr) *symbolic.Matrix { return u.Clone() })
}

// WP returns a wave plate of retardance δ with fast axis at angle ξ.
func WP(delta, xsi lib.Arg) (*circuit.Component, error) { return waveplate("WP", delta, xsi) }

// HWP returns a half-wave plate at angle ξ.
func HWP(xsi lib.Arg) (*circuit.Component, error) {
	return waveplate("HWP", lib.Value(math.Pi/2), xsi)
}

// QWP returns a quarter-wave plate at angle ξ.
func QWP(xsi lib.Arg) (*circuit.Component, error) {
	return waveplate("QWP", lib.Value(math.Pi/4), xsi)
}

func waveplate(name string, delta, xsi lib.Arg) (*circuit.Component, error) {
	args, err := lib.ResolveAll([]lib.Spec{lib.Angle("delta", 0), lib.Angle("xsi", 0)}, []lib.Arg{delta, xsi})
	if err != nil {
		return nil, fmt.Errorf("phys.%s: %w", name, err)
	}

	return circuit.NewComponent(name, 2, func(p map[string]symbolic.Expr) *symbolic.Matrix {
		d, x2 := p["delta"], symbolic.Mul(symbolic.Real(2), p["xsi"])
		cd, isd := symbolic.Cos(d), symbolic.Mul(symbolic.I, symbolic.Sin(d))
		diag := symbolic.Mul(isd, symbolic.Cos(x2))
		off := symbolic.Mul(isd, symbolic.Sin(x2))
		return symbolic.MustFromRows([][]symbolic.Expr{
			{symbolic.Add(cd, diag), off},
			{off, symbolic.Sub(cd, diag)},
		})
	}, args...)
}

// PR returns a polarization rotator by δ.
func PR(delta lib.Arg) (*circuit.Component, error) {
	args, err := lib.ResolveAll([]lib.Spec{lib.Angle("delta", 0)}, []lib.Arg{delta})
	if err != nil {
		return nil, fmt.Errorf("phys.PR: %w", err)
	}

	return circuit.NewComponent("PR", 2, func(p map[string]symbolic.Expr) *symbolic.Matrix {
		c, s := symbolic.Cos(p["delta"]), symbolic.Sin(p["delta"])
		return symbolic.MustFromRows([][]symbolic.Expr{{c, s}, {symbolic.Neg(s), c}})
	}, args...)
}

// PERM returns the permutation sending mode i to perm[i].
func PERM(perm []int) (*circuit.Component, error) { return circuit.NewPerm(perm) }
