// SPDX-License-Identifier: MIT
// Package: photonic/symbolic
//
// expr.go — expression nodes and smart constructors.

package symbolic

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/katalvlaran/photonic/param"
)

// Expr is an immutable complex-valued expression.
type Expr interface {
	// Eval computes the value with current parameter bindings.
	Eval() (complex128, error)
	// String renders the expression (I denotes the imaginary unit).
	String() string
	// collect appends the parameters referenced by the expression.
	collect(s *param.Set)
}

// Common constants.
var (
	Zero Expr = Const(0)
	One  Expr = Const(1)
	I    Expr = Const(1i)
)

// Const is a complex constant.
type Const complex128

// Real returns a real constant.
func Real(x float64) Expr { return Const(complex(x, 0)) }

func (c Const) Eval() (complex128, error) { return complex128(c), nil }
func (c Const) collect(*param.Set)        {}
func (c Const) String() string            { return formatConst(complex128(c)) }

// Var refers to a parameter; its value is read at evaluation time.
type Var struct{ p *param.Parameter }

// Of returns a constant for a bound parameter and a Var for a free one.
func Of(p *param.Parameter) Expr {
	if v, ok := p.Value(); ok {
		return Real(v)
	}

	return Var{p: p}
}

// VarOf always returns a Var, even for bound parameters.
func VarOf(p *param.Parameter) Expr { return Var{p: p} }

func (v Var) Eval() (complex128, error) {
	x, ok := v.p.Value()
	if !ok {
		return 0, fmt.Errorf("Eval(%q): %w", v.p.Name(), ErrUnbound)
	}

	return complex(x, 0), nil
}
func (v Var) collect(s *param.Set) { s.Add(v.p) }
func (v Var) String() string       { return v.p.Name() }

// Parameter returns the referenced parameter.
func (v Var) Parameter() *param.Parameter { return v.p }

type sum struct{ terms []Expr }

type product struct{ factors []Expr }

type call struct {
	name string
	arg  Expr
	fn   func(complex128) complex128
}

// Add returns the folded sum of terms.
func Add(terms ...Expr) Expr {
	var (
		acc  complex128
		rest []Expr
	)
	for _, t := range terms {
		switch x := t.(type) {
		case Const:
			acc += complex128(x)
		case sum:
			for _, inner := range x.terms {
				if c, ok := inner.(Const); ok {
					acc += complex128(c)
				} else {
					rest = append(rest, inner)
				}
			}
		default:
			rest = append(rest, t)
		}
	}
	if acc != 0 {
		rest = append(rest, Const(acc))
	}
	switch len(rest) {
	case 0:
		return Zero
	case 1:
		return rest[0]
	}

	return sum{terms: rest}
}

// Sub returns a − b.
func Sub(a, b Expr) Expr { return Add(a, Neg(b)) }

// Neg returns −a.
func Neg(a Expr) Expr { return Mul(Const(-1), a) }

// Mul returns the folded product of factors. A zero constant annihilates the product.
func Mul(factors ...Expr) Expr {
	acc := complex128(1)
	var rest []Expr
	for _, f := range factors {
		switch x := f.(type) {
		case Const:
			acc *= complex128(x)
		case product:
			for _, inner := range x.factors {
				if c, ok := inner.(Const); ok {
					acc *= complex128(c)
				} else {
					rest = append(rest, inner)
				}
			}
		default:
			rest = append(rest, f)
		}
	}
	if acc == 0 {
		return Zero
	}
	if len(rest) == 0 {
		return Const(acc)
	}
	if acc != 1 {
		rest = append([]Expr{Const(acc)}, rest...)
	}
	if len(rest) == 1 {
		return rest[0]
	}

	return product{factors: rest}
}

func apply(name string, arg Expr, fn func(complex128) complex128) Expr {
	if c, ok := arg.(Const); ok {
		return Const(fn(complex128(c)))
	}

	return call{name: name, arg: arg, fn: fn}
}

// Sin returns sin(a).
func Sin(a Expr) Expr { return apply("sin", a, realSafe(math.Sin, cmplx.Sin)) }

// Cos returns cos(a).
func Cos(a Expr) Expr { return apply("cos", a, realSafe(math.Cos, cmplx.Cos)) }

// Exp returns exp(a). exp(iθ) is evaluated as cos θ + i sin θ for exact real θ.
func Exp(a Expr) Expr { return apply("exp", a, expSafe) }

// ExpI returns exp(i·a), the phase factor used by every optical element.
func ExpI(a Expr) Expr { return Exp(Mul(I, a)) }

// Sqrt returns the principal square root of a.
func Sqrt(a Expr) Expr { return apply("sqrt", a, realSafe(math.Sqrt, cmplx.Sqrt)) }

// realSafe keeps purely real, in-domain arguments on the float64 path so that
// values like sqrt(1) or cos(0) come out exact.
func realSafe(rf func(float64) float64, cf func(complex128) complex128) func(complex128) complex128 {
	return func(z complex128) complex128 {
		if imag(z) == 0 {
			if r := rf(real(z)); !math.IsNaN(r) {
				return complex(r, 0)
			}
		}
		return cf(z)
	}
}

func expSafe(z complex128) complex128 {
	if real(z) == 0 {
		s, c := math.Sincos(imag(z))
		return complex(c, s)
	}

	return cmplx.Exp(z)
}

func (s sum) Eval() (complex128, error) {
	var acc complex128
	for _, t := range s.terms {
		v, err := t.Eval()
		if err != nil {
			return 0, err
		}
		acc += v
	}

	return acc, nil
}

func (s sum) collect(ps *param.Set) {
	for _, t := range s.terms {
		t.collect(ps)
	}
}

func (s sum) String() string {
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.String()
	}

	return strings.Join(parts, " + ")
}

func (p product) Eval() (complex128, error) {
	acc := complex128(1)
	for _, f := range p.factors {
		v, err := f.Eval()
		if err != nil {
			return 0, err
		}
		acc *= v
	}

	return acc, nil
}

func (p product) collect(ps *param.Set) {
	for _, f := range p.factors {
		f.collect(ps)
	}
}

func (p product) String() string {
	parts := make([]string, 0, len(p.factors))
	for i, f := range p.factors {
		if c, ok := f.(Const); ok && i == 0 && complex128(c) == -1 {
			parts = append(parts, "-")
			continue
		}
		s := f.String()
		if _, ok := f.(sum); ok {
			s = "(" + s + ")"
		}
		parts = append(parts, s)
	}
	out := strings.Join(parts, "*")

	return strings.Replace(out, "-*", "-", 1)
}

func (c call) Eval() (complex128, error) {
	v, err := c.arg.Eval()
	if err != nil {
		return 0, err
	}

	return c.fn(v), nil
}

func (c call) collect(ps *param.Set) { c.arg.collect(ps) }
func (c call) String() string        { return c.name + "(" + c.arg.String() + ")" }

// Parameters lists the parameters referenced by e in discovery order.
func Parameters(e Expr) []*param.Parameter {
	s := param.NewSet()
	e.collect(s)

	return s.Items()
}

// IsConst reports whether e folded to a constant.
func IsConst(e Expr) bool {
	_, ok := e.(Const)
	return ok
}

func formatConst(z complex128) string {
	re, im := real(z), imag(z)
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', 6, 64) }
	switch {
	case im == 0:
		return f(re)
	case re == 0 && im == 1:
		return "I"
	case re == 0 && im == -1:
		return "-I"
	case re == 0:
		return f(im) + "*I"
	}
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}

	return "(" + f(re) + sign + f(im) + "*I)"
}
