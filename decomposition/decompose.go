// SPDX-License-Identifier: MIT
// Package: photonic/decomposition
//
// decompose.go — Decompose and the two nulling schedules.

package decomposition

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/photonic/circuit"
	"github.com/katalvlaran/photonic/matrix"
	"github.com/katalvlaran/photonic/param"
	"go.uber.org/zap"
)

// plan is the outcome of a nulling schedule: template sites in circuit
// order, the residual diagonal, and where its phase layer goes.
type plan struct {
	blocks      []site
	diag        []complex128
	phasesFirst bool
}

// Decompose returns a circuit of solved template copies whose unitary equals
// target (up to per-mode phases unless WithPhaseShifters is given).
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNonUnitary,
// ErrBadTemplate, ErrNoSolution, ErrDecomposition.
// Complexity: n(n-1)/2 site solves, each O(maxTry · evaluations).
func Decompose(target *matrix.Dense, template circuit.Element, opts ...Option) (*circuit.Circuit, error) {
	o := gatherOptions(opts...)
	if err := validate(target, template, o); err != nil {
		return nil, err
	}
	s := &solver{
		rng:       matrix.RNGFromSeed(o.seed),
		precision: o.precision,
		maxTry:    o.maxTry,
		log:       o.logger,
	}

	var (
		p   plan
		err error
	)
	switch o.shape {
	case circuit.Triangle:
		p, err = triangle(s, target, template)
	default:
		p, err = rectangle(s, target, template)
	}
	if err != nil {
		runsTotal.WithLabelValues(o.shape.String(), "failed").Inc()
		return nil, fmt.Errorf("Decompose(%s): %w", o.shape, err)
	}

	c, err := assemble(s, target.Rows(), p, o)
	if err != nil {
		runsTotal.WithLabelValues(o.shape.String(), "failed").Inc()
		return nil, fmt.Errorf("Decompose(%s): %w", o.shape, err)
	}
	runsTotal.WithLabelValues(o.shape.String(), "solved").Inc()
	o.logger.Debug("decomposition complete",
		zap.String("shape", o.shape.String()),
		zap.Int("modes", c.M()),
		zap.Int("components", c.NComponents()))

	return c, nil
}

func validate(target *matrix.Dense, template circuit.Element, o options) error {
	if target == nil {
		return fmt.Errorf("Decompose: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(target); err != nil {
		return fmt.Errorf("Decompose: %w", err)
	}
	if template == nil {
		return fmt.Errorf("Decompose: nil template: %w", ErrBadTemplate)
	}
	if template.M() != 2 {
		return fmt.Errorf("Decompose: template %s has %d modes, want 2: %w",
			template.Name(), template.M(), ErrBadTemplate)
	}
	if len(param.Free(template.Parameters())) == 0 {
		return fmt.Errorf("Decompose: template %s has no free parameters: %w",
			template.Name(), ErrBadTemplate)
	}
	if err := matrix.ValidateUnitary(target, math.Max(o.precision, matrix.DefaultEpsilon)); err != nil {
		return fmt.Errorf("Decompose: %w", err)
	}

	return nil
}

func daggerLeft(t, acc *matrix.Dense, modes []int) (*matrix.Dense, error) {
	td, err := matrix.Dagger(t)
	if err != nil {
		return nil, err
	}

	return matrix.ApplyLeft(td, acc, modes)
}

func daggerRight(acc, t *matrix.Dense, modes []int) (*matrix.Dense, error) {
	td, err := matrix.Dagger(t)
	if err != nil {
		return nil, err
	}

	return matrix.ApplyRight(acc, td, modes)
}

// leftNull returns the residual that zeroes the lower entry of (a, b) under
// T†: column 1 of T must be orthogonal to (a, b).
func leftNullLower(a, b complex128) residual {
	a, b, ok := normalised(a, b)
	return func(t *matrix.Dense) []complex128 {
		if !ok {
			return nil
		}
		return []complex128{t.Elem(0, 1)*cmplx.Conj(a) + t.Elem(1, 1)*cmplx.Conj(b)}
	}
}

// leftNullUpper zeroes the upper entry of (a, b) under T†.
func leftNullUpper(a, b complex128) residual {
	a, b, ok := normalised(a, b)
	return func(t *matrix.Dense) []complex128 {
		if !ok {
			return nil
		}
		return []complex128{t.Elem(0, 0)*cmplx.Conj(a) + t.Elem(1, 0)*cmplx.Conj(b)}
	}
}

// rightNullLeft zeroes the left entry of the row (a, b) under ·T†.
func rightNullLeft(a, b complex128) residual {
	a, b, ok := normalised(a, b)
	return func(t *matrix.Dense) []complex128 {
		if !ok {
			return nil
		}
		return []complex128{a*cmplx.Conj(t.Elem(0, 0)) + b*cmplx.Conj(t.Elem(0, 1))}
	}
}

// triangle clears column k = n-1 … 1 from the top with left multiplications.
// The target is rebuilt as D first, then T_N … T_1.
func triangle(s *solver, target *matrix.Dense, template circuit.Element) (plan, error) {
	n := target.Rows()
	r := target.Clone()
	var nulled []site
	for k := n - 1; k >= 1; k-- {
		for i := 0; i < k; i++ {
			modes := []int{i, i + 1}
			st, err := s.solve(template, modes, leftNullUpper(r.Elem(i, k), r.Elem(i+1, k)))
			if err != nil {
				return plan{}, fmt.Errorf("column %d: %w", k, err)
			}
			if r, err = daggerLeft(st.u, r, modes); err != nil {
				return plan{}, err
			}
			nulled = append(nulled, st)
		}
	}
	diag, err := residualDiagonal(r, s.precision)
	if err != nil {
		return plan{}, err
	}

	blocks := make([]site, 0, len(nulled))
	for i := len(nulled) - 1; i >= 0; i-- {
		blocks = append(blocks, nulled[i])
	}

	return plan{blocks: blocks, diag: diag, phasesFirst: true}, nil
}

// rectangle clears the anti-diagonals of the lower triangle alternately with
// right (column) and left (row) multiplications, then commutes every left
// block through the residual diagonal.
func rectangle(s *solver, target *matrix.Dense, template circuit.Element) (plan, error) {
	n := target.Rows()
	r := target.Clone()
	var rights, lefts []site
	for i := 1; i < n; i++ {
		if i%2 == 1 {
			for j := 0; j < i; j++ {
				row, col := n-1-j, i-j-1
				modes := []int{col, col + 1}
				st, err := s.solve(template, modes, rightNullLeft(r.Elem(row, col), r.Elem(row, col+1)))
				if err != nil {
					return plan{}, fmt.Errorf("anti-diagonal %d: %w", i, err)
				}
				if r, err = daggerRight(r, st.u, modes); err != nil {
					return plan{}, err
				}
				rights = append(rights, st)
			}
			continue
		}
		for j := 1; j <= i; j++ {
			row, col := n+j-i-1, j-1
			modes := []int{row - 1, row}
			st, err := s.solve(template, modes, leftNullLower(r.Elem(row-1, col), r.Elem(row, col)))
			if err != nil {
				return plan{}, fmt.Errorf("anti-diagonal %d: %w", i, err)
			}
			if r, err = daggerLeft(st.u, r, modes); err != nil {
				return plan{}, err
			}
			lefts = append(lefts, st)
		}
	}
	diag, err := residualDiagonal(r, s.precision)
	if err != nil {
		return plan{}, err
	}

	// U = L_1 ⋯ L_p · D · R_q ⋯ R_1; move D left past L_p … L_1.
	for idx := len(lefts) - 1; idx >= 0; idx-- {
		moved, err := commute(s, template, lefts[idx], diag)
		if err != nil {
			return plan{}, err
		}
		lefts[idx] = moved
	}

	blocks := make([]site, 0, len(rights)+len(lefts))
	blocks = append(blocks, rights...)
	for idx := len(lefts) - 1; idx >= 0; idx-- {
		blocks = append(blocks, lefts[idx])
	}

	return plan{blocks: blocks, diag: diag}, nil
}

// commute solves T·diag(d0, d1) = diag(p, q)·T' for a fresh template copy T'
// and updates diag in place.
func commute(s *solver, template circuit.Element, l site, diag []complex128) (site, error) {
	m0, m1 := l.modes[0], l.modes[1]
	d0, d1 := diag[m0], diag[m1]
	x00, x01 := l.u.Elem(0, 0)*d0, l.u.Elem(0, 1)*d1
	x10, x11 := l.u.Elem(1, 0)*d0, l.u.Elem(1, 1)*d1
	st, err := s.solve(template, l.modes, func(t *matrix.Dense) []complex128 {
		return []complex128{
			t.Elem(0, 0)*x01 - t.Elem(0, 1)*x00,
			t.Elem(1, 0)*x11 - t.Elem(1, 1)*x10,
		}
	})
	if err != nil {
		return site{}, fmt.Errorf("commute on %v: %w", l.modes, err)
	}
	diag[m0] = rowPhase(st.u.Elem(0, 0), st.u.Elem(0, 1), x00, x01)
	diag[m1] = rowPhase(st.u.Elem(1, 0), st.u.Elem(1, 1), x10, x11)

	return st, nil
}

// rowPhase returns the unit phase p with (x0, x1) = p·(t0, t1), read off the
// larger entry.
func rowPhase(t0, t1, x0, x1 complex128) complex128 {
	p := x0 / t0
	if cmplx.Abs(t1) > cmplx.Abs(t0) {
		p = x1 / t1
	}

	return p / complex(cmplx.Abs(p), 0)
}

// residualDiagonal checks that r is diagonal and returns its diagonal.
// Errors: ErrDecomposition.
func residualDiagonal(r *matrix.Dense, precision float64) ([]complex128, error) {
	n := r.Rows()
	if !r.IsDiagonal(precision * float64(n)) {
		return nil, ErrDecomposition
	}
	diag := make([]complex128, n)
	for i := range diag {
		diag[i] = r.Elem(i, i)
	}

	return diag, nil
}

// phaseLayer solves one generated 1-mode element per mode so that its
// unitary equals the matching diagonal entry.
func phaseLayer(s *solver, gen circuit.Generator, diag []complex128) ([]site, error) {
	out := make([]site, 0, len(diag))
	for md, d := range diag {
		e := gen(md)
		if e == nil || e.M() != 1 {
			return nil, fmt.Errorf("phase shifter for mode %d is not a 1-mode element: %w", md, ErrBadTemplate)
		}
		st, err := s.solve(e, []int{md}, func(u *matrix.Dense) []complex128 {
			return []complex128{u.Elem(0, 0) - d}
		})
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}

	return out, nil
}

func assemble(s *solver, n int, p plan, o options) (*circuit.Circuit, error) {
	c, err := circuit.New(n)
	if err != nil {
		return nil, err
	}
	var phases []site
	if o.ps != nil {
		if phases, err = phaseLayer(s, o.ps, p.diag); err != nil {
			return nil, err
		}
	}

	order := make([]site, 0, len(phases)+len(p.blocks))
	if p.phasesFirst {
		order = append(append(order, phases...), p.blocks...)
	} else {
		order = append(append(order, p.blocks...), phases...)
	}
	for _, st := range order {
		if err = c.Add(st.modes, st.elem, o.merge); err != nil {
			return nil, err
		}
	}

	return c, nil
}
