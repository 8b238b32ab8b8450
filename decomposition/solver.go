// SPDX-License-Identifier: MIT
// Package: photonic/decomposition
//
// solver.go — numeric solve of one template site.
//
// A site is described by a residual: complex values computed from the
// template's unitary that must all vanish. The solver minimises Σ|r|² with
// Nelder–Mead, then polishes with damped Gauss–Newton steps
//
//	(JᵀJ + λI)·δ = −Jᵀr
//
// where J is a central-difference Jacobian of (Re r, Im r).

package decomposition

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/photonic/circuit"
	"github.com/katalvlaran/photonic/matrix"
	"github.com/katalvlaran/photonic/param"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

const (
	nelderMeadIterations = 2000
	stallIterations      = 60
	polishIterations     = 25
	polishDamping        = 1e-12
	minStep              = 1.0 / 1024
)

// residual maps a candidate template unitary to values that must vanish.
type residual func(u *matrix.Dense) []complex128

// site is one solved template copy and where it goes.
type site struct {
	modes []int
	elem  circuit.Element
	u     *matrix.Dense
}

type solver struct {
	rng       *rand.Rand
	precision float64
	maxTry    int
	log       *zap.Logger
}

// toValue maps an unconstrained search coordinate into p's range.
func toValue(p *param.Parameter, x float64) float64 {
	lo, hi := p.Bounds()
	switch {
	case p.IsPeriodic():
		return x
	case p.HasBounds():
		s := math.Sin(x)
		return math.Min(hi, lo+(hi-lo)*s*s)
	case !math.IsInf(lo, 0):
		return lo + x*x
	case !math.IsInf(hi, 0):
		return hi - x*x
	}

	return x
}

func sumSquares(r []complex128) float64 {
	var s float64
	for _, v := range r {
		s += real(v)*real(v) + imag(v)*imag(v)
	}

	return s
}

// solve finds values for e's free parameters that make res vanish and
// returns a copy of e with those values fixed. The free parameters of e are
// unbound again on return.
// Errors: ErrBadTemplate (no free parameters), ErrNoSolution.
func (s *solver) solve(e circuit.Element, modes []int, res residual) (site, error) {
	free := param.Free(e.Parameters())
	if len(free) == 0 {
		return site{}, fmt.Errorf("solve(%s on %v): %w", e.Name(), modes, ErrBadTemplate)
	}
	defer func() {
		for _, p := range free {
			p.Reset()
		}
	}()

	eval := func(x []float64) ([]complex128, bool) {
		objectiveEvaluations.Inc()
		for i, p := range free {
			if err := p.SetValue(toValue(p, x[i])); err != nil {
				return nil, false
			}
		}
		u, err := e.ComputeUnitary()
		if err != nil {
			return nil, false
		}

		return res(u), true
	}
	objective := func(x []float64) float64 {
		r, ok := eval(x)
		if !ok {
			return math.Inf(1)
		}

		return sumSquares(r)
	}

	var (
		bestX []float64
		best  = math.Inf(1)
		tries int
	)
	for tries < s.maxTry {
		tries++
		x0 := make([]float64, len(free))
		for i := range x0 {
			x0[i] = s.rng.Float64() * 2 * math.Pi
		}
		x := s.minimize(objective, x0)
		x = s.polish(eval, objective, x)
		if f := objective(x); f < best {
			best, bestX = f, x
		}
		if math.Sqrt(best) <= s.precision {
			break
		}
		solverRestarts.Inc()
	}
	if math.Sqrt(best) > s.precision {
		s.log.Debug("site unsolved",
			zap.String("template", e.Name()),
			zap.Ints("modes", modes),
			zap.Int("tries", tries),
			zap.Float64("residual", math.Sqrt(best)))
		return site{}, fmt.Errorf("solve(%s on %v): residual %g after %d tries: %w",
			e.Name(), modes, math.Sqrt(best), tries, ErrNoSolution)
	}

	repl := make(map[*param.Parameter]*param.Parameter, len(free))
	for i, p := range free {
		if err := p.SetValue(toValue(p, bestX[i])); err != nil {
			return site{}, fmt.Errorf("solve(%s on %v): %w", e.Name(), modes, err)
		}
		v, _ := p.Value()
		repl[p] = param.Fixed(p.Name(), v)
	}
	solved := e.Substitute(repl)
	u, err := solved.ComputeUnitary()
	if err != nil {
		return site{}, fmt.Errorf("solve(%s on %v): %w", e.Name(), modes, err)
	}
	sitesSolved.Inc()
	s.log.Debug("site solved",
		zap.String("template", e.Name()),
		zap.Ints("modes", modes),
		zap.Int("tries", tries),
		zap.Float64("residual", math.Sqrt(best)))

	return site{modes: modes, elem: solved, u: u}, nil
}

// minimize runs Nelder–Mead from x0 and returns the best point found.
func (s *solver) minimize(f func([]float64) float64, x0 []float64) []float64 {
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   s.precision * s.precision * 1e-6,
			Iterations: stallIterations,
		},
		MajorIterations: nelderMeadIterations,
	}
	result, err := optimize.Minimize(optimize.Problem{Func: f}, x0, settings, &optimize.NelderMead{})
	if result == nil {
		s.log.Debug("nelder-mead failed", zap.Error(err))
		return x0
	}

	return result.X
}

// polish refines x with damped Gauss–Newton steps, halving a step until it
// lowers the objective.
func (s *solver) polish(eval func([]float64) ([]complex128, bool), f func([]float64) float64, x []float64) []float64 {
	r0, ok := eval(x)
	if !ok || len(r0) == 0 {
		return x
	}
	rows, cols := 2*len(r0), len(x)
	split := func(y, at []float64) {
		r, ok := eval(at)
		for i := 0; i < len(y)/2; i++ {
			if !ok {
				y[2*i], y[2*i+1] = 1, 1
				continue
			}
			y[2*i], y[2*i+1] = real(r[i]), imag(r[i])
		}
	}

	x = append([]float64(nil), x...)
	cur := f(x)
	jac := mat.NewDense(rows, cols, nil)
	y := make([]float64, rows)
	for it := 0; it < polishIterations && cur > 0; it++ {
		fd.Jacobian(jac, split, x, &fd.JacobianSettings{Formula: fd.Central})
		split(y, x)

		var normal mat.Dense
		normal.Mul(jac.T(), jac)
		for i := 0; i < cols; i++ {
			normal.Set(i, i, normal.At(i, i)+polishDamping)
		}
		var grad mat.VecDense
		grad.MulVec(jac.T(), mat.NewVecDense(rows, y))
		var delta mat.VecDense
		if err := delta.SolveVec(&normal, &grad); err != nil {
			break
		}

		improved := false
		cand := make([]float64, cols)
		for step := 1.0; step >= minStep; step /= 2 {
			for i := range cand {
				cand[i] = x[i] - step*delta.AtVec(i)
			}
			if fc := f(cand); fc < cur {
				copy(x, cand)
				cur = fc
				improved = true
				break
			}
		}
		if !improved {
			break
		}
	}

	return x
}

// normalised scales (a, b) to unit norm; ok is false for a null pair.
func normalised(a, b complex128) (complex128, complex128, bool) {
	n := math.Hypot(cmplx.Abs(a), cmplx.Abs(b))
	if n == 0 {
		return 0, 0, false
	}
	k := complex(1/n, 0)

	return a * k, b * k, true
}
