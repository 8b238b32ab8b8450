// SPDX-License-Identifier: MIT
// Package: photonic/backend
//
// backend.go — the Backend capability, options and shared plumbing.

package backend

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"

	"github.com/katalvlaran/photonic/fock"
	"github.com/katalvlaran/photonic/matrix"
)

// Backend answers per-state queries for one unitary.
type Backend interface {
	// Name is the registry identifier ("Naive", "SLOS").
	Name() string
	// M is the unitary's mode count.
	M() int
	// Prob returns |⟨out|U|in⟩|². States with different photon counts give 0.
	Prob(in, out fock.BasicState) (float64, error)
	// Amplitude returns ⟨out|U|in⟩.
	Amplitude(in, out fock.BasicState) (complex128, error)
	// Evolve returns the output superposition of in.
	Evolve(in fock.BasicState) (*fock.StateVector, error)
	// AllStates enumerates every output state with in's photon count; empty
	// when in has the wrong mode count.
	AllStates(in fock.BasicState) iter.Seq[fock.BasicState]
	// Sample draws one output state distributed as Prob.
	Sample(in fock.BasicState) (fock.BasicState, error)
}

// DefaultPruneEpsilon is the probability under which Evolve drops a component.
const DefaultPruneEpsilon = 1e-18

// Option configures a backend constructor.
type Option func(*options)

type options struct {
	rng          *rand.Rand
	checkUnitary bool
	eps          float64
}

func defaultOptions() options {
	return options{checkUnitary: true, eps: matrix.DefaultEpsilon}
}

// WithSeed seeds the sampling RNG (seed 0 selects matrix.DefaultRNGSeed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = matrix.RNGFromSeed(seed) }
}

// WithRand supplies the sampling RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("backend: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithoutUnitaryCheck skips the unitarity validation at construction.
func WithoutUnitaryCheck() Option {
	return func(o *options) { o.checkUnitary = false }
}

// WithTolerance sets the unitarity tolerance. Panics if eps <= 0.
func WithTolerance(eps float64) Option {
	if eps <= 0 {
		panic("backend: WithTolerance: eps must be positive")
	}
	return func(o *options) { o.eps = eps }
}

// core holds what both simulators share.
type core struct {
	name string
	u    *matrix.Dense
	rng  *rand.Rand
}

func newCore(name string, u *matrix.Dense, opts []Option) (core, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if u == nil {
		return core{}, fmt.Errorf("%s: %w", name, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(u); err != nil {
		return core{}, fmt.Errorf("%s: %w", name, err)
	}
	if o.checkUnitary {
		if err := matrix.ValidateUnitary(u, o.eps); err != nil {
			return core{}, fmt.Errorf("%s: %w", name, err)
		}
	}
	if o.rng == nil {
		o.rng = matrix.RNGFromSeed(0)
	}

	return core{name: name, u: u.Clone(), rng: o.rng}, nil
}

func (c *core) Name() string { return c.name }

func (c *core) M() int { return c.u.Rows() }

// Unitary returns a copy of the simulated unitary.
func (c *core) Unitary() *matrix.Dense { return c.u.Clone() }

func (c *core) checkState(op string, s fock.BasicState) error {
	if s.M() != c.u.Rows() {
		return fmt.Errorf("%s.%s(%s): state has %d modes, unitary %d: %w", c.name, op, s, s.M(), c.u.Rows(), ErrModeMismatch)
	}

	return nil
}

func (c *core) checkPair(in, out fock.BasicState) error {
	if err := c.checkState("Amplitude", in); err != nil {
		return err
	}
	if err := c.checkState("Amplitude", out); err != nil {
		return err
	}
	if in.N() != out.N() {
		return fmt.Errorf("%s.Amplitude(%s, %s): %w", c.name, in, out, ErrPhotonMismatch)
	}

	return nil
}

func (c *core) AllStates(in fock.BasicState) iter.Seq[fock.BasicState] {
	if in.M() != c.u.Rows() {
		return func(func(fock.BasicState) bool) {}
	}

	return fock.All(in.M(), in.N())
}

// sample draws by inverse CDF: the first state whose cumulative probability
// exceeds r. Rounding leftovers fall on the last positive state.
func (c *core) sample(states []fock.BasicState, probs []float64) (fock.BasicState, error) {
	r := c.rng.Float64()
	cum := 0.0
	last := -1
	for i, p := range probs {
		if p <= 0 {
			continue
		}
		last = i
		cum += p
		if r < cum {
			samplesDrawn.WithLabelValues(c.name).Inc()
			return states[i], nil
		}
	}
	if last < 0 {
		return fock.BasicState{}, fmt.Errorf("%s.Sample: %w", c.name, ErrEmptyDistribution)
	}
	samplesDrawn.WithLabelValues(c.name).Inc()

	return states[last], nil
}

func abs2(z complex128) float64 { return real(z)*real(z) + imag(z)*imag(z) }

// probFromAmplitude maps ErrPhotonMismatch to probability 0.
func probFromAmplitude(a complex128, err error) (float64, error) {
	if err != nil {
		if errors.Is(err, ErrPhotonMismatch) {
			return 0, nil
		}
		return 0, err
	}

	return abs2(a), nil
}

// Distribution returns every output state of in with its probability, in
// AllStates order.
func Distribution(b Backend, in fock.BasicState) ([]fock.BasicState, []float64, error) {
	var (
		states []fock.BasicState
		probs  []float64
	)
	if in.M() != b.M() {
		return nil, nil, fmt.Errorf("Distribution(%s): %d modes, backend %d: %w", in, in.M(), b.M(), ErrModeMismatch)
	}
	for out := range b.AllStates(in) {
		p, err := b.Prob(in, out)
		if err != nil {
			return nil, nil, err
		}
		states = append(states, out)
		probs = append(probs, p)
	}

	return states, probs, nil
}
