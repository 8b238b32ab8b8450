// SPDX-License-Identifier: MIT
// Package: photonic/analyser
//
// analyser.go — lazily filled probability tables.

package analyser

import (
	"fmt"

	"github.com/katalvlaran/photonic/backend"
	"github.com/katalvlaran/photonic/fock"
	"go.uber.org/zap"
)

// DefaultPruneEpsilon is the probability under which a wildcard column
// counts as unreached.
const DefaultPruneEpsilon = 1e-12

// Option configures New.
type Option func(*options)

type options struct {
	prune  bool
	eps    float64
	logger *zap.Logger
}

// WithPrune drops wildcard output columns that no input reaches.
func WithPrune() Option {
	return func(o *options) { o.prune = true }
}

// WithPruneEpsilon sets the threshold used by WithPrune. Panics unless eps >= 0.
func WithPruneEpsilon(eps float64) Option {
	if !(eps >= 0) {
		panic("analyser: WithPruneEpsilon: eps must be non-negative")
	}
	return func(o *options) { o.eps = eps }
}

// WithLogger sets the logger for per-row debug output; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// Analyser holds a probability table over inputs × outputs.
type Analyser struct {
	b        backend.Backend
	inputs   []fock.BasicState
	outputs  []fock.BasicState
	wildcard bool
	opts     options
	rows     [][]float64 // nil until computed
	computed bool
}

// New resolves the output columns of sel (nil means SameAsInputs) and
// returns an analyser with no row computed yet.
// Errors: ErrNilBackend, ErrNoInputs, ErrDuplicateState, backend.ErrModeMismatch.
func New(b backend.Backend, inputs []fock.BasicState, sel Selector, opts ...Option) (*Analyser, error) {
	if b == nil {
		return nil, fmt.Errorf("New: %w", ErrNilBackend)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoInputs)
	}
	if sel == nil {
		sel = SameAsInputs()
	}
	o := options{eps: DefaultPruneEpsilon, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	m := b.M()
	ins := append([]fock.BasicState(nil), inputs...)
	if err := checkStates("input", m, ins); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	outs := sel.resolve(m, ins)
	if err := checkStates("output", m, outs); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Analyser{
		b:        b,
		inputs:   ins,
		outputs:  outs,
		wildcard: sel.wildcard(),
		opts:     o,
		rows:     make([][]float64, len(ins)),
	}, nil
}

func checkStates(kind string, m int, states []fock.BasicState) error {
	seen := make(map[string]struct{}, len(states))
	for _, s := range states {
		if s.M() != m {
			return fmt.Errorf("%s %s has %d modes, backend has %d: %w", kind, s, s.M(), m, backend.ErrModeMismatch)
		}
		if _, dup := seen[s.Key()]; dup {
			return fmt.Errorf("%s %s: %w", kind, s, ErrDuplicateState)
		}
		seen[s.Key()] = struct{}{}
	}

	return nil
}

// Inputs returns a copy of the row states.
func (a *Analyser) Inputs() []fock.BasicState { return append([]fock.BasicState(nil), a.inputs...) }

// Outputs returns a copy of the column states. After Compute with WithPrune,
// unreached wildcard columns are gone.
func (a *Analyser) Outputs() []fock.BasicState { return append([]fock.BasicState(nil), a.outputs...) }

// row computes (once) the probabilities of input i over every output.
func (a *Analyser) row(i int) ([]float64, error) {
	if a.rows[i] != nil {
		return a.rows[i], nil
	}
	in := a.inputs[i]
	r := make([]float64, len(a.outputs))
	for j, out := range a.outputs {
		p, err := a.b.Prob(in, out)
		if err != nil {
			return nil, fmt.Errorf("row %s: %w", in, err)
		}
		r[j] = p
	}
	a.rows[i] = r
	a.opts.logger.Debug("row computed",
		zap.String("backend", a.b.Name()),
		zap.Stringer("input", in),
		zap.Int("outputs", len(r)))

	return r, nil
}

// Prob returns table[i][j], computing row i on first use.
// Errors: ErrIndex, or the backend's error.
func (a *Analyser) Prob(i, j int) (float64, error) {
	if i < 0 || i >= len(a.inputs) || j < 0 || j >= len(a.outputs) {
		return 0, fmt.Errorf("Prob(%d, %d): %w", i, j, ErrIndex)
	}
	r, err := a.row(i)
	if err != nil {
		return 0, fmt.Errorf("Prob(%d, %d): %w", i, j, err)
	}

	return r[j], nil
}

// Compute fills every row, then prunes unreached wildcard columns when
// WithPrune is set. Calling it again is a no-op.
// Complexity: one backend.Prob per cell.
func (a *Analyser) Compute() error {
	if a.computed {
		return nil
	}
	for i := range a.inputs {
		if _, err := a.row(i); err != nil {
			return fmt.Errorf("Compute: %w", err)
		}
	}
	if a.opts.prune && a.wildcard {
		a.pruneColumns()
	}
	a.computed = true

	return nil
}

func (a *Analyser) pruneColumns() {
	keep := make([]int, 0, len(a.outputs))
	for j := range a.outputs {
		for _, r := range a.rows {
			if r[j] > a.opts.eps {
				keep = append(keep, j)
				break
			}
		}
	}
	if len(keep) == len(a.outputs) {
		return
	}
	outs := make([]fock.BasicState, len(keep))
	for k, j := range keep {
		outs[k] = a.outputs[j]
	}
	for i, r := range a.rows {
		nr := make([]float64, len(keep))
		for k, j := range keep {
			nr[k] = r[j]
		}
		a.rows[i] = nr
	}
	a.opts.logger.Debug("pruned unreached outputs",
		zap.Int("before", len(a.outputs)),
		zap.Int("after", len(outs)))
	a.outputs = outs
}

// Table computes the whole table and returns a copy.
func (a *Analyser) Table() ([][]float64, error) {
	if err := a.Compute(); err != nil {
		return nil, err
	}
	out := make([][]float64, len(a.rows))
	for i, r := range a.rows {
		out[i] = append([]float64(nil), r...)
	}

	return out, nil
}

// Distribution computes the whole table keyed by state literals:
// dist[input][output] = probability.
func (a *Analyser) Distribution() (map[string]map[string]float64, error) {
	if err := a.Compute(); err != nil {
		return nil, err
	}
	dist := make(map[string]map[string]float64, len(a.inputs))
	for i, in := range a.inputs {
		row := make(map[string]float64, len(a.outputs))
		for j, out := range a.outputs {
			row[out.String()] = a.rows[i][j]
		}
		dist[in.String()] = row
	}

	return dist, nil
}
