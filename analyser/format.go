// SPDX-License-Identifier: MIT
// Package: photonic/analyser
//
// format.go — table rendering and probability formatting.

package analyser

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	// DefaultMaxDenominator bounds the fractions printed by WithFractions.
	DefaultMaxDenominator = 1000
	// DefaultFractionTolerance is the largest gap accepted between a
	// probability and its printed fraction.
	DefaultFractionTolerance = 1e-9
	// zeroBelow snaps rounding noise to a printed 0.
	zeroBelow = 1e-12
)

// RenderOption configures Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	fractions bool
}

// WithFractions prints probabilities as fractions when one fits.
func WithFractions() RenderOption {
	return func(o *renderOptions) { o.fractions = true }
}

// FormatProbability prints p as a decimal with 6 significant digits or, with
// fractions set, as "n/d" when a fraction with d <= DefaultMaxDenominator
// is within DefaultFractionTolerance.
func FormatProbability(p float64, fractions bool) string {
	if math.Abs(p) < zeroBelow {
		return "0"
	}
	if fractions {
		if num, den, ok := rationalize(p, DefaultMaxDenominator, DefaultFractionTolerance); ok {
			if den == 1 {
				return strconv.FormatInt(num, 10)
			}
			return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
		}
	}

	return strconv.FormatFloat(p, 'g', 6, 64)
}

// rationalize walks the continued-fraction convergents of x and returns the
// first one within tol whose denominator stays <= maxDen.
func rationalize(x float64, maxDen int64, tol float64) (int64, int64, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, 0, false
	}
	h0, h1 := int64(0), int64(1) // numerators h_{k-2}, h_{k-1}
	k0, k1 := int64(1), int64(0) // denominators
	r := x
	for i := 0; i < 64; i++ {
		a := math.Floor(r)
		if math.Abs(a) > float64(math.MaxInt32) {
			return 0, 0, false
		}
		ai := int64(a)
		h0, h1 = h1, ai*h1+h0
		k0, k1 = k1, ai*k1+k0
		if k1 > maxDen {
			return 0, 0, false
		}
		if math.Abs(x-float64(h1)/float64(k1)) <= tol {
			return h1, k1, true
		}
		frac := r - a
		if frac == 0 {
			return 0, 0, false
		}
		r = 1 / frac
	}

	return 0, 0, false
}

// Render computes the table and draws it with inputs as rows and outputs as
// columns.
func (a *Analyser) Render(opts ...RenderOption) (string, error) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := a.Compute(); err != nil {
		return "", err
	}

	headers := make([]string, 0, len(a.outputs)+1)
	headers = append(headers, "")
	for _, out := range a.outputs {
		headers = append(headers, out.String())
	}
	rows := make([][]string, len(a.inputs))
	for i, in := range a.inputs {
		rows[i] = make([]string, 0, len(a.outputs)+1)
		rows[i] = append(rows[i], in.String())
		for _, p := range a.rows[i] {
			rows[i] = append(rows[i], FormatProbability(p, o.fractions))
		}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String(), nil
}

// String renders the table with fractions; a backend failure is rendered as
// its error text.
func (a *Analyser) String() string {
	s, err := a.Render(WithFractions())
	if err != nil {
		return err.Error()
	}

	return s
}
