// SPDX-License-Identifier: MIT
// Package: photonic/symbolic
//
// matrix.go — square or rectangular matrices of Expr cells.

package symbolic

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/photonic/matrix"
	"github.com/katalvlaran/photonic/param"
)

// Matrix is a row-major matrix of expressions. Cells are never nil.
type Matrix struct {
	r, c int
	data []Expr
}

// NewMatrix returns an r×c matrix filled with Zero.
func NewMatrix(r, c int) (*Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewMatrix(%d,%d): %w", r, c, matrix.ErrInvalidDimensions)
	}
	data := make([]Expr, r*c)
	for i := range data {
		data[i] = Zero
	}

	return &Matrix{r: r, c: c, data: data}, nil
}

// Identity returns the n×n identity.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = One
	}

	return m, nil
}

// FromRows builds a matrix from rectangular rows of expressions.
func FromRows(rows [][]Expr) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", matrix.ErrInvalidDimensions)
	}
	m, _ := NewMatrix(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(row), m.c, matrix.ErrDimensionMismatch)
		}
		for j, e := range row {
			if e == nil {
				e = Zero
			}
			m.data[i*m.c+j] = e
		}
	}

	return m, nil
}

// MustFromRows is FromRows that panics on error; used by component builders
// whose shapes are static.
func MustFromRows(rows [][]Expr) *Matrix {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// FromDense lifts a numeric matrix into constant cells.
func FromDense(d *matrix.Dense) *Matrix {
	m, _ := NewMatrix(d.Rows(), d.Cols())
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			m.data[i*m.c+j] = Const(d.Elem(i, j))
		}
	}

	return m
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// At returns cell (i, j). Indices must be in range.
func (m *Matrix) At(i, j int) Expr { return m.data[i*m.c+j] }

// Set replaces cell (i, j). Indices must be in range; nil means Zero.
func (m *Matrix) Set(i, j int, e Expr) {
	if e == nil {
		e = Zero
	}
	m.data[i*m.c+j] = e
}

// MatMul returns a×b.
// Complexity: O(r*k*c) expression nodes before folding.
func MatMul(a, b *Matrix) (*Matrix, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("MatMul: %dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrShape)
	}
	out, _ := NewMatrix(a.r, b.c)
	terms := make([]Expr, 0, a.c)
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			terms = terms[:0]
			for k := 0; k < a.c; k++ {
				terms = append(terms, Mul(a.data[i*a.c+k], b.data[k*b.c+j]))
			}
			out.data[i*out.c+j] = Add(terms...)
		}
	}

	return out, nil
}

// ApplyLeft returns Embed(u, acc.Rows(), modes) × acc, touching only the
// rows listed in modes. modes must be strictly increasing and in range.
func ApplyLeft(u, acc *Matrix, modes []int) (*Matrix, error) {
	if u.r != u.c || len(modes) != u.r {
		return nil, fmt.Errorf("ApplyLeft: %dx%d block on %d modes: %w", u.r, u.c, len(modes), ErrShape)
	}
	for idx, md := range modes {
		if md < 0 || md >= acc.r || (idx > 0 && md <= modes[idx-1]) {
			return nil, fmt.Errorf("ApplyLeft: modes %v: %w", modes, matrix.ErrOutOfRange)
		}
	}
	res := acc.Clone()
	k := u.r
	terms := make([]Expr, 0, k)
	for a := 0; a < k; a++ {
		for j := 0; j < acc.c; j++ {
			terms = terms[:0]
			for b := 0; b < k; b++ {
				terms = append(terms, Mul(u.data[a*k+b], acc.data[modes[b]*acc.c+j]))
			}
			res.data[modes[a]*acc.c+j] = Add(terms...)
		}
	}

	return res, nil
}

// Clone returns a copy sharing the (immutable) cells.
func (m *Matrix) Clone() *Matrix {
	data := make([]Expr, len(m.data))
	copy(data, m.data)

	return &Matrix{r: m.r, c: m.c, data: data}
}

// Numeric evaluates every cell. The first free parameter aborts with ErrUnbound.
func (m *Matrix) Numeric() (*matrix.Dense, error) {
	out, err := matrix.NewDense(m.r, m.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v, err := m.data[i*m.c+j].Eval()
			if err != nil {
				return nil, fmt.Errorf("Numeric: cell (%d,%d): %w", i, j, err)
			}
			_ = out.Set(i, j, v)
		}
	}

	return out, nil
}

// Parameters lists the parameters referenced by any cell, in row-major discovery order.
func (m *Matrix) Parameters() []*param.Parameter {
	s := param.NewSet()
	for _, e := range m.data {
		e.collect(s)
	}

	return s.Items()
}

// IsNumeric reports whether every cell folded to a constant.
func (m *Matrix) IsNumeric() bool {
	for _, e := range m.data {
		if !IsConst(e) {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
