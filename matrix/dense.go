// Package matrix provides core linear algebra primitives for unitary transforms.
// Dense is a concrete, row-major complex matrix storing elements in a flat
// slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"
)

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewFromRows builds a Dense from row slices; all rows must share one length.
// Complexity: O(r*c).
func NewFromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("NewFromRows", ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, matrixErrorf("NewFromRows", fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), m.c, ErrDimensionMismatch))
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// MustFromRows is NewFromRows that panics on error; meant for literals.
func MustFromRows(rows [][]complex128) *Dense {
	m, err := NewFromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Identity returns I_n.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// IsSquare reports whether Rows == Cols.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Elem returns the element at (row, col) without error reporting.
// It panics like a slice index on invalid input; use only after the shape
// has been validated (permanent and SLOS inner loops).
func (m *Dense) Elem(row, col int) complex128 {
	return m.data[row*m.c+col]
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Rows2D returns a copy of the content as row slices.
func (m *Dense) Rows2D() [][]complex128 {
	out := make([][]complex128, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]complex128, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String implements fmt.Stringer: one bracketed row per line, entries in %g.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			sb.WriteString(FormatComplex(m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// FormatComplex renders z compactly: "0.5", "-1i", "0.5+0.5i".
// Components whose magnitude is below 1e-15 are dropped.
func FormatComplex(z complex128) string {
	const tiny = 1e-15
	re, im := real(z), imag(z)
	if cmplx.IsNaN(z) {
		return "NaN"
	}
	reZero := re < tiny && re > -tiny
	imZero := im < tiny && im > -tiny
	switch {
	case reZero && imZero:
		return "0"
	case imZero:
		return strconv.FormatFloat(re, 'g', 6, 64)
	case reZero:
		return strconv.FormatFloat(im, 'g', 6, 64) + "i"
	}
	sign := "+"
	if im < 0 {
		sign = ""
	}

	return strconv.FormatFloat(re, 'g', 6, 64) + sign + strconv.FormatFloat(im, 'g', 6, 64) + "i"
}
