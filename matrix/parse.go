// SPDX-License-Identifier: MIT
// Package: matrix
//
// parse.go — textual matrix literals.
//
// Format (one row per line):
//   - entries separated by whitespace and/or commas; surrounding [ ] ignored;
//   - entries are real or complex: 0.5, -1e-3, 1+2i, 0.3-0.1j, i, -j, (1+1i);
//   - blank lines and lines starting with '#' are skipped.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a square complex matrix from r.
// Errors: ErrParse (bad token, ragged rows, empty input), ErrNonSquare,
// ErrNaNInf (NaN or Inf literals).
// Complexity: O(size of input).
func Parse(r io.Reader) (*Dense, error) {
	var rows [][]complex128
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		text = strings.NewReplacer("[", " ", "]", " ", ",", " ", ";", " ").Replace(text)
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		row := make([]complex128, len(fields))
		for k, f := range fields {
			v, err := parseEntry(f)
			if err != nil {
				return nil, matrixErrorf("Parse", fmt.Errorf("line %d entry %d %q: %w", line, k, f, ErrParse))
			}
			row[k] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, matrixErrorf("Parse", fmt.Errorf("line %d has %d entries, want %d: %w", line, len(row), len(rows[0]), ErrParse))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, matrixErrorf("Parse", err)
	}
	if len(rows) == 0 {
		return nil, matrixErrorf("Parse", fmt.Errorf("empty input: %w", ErrParse))
	}
	if len(rows) != len(rows[0]) {
		return nil, matrixErrorf("Parse", fmt.Errorf("%dx%d: %w", len(rows), len(rows[0]), ErrNonSquare))
	}

	m, err := NewFromRows(rows)
	if err != nil {
		return nil, err
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf("Parse", err)
	}

	return m, nil
}

// ParseString is Parse over a string literal.
func ParseString(s string) (*Dense, error) {
	return Parse(strings.NewReader(s))
}

// parseEntry accepts Go complex syntax plus the "j" suffix and bare "i".
func parseEntry(tok string) (complex128, error) {
	tok = strings.TrimSuffix(strings.TrimPrefix(tok, "("), ")")
	tok = strings.ReplaceAll(tok, "j", "i")
	tok = strings.ReplaceAll(tok, "I", "i")
	if strings.HasSuffix(tok, "i") {
		body := tok[:len(tok)-1]
		if body == "" || strings.HasSuffix(body, "+") || strings.HasSuffix(body, "-") {
			tok = body + "1i"
		}
	}

	return strconv.ParseComplex(tok, 128)
}
