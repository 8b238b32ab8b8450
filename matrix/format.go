// SPDX-License-Identifier: MIT
// Package: matrix
//
// format.go — printable representation for humans (terminal grids).

package matrix

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Pretty renders m as a bordered grid. Entries use FormatComplex.
// Complexity: O(r*c) plus the renderer's layout pass.
func (m *Dense) Pretty() string {
	rows := make([][]string, m.r)
	for i := 0; i < m.r; i++ {
		rows[i] = make([]string, m.c)
		for j := 0; j < m.c; j++ {
			rows[i][j] = FormatComplex(m.data[i*m.c+j])
		}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Rows(rows...)

	return t.String()
}
