package parser

import "strings"

// gridWidth returns the number of columns of the widest row.
func gridWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// padGrid copies rows, extending each to the grid width with empty cells.
func padGrid(rows [][]string) [][]string {
	width := gridWidth(rows)
	out := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		out[i] = padded
	}
	return out
}

// isBlankRow reports whether every cell of row is empty after trimming.
func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// LastDataRow returns the index of the last non-blank row, or -1.
func LastDataRow(rows [][]string) int {
	for i := len(rows) - 1; i >= 0; i-- {
		if !isBlankRow(rows[i]) {
			return i
		}
	}
	return -1
}
