// Package parser normalises raw result worksheets into student tables.
package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadGrid reads a worksheet as a grid of cell text.
// Rows are padded to the widest row so column positions line up.
func ReadGrid(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return padGrid(rows), nil
}

// ReadWorkbook reads every worksheet of f in workbook order.
// Sheets that cannot be read are returned in failed rather than aborting.
func ReadWorkbook(f *excelize.File) (names []string, grids map[string][][]string, failed map[string]error) {
	grids = make(map[string][][]string)
	failed = make(map[string]error)
	for _, name := range f.GetSheetList() {
		grid, err := ReadGrid(f, name)
		if err != nil {
			failed[name] = err
			continue
		}
		names = append(names, name)
		grids[name] = grid
	}
	return names, grids, failed
}

// Cell returns the trimmed text at (row, col), or "" when out of range.
func Cell(grid [][]string, row, col int) string {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return ""
	}
	return strings.TrimSpace(grid[row][col])
}
