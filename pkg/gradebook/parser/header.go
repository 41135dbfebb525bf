package parser

import "strings"

// DefaultHeaderScanRows is how many leading rows are searched for the header on load.
const DefaultHeaderScanRows = 10

// FindHeaderRow returns the 0-based index of the first of the leading scanRows rows
// that has a cell mentioning "registration" and a cell mentioning "no" or "number",
// along with the column of the first "registration" cell.
func FindHeaderRow(grid [][]string, scanRows int) (row, regCol int, ok bool) {
	for i := 0; i < scanRows && i < len(grid); i++ {
		regCol = -1
		marker := false
		for j, c := range grid[i] {
			lc := strings.ToLower(c)
			if regCol < 0 && strings.Contains(lc, "registration") {
				regCol = j
			}
			if strings.Contains(lc, "no") || strings.Contains(lc, "number") {
				marker = true
			}
		}
		if regCol >= 0 && marker {
			return i, regCol, true
		}
	}
	return -1, -1, false
}

// isRegistrationColumn reports whether a column name identifies the registration number.
func isRegistrationColumn(name string) bool {
	ln := strings.ToLower(name)
	return strings.Contains(ln, "registration") || strings.Contains(ln, "reg no")
}
