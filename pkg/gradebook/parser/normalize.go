package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// ErrHeaderNotFound indicates no registration header row was found in the scanned rows.
var ErrHeaderNotFound = errors.New("header row not found")

// ErrRegistrationColumnNotFound indicates no column could be identified as the registration number.
var ErrRegistrationColumnNotFound = errors.New("registration column not found")

// NormalizeParams holds parameters for sheet normalisation.
type NormalizeParams struct {
	Mode           SubjectMode
	HeaderScanRows int
	// SubjectRowStart is the first column position whose title may be replaced by the subject row.
	SubjectRowStart int
}

// DefaultNormalizeParams returns default normalisation parameters.
func DefaultNormalizeParams() NormalizeParams {
	return NormalizeParams{
		Mode:            SubjectModeStrict,
		HeaderScanRows:  DefaultHeaderScanRows,
		SubjectRowStart: 4,
	}
}

// Layout is the located table structure of a result sheet. Row and column
// indexes are 0-based positions in the grid.
type Layout struct {
	// HeaderRow is the row holding column titles.
	HeaderRow int
	// DataStart is the first student row, after the subject-code row when present.
	DataStart int
	// Columns holds the final column names by position.
	Columns []string
	// RegColumn is the position of the registration-number column.
	RegColumn int
}

// ColumnIndex returns the position of the named column.
func (l *Layout) ColumnIndex(name string) (int, bool) {
	for i, c := range l.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// LocateLayout finds the header, merges the subject-code row and names every column.
// Loading and writing back both resolve columns through it, so a column name always
// refers to the same grid position. grid must be padded.
func LocateLayout(grid [][]string, params NormalizeParams) (*Layout, error) {
	if params.HeaderScanRows <= 0 {
		params.HeaderScanRows = DefaultHeaderScanRows
	}

	headerIdx, markerCol, ok := FindHeaderRow(grid, params.HeaderScanRows)
	if !ok {
		return nil, ErrHeaderNotFound
	}

	columns := headerNames(grid[headerIdx])
	dataStart := headerIdx + 1

	// A subject-code row sits directly below the header and has no registration number.
	if dataStart < len(grid) && Cell(grid, dataStart, markerCol) == "" {
		for i := params.SubjectRowStart; i < len(columns); i++ {
			if v := Cell(grid, dataStart, i); v != "" {
				columns[i] = v
			}
		}
		dataStart++
	}

	regIdx := -1
	for i, c := range columns {
		if isRegistrationColumn(c) {
			regIdx = i
			break
		}
	}
	if regIdx < 0 {
		return nil, ErrRegistrationColumnNotFound
	}
	columns[regIdx] = models.RegistrationColumn

	return &Layout{
		HeaderRow: headerIdx,
		DataStart: dataStart,
		Columns:   dedupeNames(columns),
		RegColumn: regIdx,
	}, nil
}

// NormalizeSheet turns a raw grid into a student table.
// It returns ErrHeaderNotFound or ErrRegistrationColumnNotFound when the sheet
// does not look like a result sheet; callers skip such sheets.
func NormalizeSheet(name string, grid [][]string, params NormalizeParams) (*models.Sheet, error) {
	grid = padGrid(grid)
	layout, err := LocateLayout(grid, params)
	if err != nil {
		return nil, err
	}
	columns := layout.Columns

	sheet := &models.Sheet{
		Name:      name,
		HeaderRow: layout.HeaderRow + 1,
		Columns:   columns,
		Credits:   make(map[string]float64),
	}

	for i := layout.DataStart; i < len(grid); i++ {
		if isBlankRow(grid[i]) {
			continue
		}
		cells := make(map[string]string, len(columns))
		for j, col := range columns {
			cells[col] = Cell(grid, i, j)
		}
		sheet.Rows = append(sheet.Rows, models.Row{SourceRow: i + 1, Cells: cells})
	}

	for _, col := range columns {
		if sheet.NameColumn == "" && isNameColumn(col) {
			sheet.NameColumn = col
		}
		if !IsSubject(col, params.Mode) {
			continue
		}
		sheet.Subjects = append(sheet.Subjects, col)
		if credit, ok := Credit(col); ok {
			sheet.Credits[col] = credit
		}
	}

	return sheet, nil
}

// isNameColumn reports whether col holds student names. Placeholder titles of
// blank header cells ("Unnamed: 3") do not count.
func isNameColumn(col string) bool {
	lc := strings.ToLower(col)
	return strings.Contains(lc, "name") && !strings.HasPrefix(lc, "unnamed")
}

// headerNames trims header cells and names blank ones by position.
func headerNames(row []string) []string {
	names := make([]string, len(row))
	for i, c := range row {
		c = strings.TrimSpace(c)
		if c == "" {
			c = fmt.Sprintf("Unnamed: %d", i)
		}
		names[i] = c
	}
	return names
}

// dedupeNames suffixes repeated names with ".1", ".2", ... keeping the first occurrence as is.
func dedupeNames(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, n := range names {
		if k, ok := seen[n]; ok {
			seen[n] = k + 1
			out[i] = fmt.Sprintf("%s.%d", n, k+1)
			continue
		}
		seen[n] = 0
		out[i] = n
	}
	return out
}
