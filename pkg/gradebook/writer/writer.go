// Package writer replays pending grade edits and student deletions onto a stored workbook.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/changes"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/parser"
)

// ErrFileLocked indicates the workbook is held open by another process.
var ErrFileLocked = errors.New("workbook is locked by another process; close the file and retry")

// CommitError represents a failure while writing one sheet or saving the workbook.
type CommitError struct {
	Sheet string // "" when the failure is not tied to a sheet
	Err   error
}

func (e *CommitError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("commit failed: %v", e.Err)
	}
	return fmt.Sprintf("commit failed in sheet %q: %v", e.Sheet, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// Options configures a commit.
type Options struct {
	// HeaderScanRows bounds the search for the header row, as on load.
	HeaderScanRows int
	Logger         log.Logger
}

// DefaultOptions returns default commit options.
func DefaultOptions() Options {
	return Options{
		HeaderScanRows: parser.DefaultHeaderScanRows,
		Logger:         log.NewNopLogger(),
	}
}

// Commit writes the tracker's pending edits and deletes into the workbook at path
// and saves it in place. Rows and columns are re-located by registration number and
// subject name; targets that no longer resolve are skipped and counted.
// The tracker is not modified.
func Commit(path string, t *changes.Tracker, opts Options) (models.CommitResult, error) {
	var result models.CommitResult
	if opts.Logger == nil {
		opts.Logger = log.NewNopLogger()
	}
	if opts.HeaderScanRows <= 0 {
		opts.HeaderScanRows = parser.DefaultHeaderScanRows
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return result, classify("", err)
	}
	defer f.Close()

	present := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		present[name] = true
	}

	for _, name := range t.Sheets() {
		var sc models.SheetCommit
		if present[name] {
			sc, err = applySheet(f, name, t, opts)
			if err != nil {
				return result, &CommitError{Sheet: name, Err: err}
			}
		} else {
			sc = models.SheetCommit{Sheet: name, Skipped: len(t.Edits(name)) + len(t.Deletes(name))}
			level.Debug(opts.Logger).Log("msg", "sheet no longer in workbook", "sheet", name, "skipped", sc.Skipped)
		}
		result.Applied += sc.Applied
		result.Deleted += sc.Deleted
		result.Skipped += sc.Skipped
		result.Sheets = append(result.Sheets, sc)
	}

	if err := f.Save(); err != nil {
		return result, classify("", err)
	}
	level.Info(opts.Logger).Log("msg", "workbook saved", "path", path,
		"applied", result.Applied, "deleted", result.Deleted, "skipped", result.Skipped)
	return result, nil
}

// sheetIndex locates rows and columns of a stored sheet.
type sheetIndex struct {
	columns map[string]int // column name, as named on load → 1-based column
	regRows map[string]int // registration number → 1-based row
}

// buildIndex resolves the sheet layout the same way loading does, so edits address
// the columns the user saw, including ".1" suffixed duplicates.
func buildIndex(grid [][]string, scanRows int) (*sheetIndex, bool) {
	params := parser.DefaultNormalizeParams()
	params.HeaderScanRows = scanRows
	layout, err := parser.LocateLayout(grid, params)
	if err != nil {
		return nil, false
	}

	idx := &sheetIndex{
		columns: make(map[string]int, len(layout.Columns)),
		regRows: make(map[string]int),
	}
	for i, name := range layout.Columns {
		idx.columns[name] = i + 1
	}

	last := parser.LastDataRow(grid)
	for row := layout.DataStart; row <= last; row++ {
		if reg := parser.Cell(grid, row, layout.RegColumn); reg != "" {
			// Later duplicates win.
			idx.regRows[reg] = row + 1
		}
	}
	return idx, true
}

func applySheet(f *excelize.File, name string, t *changes.Tracker, opts Options) (models.SheetCommit, error) {
	sc := models.SheetCommit{Sheet: name}
	edits := t.Edits(name)
	deletes := t.Deletes(name)

	grid, err := parser.ReadGrid(f, name)
	if err != nil {
		return sc, err
	}
	idx, ok := buildIndex(grid, opts.HeaderScanRows)
	if !ok {
		sc.Skipped = len(edits) + len(deletes)
		level.Debug(opts.Logger).Log("msg", "registration header not found", "sheet", name, "skipped", sc.Skipped)
		return sc, nil
	}

	for _, e := range edits {
		row, okRow := idx.regRows[e.RegistrationNumber]
		col, okCol := idx.columns[e.Subject]
		if !okRow || !okCol {
			sc.Skipped++
			level.Debug(opts.Logger).Log("msg", "stale edit skipped", "sheet", name,
				"registration", e.RegistrationNumber, "subject", e.Subject)
			continue
		}
		cellName, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return sc, err
		}
		if err := f.SetCellValue(name, cellName, e.Value); err != nil {
			return sc, err
		}
		sc.Applied++
	}

	var rows []int
	for _, reg := range deletes {
		row, ok := idx.regRows[reg]
		if !ok {
			sc.Skipped++
			level.Debug(opts.Logger).Log("msg", "stale delete skipped", "sheet", name, "registration", reg)
			continue
		}
		rows = append(rows, row)
	}
	// Bottom-up so earlier removals do not shift rows still to be removed.
	sort.Sort(sort.Reverse(sort.IntSlice(rows)))
	for _, row := range rows {
		if err := f.RemoveRow(name, row); err != nil {
			return sc, err
		}
		sc.Deleted++
	}
	return sc, nil
}

// classify maps a file error to ErrFileLocked when another process holds the file.
func classify(sheet string, err error) error {
	if IsLockError(err) {
		return &CommitError{Sheet: sheet, Err: fmt.Errorf("%w: %v", ErrFileLocked, err)}
	}
	return &CommitError{Sheet: sheet, Err: err}
}

// IsLockError reports whether err looks like the file being held open elsewhere.
func IsLockError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, fs.ErrPermission) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "being used by another process") ||
		strings.Contains(msg, "resource busy")
}
