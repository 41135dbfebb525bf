package gradebook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-kit/log/level"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/changes"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/parser"
)

// Load reads a result workbook and returns a fresh session over it.
// Sheets without a registration header are skipped; the load fails only when the
// file cannot be opened or no sheet qualifies.
func Load(path string, opts Options) (*Session, error) {
	logger := opts.logger()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, NewLoadError(path, ErrFileNotFound)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	wb := &models.WorkbookData{
		BookName: filepath.Base(path),
		Path:     path,
		Sheets:   make(map[string]*models.Sheet),
	}

	names, grids, failed := parser.ReadWorkbook(f)
	for name, err := range failed {
		level.Warn(logger).Log("msg", "sheet unreadable, skipping", "sheet", name, "err", err)
	}

	areas := parser.ReadPrintAreas(f)
	params := opts.normalizeParams()
	for _, name := range names {
		sheet, err := parser.NormalizeSheet(name, grids[name], params)
		if err != nil {
			// Not a result sheet
			level.Debug(logger).Log("msg", "sheet skipped", "sheet", name, "reason", err)
			continue
		}
		sheet.PrintAreas = areas[name]
		wb.SheetOrder = append(wb.SheetOrder, name)
		wb.Sheets[name] = sheet
	}

	if len(wb.SheetOrder) == 0 {
		return nil, NewLoadError(path, ErrNoSheets)
	}

	level.Info(logger).Log("msg", "workbook loaded", "book", wb.BookName,
		"sheets", len(wb.SheetOrder), "students", countStudents(wb))

	return &Session{
		workbook: wb,
		tracker:  changes.New(),
		opts:     opts,
	}, nil
}

// countStudents returns the number of distinct registration numbers across all sheets.
func countStudents(wb *models.WorkbookData) int {
	seen := make(map[string]bool)
	for _, s := range wb.Sheets {
		for _, r := range s.Rows {
			if reg := r.RegistrationNumber(); reg != "" {
				seen[reg] = true
			}
		}
	}
	return len(seen)
}
