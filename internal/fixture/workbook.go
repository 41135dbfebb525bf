// Package fixture builds small result workbooks for tests.
package fixture

import (
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Sheet names and subjects of the sample workbook.
const (
	BatchSheet   = "Batch 21"
	NotesSheet   = "Notes"
	Accounting   = "BSAA 11013 Financial Accounting"
	BusinessLaw  = "BSAA 11022 Business Law"
	RemarksTitle = "Remarks"
)

// BatchRows is the content of BatchSheet, top to bottom. Row 3 is the header and
// row 4 carries the subject codes for columns E and F.
var BatchRows = [][]interface{}{
	{"SAB Campus Examination Results"},
	{},
	{"Serial", "Registration No", "Name of Student", "Batch", "Subject 1", "Subject 2", "Remarks", "GPA", "Class"},
	{nil, nil, nil, nil, Accounting, BusinessLaw},
	{1, "SAB/21/001", "Amal Perera", "21", "A", "B+", "", "", ""},
	{2, "SAB/21/002", "Bimal Silva", "21", "C", "", "repeat"},
	{3, "SAB/21/003", "Chathu Fernando", "21", "B-", "F"},
	{4, "SAB/21/002", "Bimal Silva", "21", "B", "A-"},
}

// NotesRows is the content of NotesSheet, which has no registration header.
var NotesRows = [][]interface{}{
	{"Moderation notes"},
	{"Released on schedule"},
}

// NewResultWorkbook builds the sample workbook in memory.
func NewResultWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", BatchSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(NotesSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRows(f, BatchSheet, BatchRows); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRows(f, NotesSheet, NotesRows); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// SaveResultWorkbook writes the sample workbook to dir and returns its path.
func SaveResultWorkbook(dir string) (string, error) {
	f, err := NewResultWorkbook()
	if err != nil {
		return "", err
	}
	defer f.Close()

	path := filepath.Join(dir, "results.xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

// SaveRows writes a single-sheet workbook with the given rows and returns its path.
func SaveRows(dir, sheet string, rows [][]interface{}) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", err
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "rows.xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cellName, &values); err != nil {
			return err
		}
	}
	return nil
}
