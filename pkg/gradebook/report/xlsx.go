package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// ResultsSheet is the sheet name of a student export.
const ResultsSheet = "Results"

var fileNameReplacer = strings.NewReplacer("/", "-", "\\", "-")

// TranscriptFileName returns the download name of a student export,
// e.g. "SAB-21-001_Amal Perera_Results.xlsx".
func TranscriptFileName(t *models.Transcript) string {
	return fileNameReplacer.Replace(fmt.Sprintf("%s_%s_Results.xlsx", t.RegistrationNumber, t.Name))
}

// TranscriptXLSX builds a one-sheet workbook listing a student's subjects and grades.
// Every row repeats the student columns; GPA and Class are appended when includeGPA is set.
// The caller owns the returned file and must close it.
func TranscriptXLSX(t *models.Transcript, includeGPA bool) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		f.Close()
		return nil, err
	}

	header := []interface{}{"", "Student Name", "Registration Number", "Batch", "Subject", "Grade"}
	if includeGPA {
		header = append(header, "GPA", "Class")
	}
	rows := [][]interface{}{header}
	for i, r := range t.Results {
		row := []interface{}{i + 1, t.Name, t.RegistrationNumber, t.Batch, r.Subject, r.Grade}
		if includeGPA {
			row = append(row, t.DisplayGPA, t.Class)
		}
		rows = append(rows, row)
	}

	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := row
		if err := f.SetSheetRow(ResultsSheet, cellName, &values); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := styleHeader(f, len(header)); err != nil {
		f.Close()
		return nil, err
	}
	area := models.PrintArea{R1: 1, C1: 1, R2: len(rows), C2: len(header)}
	if err := SetPrintArea(f, ResultsSheet, area); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func styleHeader(f *excelize.File, width int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(width, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ResultsSheet, "A1", last, style); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(width)
	if err != nil {
		return err
	}
	return f.SetColWidth(ResultsSheet, "B", lastCol, 22)
}
