package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/parser"
)

// SetPrintArea defines the print area of sheet.
func SetPrintArea(f *excelize.File, sheet string, a models.PrintArea) error {
	from, err := excelize.CoordinatesToCellName(a.C1, a.R1, true)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(a.C2, a.R2, true)
	if err != nil {
		return err
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     parser.PrintAreaName,
		RefersTo: fmt.Sprintf("'%s'!%s:%s", sheet, from, to),
		Scope:    sheet,
	})
}
