// Package output serialises loaded workbooks and computed results as JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// WorkbookOverview is the JSON document describing a loaded workbook.
type WorkbookOverview struct {
	BookName string                    `json:"book_name"`
	Sheets   []models.SheetSummaryInfo `json:"sheets"`
}

// ToJSON serialises v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WorkbookToJSON serialises the sheet overview of a workbook, without student rows.
func WorkbookToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return ToJSON(WorkbookOverview{BookName: wb.BookName, Sheets: wb.Overview()}, pretty)
}

// SheetToJSON serialises one sheet including its rows.
func SheetToJSON(sheet *models.Sheet, pretty bool) ([]byte, error) {
	return ToJSON(sheet, pretty)
}
