// Package models defines data structures for result workbooks.
package models

// RegistrationColumn is the canonical name given to the registration-number column.
const RegistrationColumn = "Registration Number"

// Row represents one student row of a sheet.
type Row struct {
	// SourceRow is the 1-based row number in the source worksheet.
	SourceRow int `json:"source_row"`
	// Cells maps column name to trimmed cell text.
	Cells map[string]string `json:"cells"`
}

// Get returns the cell text for column, or "" when absent.
func (r Row) Get(column string) string {
	return r.Cells[column]
}

// RegistrationNumber returns the row's registration number.
func (r Row) RegistrationNumber() string {
	return r.Cells[RegistrationColumn]
}
