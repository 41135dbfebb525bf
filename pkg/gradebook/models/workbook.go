package models

// WorkbookData represents a loaded result workbook.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Path is the file the workbook was loaded from.
	Path string `json:"-"`
	// SheetOrder lists loaded sheet names in workbook order.
	SheetOrder []string `json:"sheet_order"`
	// Sheets maps sheet name to its normalised data.
	Sheets map[string]*Sheet `json:"sheets"`
}

// Sheet returns the named sheet, or nil.
func (w *WorkbookData) Sheet(name string) *Sheet {
	if w == nil {
		return nil
	}
	return w.Sheets[name]
}

// SheetSummaryInfo is the per-sheet entry of a workbook overview.
type SheetSummaryInfo struct {
	Name     string             `json:"name"`
	Students int                `json:"students"`
	Subjects []string           `json:"subjects"`
	Credits  map[string]float64 `json:"credits,omitempty"`

	// PrintAreas lists the sheet's print areas, if any.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}

// Overview lists each loaded sheet with its size and subjects.
func (w *WorkbookData) Overview() []SheetSummaryInfo {
	out := make([]SheetSummaryInfo, 0, len(w.SheetOrder))
	for _, name := range w.SheetOrder {
		s := w.Sheets[name]
		out = append(out, SheetSummaryInfo{
			Name:       name,
			Students:   len(s.Rows),
			Subjects:   s.Subjects,
			Credits:    s.Credits,
			PrintAreas: s.PrintAreas,
		})
	}
	return out
}
