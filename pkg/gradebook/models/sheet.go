package models

// Sheet represents one batch: a normalised table of student rows.
type Sheet struct {
	// Name is the worksheet (batch) name.
	Name string `json:"name"`
	// HeaderRow is the 1-based row number of the detected header.
	HeaderRow int `json:"header_row"`
	// Columns lists column names in left-to-right order.
	Columns []string `json:"columns"`
	// Rows contains the student rows in source order.
	Rows []Row `json:"rows,omitempty"`
	// Subjects lists subject column names in left-to-right order.
	Subjects []string `json:"subjects"`
	// Credits maps a subject to its credit weight. Subjects without a weight are absent.
	Credits map[string]float64 `json:"credits,omitempty"`
	// NameColumn is the first column whose name mentions "name", or "".
	NameColumn string `json:"name_column,omitempty"`
	// PrintAreas lists the print areas defined for the sheet.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}

// HasSubject reports whether subject is one of the sheet's subject columns.
func (s *Sheet) HasSubject(subject string) bool {
	for _, sub := range s.Subjects {
		if sub == subject {
			return true
		}
	}
	return false
}

// StudentName returns the name cell of row i, or "Unknown" when the sheet
// has no name column or the cell is blank.
func (s *Sheet) StudentName(i int) string {
	if s.NameColumn == "" || i < 0 || i >= len(s.Rows) {
		return "Unknown"
	}
	if v := s.Rows[i].Get(s.NameColumn); v != "" {
		return v
	}
	return "Unknown"
}

// Credit returns the credit weight for subject and whether one exists.
func (s *Sheet) Credit(subject string) (float64, bool) {
	c, ok := s.Credits[subject]
	return c, ok
}
