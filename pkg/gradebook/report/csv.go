package report

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// SubjectResultsCSV writes one subject's result list as CSV with a header line.
func SubjectResultsCSV(w io.Writer, r *models.SubjectResults) error {
	return gocsv.Marshal(r.Rows, w)
}

// SheetSummaryCSV writes every student's GPA and class as CSV with a header line.
func SheetSummaryCSV(w io.Writer, s *models.SheetSummary) error {
	return gocsv.Marshal(s.Students, w)
}
