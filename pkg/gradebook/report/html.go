// Package report renders transcripts and batch results as printable HTML, xlsx and CSV.
package report

import (
	"html"
	"html/template"
	"io"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/grade"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// DefaultInstitution heads printed reports when none is configured.
const DefaultInstitution = "SAB Campus of Chartered Accountants Sri Lanka"

// Options configures printed reports.
type Options struct {
	// Institution is the heading line.
	Institution string
	// IssuedAt is shown as the issue date. If zero, the current time is used.
	IssuedAt time.Time
	// IncludeGPA adds the GPA and class summary to a transcript.
	IncludeGPA bool
}

// DefaultOptions returns default report options.
func DefaultOptions() Options {
	return Options{Institution: DefaultInstitution, IncludeGPA: true}
}

var sanitizer = bluemonday.StrictPolicy()

// clean strips markup from workbook text. The template escapes the result,
// so bluemonday's own entity escaping is undone first.
func clean(s string) string {
	return html.UnescapeString(sanitizer.Sanitize(s))
}

var funcs = template.FuncMap{
	"clean": clean,
	"inc":   func(i int) int { return i + 1 },
	"gpa":   grade.Format,
}

const pageStyle = `
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 25px 35px; color: #333; }
h1, h2 { text-align: center; margin: 0; padding: 0; }
h3 { text-align: center; color: #666; margin: 5px 0; }
.header-box { display: flex; justify-content: space-between; border-top: 2px solid #333; border-bottom: 2px solid #333; padding: 10px 0; margin: 10px 0; }
.info-row { margin-bottom: 4px; font-size: 14px; }
table { width: 100%; border-collapse: collapse; margin-top: 5px; }
th { background-color: #f2f2f2; text-align: left; padding: 8px; border-bottom: 2px solid #aaa; font-size: 14px; }
td { padding: 6px 8px; font-size: 13px; border-bottom: 1px solid #ddd; }
.summary-box { margin-top: 15px; padding: 12px; background-color: #f9f9f9; border: 1px solid #ddd; }
.page-footer { text-align: center; font-size: 11px; color: #666; margin-top: 25px; }
@media print {
  body { -webkit-print-color-adjust: exact; margin: 15px 25px 45px; }
  .page-footer { position: fixed; bottom: 0; left: 0; right: 0; font-size: 9px; border-top: 1px solid #ddd; background: white; }
  .summary-box { page-break-inside: avoid; }
}
`

const transcriptHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Result Sheet - {{clean .T.RegistrationNumber}}</title>
<style>{{.Style}}</style>
</head>
<body>
<h2 class="institution">{{clean .Institution}}</h2>
<h1>Student Result Sheet</h1>
<h3 class="batch">{{clean .T.Batch}}</h3>
<div class="header-box">
  <div>
    <div class="info-row"><b>Name:</b> <span class="student-name">{{clean .T.Name}}</span></div>
    <div class="info-row"><b>Registration No:</b> <span class="registration">{{clean .T.RegistrationNumber}}</span></div>
  </div>
  <div>
    <div class="info-row"><b>Date Issued:</b> <span class="issued">{{.Issued}}</span></div>
  </div>
</div>
<table class="results">
<thead><tr><th width="10%">#</th><th width="70%">Subject</th><th width="20%" style="text-align:center;">Grade</th></tr></thead>
<tbody>
{{- range $i, $r := .T.Results}}
<tr><td>{{inc $i}}</td><td>{{clean $r.Subject}}</td><td style="text-align:center;"><b>{{clean $r.Grade}}</b></td></tr>
{{- end}}
</tbody>
</table>
{{- if .IncludeGPA}}
<div class="summary-box">
<table style="margin-top:0; width:50%">
<tr><td><b>GPA:</b></td><td class="gpa">{{gpa .T.DisplayGPA}}</td></tr>
<tr><td><b>Class Awarded:</b></td><td class="class">{{.T.Class}}</td></tr>
</table>
</div>
{{- end}}
<div class="page-footer"><p>Generated by {{clean .Institution}} - Student Results System</p></div>
</body>
</html>
`

const sheetHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Full Sheet - {{clean .Sheet.Name}}</title>
<style>{{.Style}}</style>
</head>
<body>
<h2 class="institution">{{clean .Institution}}</h2>
<h1>Full Result Sheet</h1>
<h3 class="batch">{{clean .Sheet.Name}}</h3>
<table class="results">
<thead><tr>{{range .Columns}}<th>{{clean .}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{clean .}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
<div class="page-footer"><p>Date Issued: {{.Issued}}</p></div>
</body>
</html>
`

const subjectHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Subject Results - {{clean .R.Subject}}</title>
<style>{{.Style}}</style>
</head>
<body>
<h2 class="institution">{{clean .Institution}}</h2>
<h1 class="subject">{{clean .R.Subject}}</h1>
<h3 class="batch">{{clean .R.Batch}}</h3>
<table class="results">
<thead><tr><th>#</th><th>Registration No</th><th>Name</th><th>Grade</th><th>Points</th></tr></thead>
<tbody>
{{- range .R.Rows}}
<tr><td>{{.No}}</td><td>{{clean .RegistrationNumber}}</td><td>{{clean .Name}}</td><td>{{clean .Grade}}</td><td>{{.Points}}</td></tr>
{{- end}}
</tbody>
</table>
<div class="page-footer"><p>Date Issued: {{.Issued}}</p></div>
</body>
</html>
`

var (
	transcriptTmpl = template.Must(template.New("transcript").Funcs(funcs).Parse(transcriptHTML))
	sheetTmpl      = template.Must(template.New("sheet").Funcs(funcs).Parse(sheetHTML))
	subjectTmpl    = template.Must(template.New("subject").Funcs(funcs).Parse(subjectHTML))
)

type page struct {
	Style       template.CSS
	Institution string
	Issued      string
}

func newPage(opts Options) page {
	if opts.Institution == "" {
		opts.Institution = DefaultInstitution
	}
	if opts.IssuedAt.IsZero() {
		opts.IssuedAt = time.Now()
	}
	return page{
		Style:       template.CSS(pageStyle),
		Institution: opts.Institution,
		Issued:      opts.IssuedAt.Format("2006-01-02 15:04:05"),
	}
}

// TranscriptHTML writes a printable result sheet for one student.
func TranscriptHTML(w io.Writer, t *models.Transcript, opts Options) error {
	return transcriptTmpl.Execute(w, struct {
		page
		T          *models.Transcript
		IncludeGPA bool
	}{newPage(opts), t, opts.IncludeGPA})
}

// SheetHTML writes the full batch table: registration number, student name and
// every subject column.
func SheetHTML(w io.Writer, sheet *models.Sheet, opts Options) error {
	columns := []string{models.RegistrationColumn}
	if sheet.NameColumn != "" {
		columns = append(columns, sheet.NameColumn)
	}
	columns = append(columns, sheet.Subjects...)

	rows := make([][]string, 0, len(sheet.Rows))
	for _, r := range sheet.Rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = r.Get(c)
		}
		rows = append(rows, cells)
	}

	return sheetTmpl.Execute(w, struct {
		page
		Sheet   *models.Sheet
		Columns []string
		Rows    [][]string
	}{newPage(opts), sheet, columns, rows})
}

// SubjectResultsHTML writes one subject's result list for a batch.
func SubjectResultsHTML(w io.Writer, r *models.SubjectResults, opts Options) error {
	return subjectTmpl.Execute(w, struct {
		page
		R *models.SubjectResults
	}{newPage(opts), r})
}
