package gradebook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-kit/log/level"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/changes"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/grade"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/writer"
)

// Session is the in-memory state of one loaded workbook: every sheet plus the
// pending edits and deletes awaiting Commit. A Session is not safe for concurrent use.
type Session struct {
	workbook *models.WorkbookData
	tracker  *changes.Tracker
	opts     Options
}

// Workbook returns the loaded workbook, including uncommitted in-memory changes.
func (s *Session) Workbook() *models.WorkbookData {
	return s.workbook
}

// Sheets returns the loaded batch names in workbook order.
func (s *Session) Sheets() []string {
	return s.workbook.SheetOrder
}

// Sheet returns the named batch.
func (s *Session) Sheet(name string) (*models.Sheet, error) {
	sheet := s.workbook.Sheet(name)
	if sheet == nil {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}
	return sheet, nil
}

func (s *Session) match(sheet *models.Sheet, i int) models.Match {
	return models.Match{
		Sheet:              sheet.Name,
		Index:              i,
		RegistrationNumber: sheet.Rows[i].RegistrationNumber(),
		Name:               sheet.StudentName(i),
	}
}

// Search returns every row, across all batches, whose registration number contains
// term, ignoring case. Several matches are returned for the caller to choose from.
func (s *Session) Search(term string) []models.Match {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []models.Match
	for _, name := range s.workbook.SheetOrder {
		sheet := s.workbook.Sheets[name]
		for i, r := range sheet.Rows {
			if strings.Contains(strings.ToLower(r.RegistrationNumber()), term) {
				out = append(out, s.match(sheet, i))
			}
		}
	}
	return out
}

// Lookup returns the rows of one batch whose registration number equals reg.
// Duplicates yield several matches; none yields ErrStudentNotFound.
func (s *Session) Lookup(sheetName, reg string) ([]models.Match, error) {
	sheet, err := s.Sheet(sheetName)
	if err != nil {
		return nil, err
	}
	reg = strings.TrimSpace(reg)
	var out []models.Match
	for i, r := range sheet.Rows {
		if r.RegistrationNumber() == reg {
			out = append(out, s.match(sheet, i))
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrStudentNotFound, reg, sheetName)
	}
	return out, nil
}

// Students lists the students of a batch ordered by registration number, then name.
func (s *Session) Students(sheetName string) ([]models.Match, error) {
	sheet, err := s.Sheet(sheetName)
	if err != nil {
		return nil, err
	}
	out := make([]models.Match, 0, len(sheet.Rows))
	for i := range sheet.Rows {
		if sheet.Rows[i].RegistrationNumber() == "" {
			continue
		}
		out = append(out, s.match(sheet, i))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RegistrationNumber != out[j].RegistrationNumber {
			return out[i].RegistrationNumber < out[j].RegistrationNumber
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// resolve returns the sheet and row a match points to, provided the row still
// carries the same registration number.
func (s *Session) resolve(m models.Match) (*models.Sheet, *models.Row, error) {
	sheet, err := s.Sheet(m.Sheet)
	if err != nil {
		return nil, nil, err
	}
	if m.Index < 0 || m.Index >= len(sheet.Rows) || sheet.Rows[m.Index].RegistrationNumber() != m.RegistrationNumber {
		return nil, nil, fmt.Errorf("%w: %s in %s", ErrStudentNotFound, m.RegistrationNumber, m.Sheet)
	}
	return sheet, &sheet.Rows[m.Index], nil
}

// Transcript computes the result view of one student. A non-empty filter limits the
// listed subjects to those containing it (ignoring case); the GPA always covers every subject.
func (s *Session) Transcript(m models.Match, filter string) (*models.Transcript, error) {
	sheet, row, err := s.resolve(m)
	if err != nil {
		return nil, err
	}

	t := &models.Transcript{
		Name:               sheet.StudentName(m.Index),
		RegistrationNumber: row.RegistrationNumber(),
		Batch:              sheet.Name,
	}
	filter = strings.ToLower(strings.TrimSpace(filter))

	standing, weighted := evaluateRow(sheet, row)
	for i, sub := range sheet.Subjects {
		if filter != "" && !strings.Contains(strings.ToLower(sub), filter) {
			continue
		}
		res := models.SubjectResult{No: i + 1, Subject: sub, Grade: displayGrade(row.Get(sub))}
		if p, ok := grade.Point(row.Get(sub)); ok {
			res.Points = &p
		}
		if c, ok := sheet.Credit(sub); ok {
			res.Credit = &c
		}
		t.Results = append(t.Results, res)
	}

	t.GPA = standing.GPA
	t.DisplayGPA = standing.Truncated
	t.Class = standing.Class
	t.Weighted = weighted
	return t, nil
}

// evaluateRow computes a row's standing over its recognised grades. Credits are used
// only when at least one graded subject carries a weight.
func evaluateRow(sheet *models.Sheet, row *models.Row) (grade.Standing, bool) {
	var grades []string
	var credits []float64
	weighted := false
	for _, sub := range sheet.Subjects {
		g := row.Get(sub)
		if _, ok := grade.Point(g); !ok {
			continue
		}
		c, ok := sheet.Credit(sub)
		if ok {
			weighted = true
		}
		grades = append(grades, g)
		credits = append(credits, c)
	}
	if !weighted {
		credits = nil
	}
	return grade.Evaluate(grades, credits), weighted
}

func displayGrade(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}

func displayPoints(g string) string {
	if p, ok := grade.Point(g); ok {
		return fmt.Sprintf("%.2f", p)
	}
	return "-"
}

// SubjectResults lists every student's grade for one subject of a batch.
func (s *Session) SubjectResults(sheetName, subject string) (*models.SubjectResults, error) {
	sheet, err := s.Sheet(sheetName)
	if err != nil {
		return nil, err
	}
	if !sheet.HasSubject(subject) {
		return nil, fmt.Errorf("%w: %s in %s", ErrSubjectNotFound, subject, sheetName)
	}

	out := &models.SubjectResults{Batch: sheet.Name, Subject: subject}
	for i, r := range sheet.Rows {
		name := "-"
		if sheet.NameColumn != "" {
			name = displayGrade(r.Get(sheet.NameColumn))
		}
		out.Rows = append(out.Rows, models.SubjectResultRow{
			No:                 i + 1,
			RegistrationNumber: displayGrade(r.RegistrationNumber()),
			Name:               name,
			Grade:              displayGrade(r.Get(subject)),
			Points:             displayPoints(r.Get(subject)),
		})
	}
	return out, nil
}

// SheetSummary computes the GPA and class of every student in a batch.
func (s *Session) SheetSummary(sheetName string) (*models.SheetSummary, error) {
	sheet, err := s.Sheet(sheetName)
	if err != nil {
		return nil, err
	}

	out := &models.SheetSummary{Batch: sheet.Name}
	for i := range sheet.Rows {
		row := &sheet.Rows[i]
		standing, _ := evaluateRow(sheet, row)
		graded := 0
		for _, sub := range sheet.Subjects {
			if _, ok := grade.Point(row.Get(sub)); ok {
				graded++
			}
		}
		out.Students = append(out.Students, models.StudentStanding{
			RegistrationNumber: row.RegistrationNumber(),
			Name:               sheet.StudentName(i),
			Graded:             graded,
			GPA:                grade.Format(standing.Truncated),
			Class:              standing.Class,
		})
	}
	return out, nil
}

// resolveWritable is resolve for changes that Commit must replay. Commit addresses
// rows by registration number and reaches only the last row carrying it, so an
// earlier duplicate is refused with ErrDuplicateRow.
func (s *Session) resolveWritable(m models.Match) (*models.Sheet, *models.Row, error) {
	sheet, row, err := s.resolve(m)
	if err != nil {
		return nil, nil, err
	}
	for i := m.Index + 1; i < len(sheet.Rows); i++ {
		if sheet.Rows[i].RegistrationNumber() == m.RegistrationNumber {
			return nil, nil, fmt.Errorf("%w: %s in %s", ErrDuplicateRow, m.RegistrationNumber, m.Sheet)
		}
	}
	// A pending delete already claims the stored row for this number.
	for _, reg := range s.tracker.Deletes(sheet.Name) {
		if reg == m.RegistrationNumber {
			return nil, nil, fmt.Errorf("%w: %s in %s is pending removal", ErrDuplicateRow, m.RegistrationNumber, m.Sheet)
		}
	}
	return sheet, row, nil
}

// EditGrade sets a subject grade in memory and records it for the next Commit.
// Any text is accepted; unrecognised values simply do not count towards the GPA.
// When the registration number is duplicated only the last matching row can be
// edited; earlier ones return ErrDuplicateRow.
func (s *Session) EditGrade(m models.Match, subject, value string) error {
	sheet, row, err := s.resolveWritable(m)
	if err != nil {
		return err
	}
	if !sheet.HasSubject(subject) {
		return fmt.Errorf("%w: %s in %s", ErrSubjectNotFound, subject, sheet.Name)
	}
	row.Cells[subject] = value
	s.tracker.RecordEdit(sheet.Name, row.RegistrationNumber(), subject, value)
	level.Debug(s.opts.logger()).Log("msg", "grade edit pending", "sheet", sheet.Name,
		"registration", row.RegistrationNumber(), "subject", subject)
	return nil
}

// DeleteStudent removes a row in memory and records its deletion for the next Commit.
// Matches obtained before the deletion may no longer resolve. As with EditGrade,
// only the last row of a duplicated registration number can be deleted.
func (s *Session) DeleteStudent(m models.Match) error {
	sheet, row, err := s.resolveWritable(m)
	if err != nil {
		return err
	}
	reg := row.RegistrationNumber()
	sheet.Rows = append(sheet.Rows[:m.Index], sheet.Rows[m.Index+1:]...)
	s.tracker.RecordDelete(sheet.Name, reg)
	level.Debug(s.opts.logger()).Log("msg", "student delete pending", "sheet", sheet.Name, "registration", reg)
	return nil
}

// Pending reports whether there are uncommitted edits or deletes.
func (s *Session) Pending() bool {
	return !s.tracker.IsEmpty()
}

// PendingCount returns the number of uncommitted cell edits and deletes.
func (s *Session) PendingCount() int {
	return s.tracker.Len()
}

// Commit writes pending changes back into the source workbook and, on success,
// clears them. It returns ErrNoChanges when nothing is pending and an error
// wrapping ErrFileLocked when the file is held open elsewhere.
func (s *Session) Commit() (models.CommitResult, error) {
	if s.tracker.IsEmpty() {
		return models.CommitResult{}, ErrNoChanges
	}
	opts := writer.DefaultOptions()
	opts.HeaderScanRows = s.opts.normalizeParams().HeaderScanRows
	opts.Logger = s.opts.logger()

	res, err := writer.Commit(s.workbook.Path, s.tracker, opts)
	if err != nil {
		return res, err
	}
	s.tracker.Clear()
	return res, nil
}
