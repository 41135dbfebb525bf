package gradebook

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/writer"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be opened as a workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrNoSheets indicates no sheet of the workbook had a registration header.
var ErrNoSheets = errors.New("no result sheets found")

// ErrFileLocked indicates the workbook is held open by another process.
var ErrFileLocked = writer.ErrFileLocked

// ErrSheetNotFound indicates an unknown batch name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrStudentNotFound indicates no row matched.
var ErrStudentNotFound = errors.New("student not found")

// ErrSubjectNotFound indicates an unknown subject column.
var ErrSubjectNotFound = errors.New("subject not found")

// ErrDuplicateRow indicates a change to a row whose registration number repeats further
// down the sheet; saved changes can only reach the last such row.
var ErrDuplicateRow = errors.New("registration number repeats in a later row; only the last row can be changed")

// ErrNoChanges indicates a commit was requested with nothing pending.
var ErrNoChanges = errors.New("no changes to save")

// CommitError represents a failure while writing changes back.
type CommitError = writer.CommitError

// LoadError represents an error while loading a workbook.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load workbook %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{
		Path: path,
		Err:  err,
	}
}
