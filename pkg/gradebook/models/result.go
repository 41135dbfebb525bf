package models

// Match identifies one student row found by a search or lookup.
type Match struct {
	// Sheet is the batch the row belongs to.
	Sheet string `json:"sheet"`
	// Index is the row index within the sheet's Rows.
	Index int `json:"index"`
	// RegistrationNumber is the row's registration number.
	RegistrationNumber string `json:"registration_number"`
	// Name is the student name, or "Unknown".
	Name string `json:"name"`
}

// SubjectResult is one subject line of a transcript.
type SubjectResult struct {
	// No is the 1-based position of the subject in the sheet.
	No int `json:"no"`
	// Subject is the subject column name.
	Subject string `json:"subject"`
	// Grade is the display grade; "-" when blank.
	Grade string `json:"grade"`
	// Points is the grade point, nil when ungraded.
	Points *float64 `json:"points,omitempty"`
	// Credit is the credit weight, nil when the subject has none.
	Credit *float64 `json:"credit,omitempty"`
}

// Transcript is the computed result view of one student.
type Transcript struct {
	Name               string          `json:"name"`
	RegistrationNumber string          `json:"registration_number"`
	Batch              string          `json:"batch"`
	Results            []SubjectResult `json:"results"`
	// GPA is the untruncated grade-point average.
	GPA float64 `json:"gpa"`
	// DisplayGPA is the GPA floored to two decimals.
	DisplayGPA float64 `json:"display_gpa"`
	Class      string  `json:"class"`
	// Weighted reports whether credit weights were applied.
	Weighted bool `json:"weighted"`
}

// SubjectResultRow is one student's result for a single subject.
type SubjectResultRow struct {
	No                 int    `json:"no" csv:"#"`
	RegistrationNumber string `json:"registration_number" csv:"Registration No"`
	Name               string `json:"name" csv:"Name"`
	Grade              string `json:"grade" csv:"Grade"`
	Points             string `json:"points" csv:"Points"`
}

// SubjectResults lists every student's result for one subject of a batch.
type SubjectResults struct {
	Batch   string             `json:"batch"`
	Subject string             `json:"subject"`
	Rows    []SubjectResultRow `json:"rows"`
}

// StudentStanding is one student's GPA and class within a batch.
type StudentStanding struct {
	RegistrationNumber string `json:"registration_number" csv:"Registration Number"`
	Name               string `json:"name" csv:"Name"`
	Graded             int    `json:"graded" csv:"Graded Subjects"`
	GPA                string `json:"gpa" csv:"GPA"`
	Class              string `json:"class" csv:"Class"`
}

// SheetSummary is the batch-wide standing report.
type SheetSummary struct {
	Batch    string            `json:"batch"`
	Students []StudentStanding `json:"students"`
}

// SheetCommit reports what a commit did to one sheet.
type SheetCommit struct {
	Sheet   string `json:"sheet"`
	Applied int    `json:"applied"`
	Deleted int    `json:"deleted"`
	Skipped int    `json:"skipped"`
}

// CommitResult reports the outcome of writing pending changes back.
type CommitResult struct {
	// Applied counts overwritten cells.
	Applied int `json:"applied"`
	// Deleted counts removed rows.
	Deleted int `json:"deleted"`
	// Skipped counts edits and deletes whose target no longer resolves.
	Skipped int           `json:"skipped"`
	Sheets  []SheetCommit `json:"sheets,omitempty"`
}
