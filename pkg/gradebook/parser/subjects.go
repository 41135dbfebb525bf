package parser

import (
	"regexp"
	"strings"
)

// SubjectMode selects how subject columns are told apart from administrative ones.
type SubjectMode string

const (
	// SubjectModeStrict accepts only names following the subject-code convention,
	// e.g. "BSAA 11013 Financial Accounting".
	SubjectModeStrict SubjectMode = "strict-pattern"
	// SubjectModeKeyword accepts every column not ruled out by the administrative
	// keyword and grade-label deny lists.
	SubjectModeKeyword SubjectMode = "keyword-exclusion"
)

// Separators may be any Unicode space; sheets exported from Excel often carry NBSP.
var subjectCodePattern = regexp.MustCompile(`^[A-Z]{2,6}[\s\p{Zs}]+\d{5}[\s\p{Zs}]+`)

// ExcludeKeywords mark administrative or summary columns in keyword-exclusion mode.
var ExcludeKeywords = []string{
	"serial", "registration", "name", "general", "special", "drop", "batch", "transfer",
	"finance clearance", "results confirmation", "gpa", "class", "effective", "total no",
	"nq ese", "ab ese", "repeat ese", "hold", "results released", "range of marks", "grade points", "letter grade",
	"pendings", "pending",
}

// GradeLabelColumns are grade-distribution column titles that are never subjects.
var GradeLabelColumns = []string{
	"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "E",
	"AB", "B and Above", "C and above", "A+/A/A-", "EX", "-", "C-/D+",
}

// IsSubject classifies a column name. It depends on nothing but the name text.
func IsSubject(name string, mode SubjectMode) bool {
	name = strings.TrimSpace(name)
	if mode == SubjectModeKeyword {
		return !excludedByKeyword(name)
	}
	return subjectCodePattern.MatchString(name)
}

func excludedByKeyword(name string) bool {
	ln := strings.ToLower(name)
	if ln == "s" || strings.Contains(ln, "unnamed") {
		return true
	}
	for _, k := range ExcludeKeywords {
		if strings.Contains(ln, k) {
			return true
		}
	}
	for _, g := range GradeLabelColumns {
		if name == g {
			return true
		}
	}
	return false
}

// Credit derives a subject's credit weight from the last digit in its name.
// No digit, or a last digit of 0, means the subject carries no weight.
func Credit(name string) (float64, bool) {
	for i := len(name) - 1; i >= 0; i-- {
		c := name[i]
		if c < '0' || c > '9' {
			continue
		}
		if c == '0' {
			return 0, false
		}
		return float64(c - '0'), true
	}
	return 0, false
}

// ValidSubjectMode reports whether m names a supported mode.
func ValidSubjectMode(m SubjectMode) bool {
	return m == SubjectModeStrict || m == SubjectModeKeyword
}
