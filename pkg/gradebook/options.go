// Package gradebook loads exam-result workbooks, computes transcripts and writes grade changes back.
package gradebook

import (
	"fmt"

	"github.com/go-kit/log"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/parser"
)

// Mode represents the subject-column detection mode.
type Mode string

const (
	// ModeStrictPattern treats only columns named like "BSAA 11013 Financial Accounting" as subjects.
	ModeStrictPattern Mode = Mode(parser.SubjectModeStrict)
	// ModeKeywordExclusion treats every column not matching an administrative keyword
	// or grade-label title as a subject.
	ModeKeywordExclusion Mode = Mode(parser.SubjectModeKeyword)
)

// Options configures loading and committing.
type Options struct {
	// Mode specifies how subject columns are detected.
	Mode Mode
	// HeaderScanRows is how many leading rows are searched for the header.
	// If zero, defaults to 10.
	HeaderScanRows int
	// Logger receives diagnostic output. If nil, logging is discarded.
	Logger log.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Mode:           ModeStrictPattern,
		HeaderScanRows: parser.DefaultHeaderScanRows,
	}
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !parser.ValidSubjectMode(parser.SubjectMode(m)) {
		return "", fmt.Errorf("invalid mode: %s (must be %s or %s)", s, ModeStrictPattern, ModeKeywordExclusion)
	}
	return m, nil
}

// logger returns the configured logger or a no-op one.
func (o Options) logger() log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.NewNopLogger()
}

// normalizeParams translates options into parser parameters.
func (o Options) normalizeParams() parser.NormalizeParams {
	p := parser.DefaultNormalizeParams()
	if o.Mode != "" {
		p.Mode = parser.SubjectMode(o.Mode)
	}
	if o.HeaderScanRows > 0 {
		p.HeaderScanRows = o.HeaderScanRows
	}
	return p
}
