// Package main provides the CLI entry point for gradebook.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"

	"github.com/ukaji3/gradebook-go/internal/config"
	"github.com/ukaji3/gradebook-go/internal/logging"
	"github.com/ukaji3/gradebook-go/pkg/gradebook"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/report"
)

var (
	envFile     string
	mode        string
	logLevel    string
	institution string
	headerRows  int

	cfg    config.Config
	logger log.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gradebook",
		Short: "Look up, report and edit exam results stored in xlsx workbooks",
		Long: `gradebook reads exam-result workbooks (one sheet per batch), computes
GPA and class of award, renders transcripts and writes grade edits back.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&envFile, "env-file", ".env", "Optional .env file with GRADEBOOK_* settings")
	pf.StringVar(&mode, "mode", "", "Subject detection: strict-pattern or keyword-exclusion")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&institution, "institution", "", "Institution name printed on reports")
	pf.IntVar(&headerRows, "header-rows", 0, "Rows searched for the registration header")

	rootCmd.AddCommand(
		newSheetsCmd(),
		newSearchCmd(),
		newStudentsCmd(),
		newTranscriptCmd(),
		newSubjectCmd(),
		newReportCmd(),
		newEditCmd(),
	)
	return rootCmd
}

// setup resolves configuration (flags over environment over defaults) and the logger.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(logLevel)
	}
	if flags.Changed("institution") {
		cfg.Institution = institution
	}
	if flags.Changed("header-rows") {
		cfg.HeaderScanRows = headerRows
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = logging.New(os.Stderr, cfg.LogLevel)
	return err
}

func load(path string) (*gradebook.Session, error) {
	opts := cfg.Options()
	opts.Logger = logger
	s, err := gradebook.Load(path, opts)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	return s, nil
}

func reportOptions(includeGPA bool) report.Options {
	opts := report.DefaultOptions()
	opts.Institution = cfg.Institution
	opts.IncludeGPA = includeGPA
	return opts
}

// pick narrows candidate matches to one. row is the 1-based candidate number
// chosen by the user, or 0 when none was given.
func pick(cmd *cobra.Command, matches []models.Match, row int) (models.Match, error) {
	if row > 0 {
		if row > len(matches) {
			return models.Match{}, fmt.Errorf("--row %d out of range (1-%d)", row, len(matches))
		}
		return matches[row-1], nil
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	printMatches(cmd, matches)
	return models.Match{}, fmt.Errorf("%d students match; choose one with --row", len(matches))
}

func writeFile(path string, render func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
