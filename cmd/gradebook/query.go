package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ukaji3/gradebook-go/pkg/gradebook"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/grade"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/output"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/report"
)

var (
	sheetName   string
	regNo       string
	row         int
	subjectName string
	filter      string
	noGPA       bool
	asJSON      bool
	pretty      bool
	htmlPath    string
	csvPath     string
	xlsxPath    string
	fullSheet   bool
)

func printMatches(cmd *cobra.Command, matches []models.Match) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tSHEET\tREGISTRATION NO\tNAME")
	for i, m := range matches {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, m.Sheet, m.RegistrationNumber, m.Name)
	}
	w.Flush()
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func newSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets <workbook.xlsx>",
		Short: "List batches with their student counts and subjects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				data, err := output.WorkbookToJSON(s.Workbook(), pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SHEET\tSTUDENTS\tSUBJECTS\tPRINT AREAS")
			for _, info := range s.Workbook().Overview() {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", info.Name, info.Students, len(info.Subjects), len(info.PrintAreas))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the workbook overview as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <workbook.xlsx> <registration-fragment>",
		Short: "Find students in every batch by part of their registration number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(args[0])
			if err != nil {
				return err
			}
			matches := s.Search(args[1])
			if len(matches) == 0 {
				return fmt.Errorf("%w: %s", gradebook.ErrStudentNotFound, args[1])
			}
			printMatches(cmd, matches)
			return nil
		},
	}
}

func newStudentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "students <workbook.xlsx>",
		Short: "List the students of a batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(args[0])
			if err != nil {
				return err
			}
			students, err := s.Students(sheetName)
			if err != nil {
				return err
			}
			for _, m := range students {
				fmt.Fprintf(cmd.OutOrStdout(), "%s - %s\n", m.RegistrationNumber, m.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Batch (sheet) name")
	cmd.MarkFlagRequired("sheet")
	return cmd
}

// findStudent resolves --sheet/--reg/--row to a single match. Without --sheet the
// registration number is searched as a fragment across every batch.
func findStudent(cmd *cobra.Command, s *gradebook.Session) (models.Match, error) {
	var matches []models.Match
	if sheetName != "" {
		var err error
		if matches, err = s.Lookup(sheetName, regNo); err != nil {
			return models.Match{}, err
		}
	} else if matches = s.Search(regNo); len(matches) == 0 {
		return models.Match{}, fmt.Errorf("%w: %s", gradebook.ErrStudentNotFound, regNo)
	}
	return pick(cmd, matches, row)
}

func newTranscriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript <workbook.xlsx>",
		Short: "Show a student's grades, GPA and class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(args[0])
			if err != nil {
				return err
			}
			m, err := findStudent(cmd, s)
			if err != nil {
				return err
			}
			t, err := s.Transcript(m, filter)
			if err != nil {
				return err
			}
			return emitTranscript(cmd, t)
		},
	}
	f := cmd.Flags()
	f.StringVar(&sheetName, "sheet", "", "Batch (sheet) name; omit to search every batch")
	f.StringVar(&regNo, "reg", "", "Registration number")
	f.IntVar(&row, "row", 0, "Candidate number when several students match")
	f.StringVar(&filter, "filter", "", "Only list subjects containing this text")
	f.BoolVar(&noGPA, "no-gpa", false, "Leave GPA and class out of exported files")
	f.BoolVar(&asJSON, "json", false, "Print the transcript as JSON")
	f.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	f.StringVar(&htmlPath, "html", "", "Write a printable HTML result sheet to this file")
	f.StringVar(&xlsxPath, "xlsx", "", "Write an xlsx export to this file or directory")
	cmd.MarkFlagRequired("reg")
	return cmd
}

func emitTranscript(cmd *cobra.Command, t *models.Transcript) error {
	if htmlPath != "" {
		err := writeFile(htmlPath, func(f *os.File) error {
			return report.TranscriptHTML(f, t, reportOptions(!noGPA))
		})
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", htmlPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", htmlPath)
	}
	if xlsxPath != "" {
		path := xlsxPath
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, report.TranscriptFileName(t))
		}
		f, err := report.TranscriptXLSX(t, !noGPA)
		if err != nil {
			return fmt.Errorf("failed to build export: %w", err)
		}
		defer f.Close()
		if err := f.SaveAs(path); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	}
	if asJSON {
		return printJSON(cmd, t)
	}
	if htmlPath != "" || xlsxPath != "" {
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s), %s\n\n", t.Name, t.RegistrationNumber, t.Batch)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSUBJECT\tGRADE")
	for i, r := range t.Results {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, r.Subject, r.Grade)
	}
	w.Flush()
	fmt.Fprintf(out, "\nGPA: %s\nClass: %s\n", grade.Format(t.DisplayGPA), t.Class)
	return nil
}

func newSubjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject <workbook.xlsx>",
		Short: "List every student's grade for one subject of a batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(args[0])
			if err != nil {
				return err
			}
			r, err := s.SubjectResults(sheetName, subjectName)
			if err != nil {
				return err
			}
			switch {
			case htmlPath != "":
				return writeReport(cmd, htmlPath, func(f *os.File) error {
					return report.SubjectResultsHTML(f, r, reportOptions(true))
				})
			case csvPath != "":
				return writeReport(cmd, csvPath, func(f *os.File) error {
					return report.SubjectResultsCSV(f, r)
				})
			case asJSON:
				return printJSON(cmd, r)
			}
			return report.SubjectResultsCSV(cmd.OutOrStdout(), r)
		},
	}
	f := cmd.Flags()
	f.StringVar(&sheetName, "sheet", "", "Batch (sheet) name")
	f.StringVar(&subjectName, "subject", "", "Subject column name")
	f.BoolVar(&asJSON, "json", false, "Print the results as JSON")
	f.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	f.StringVar(&htmlPath, "html", "", "Write a printable HTML list to this file")
	f.StringVar(&csvPath, "csv", "", "Write a CSV list to this file")
	cmd.MarkFlagRequired("sheet")
	cmd.MarkFlagRequired("subject")
	return cmd
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <workbook.xlsx>",
		Short: "Report GPA and class for every student of a batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(args[0])
			if err != nil {
				return err
			}
			if fullSheet {
				sheet, err := s.Sheet(sheetName)
				if err != nil {
					return err
				}
				if htmlPath == "" {
					return fmt.Errorf("--full requires --html")
				}
				return writeReport(cmd, htmlPath, func(f *os.File) error {
					return report.SheetHTML(f, sheet, reportOptions(true))
				})
			}
			sum, err := s.SheetSummary(sheetName)
			if err != nil {
				return err
			}
			switch {
			case csvPath != "":
				return writeReport(cmd, csvPath, func(f *os.File) error {
					return report.SheetSummaryCSV(f, sum)
				})
			case asJSON:
				return printJSON(cmd, sum)
			}
			return report.SheetSummaryCSV(cmd.OutOrStdout(), sum)
		},
	}
	f := cmd.Flags()
	f.StringVar(&sheetName, "sheet", "", "Batch (sheet) name")
	f.BoolVar(&fullSheet, "full", false, "Render the full result sheet instead of the GPA summary")
	f.BoolVar(&asJSON, "json", false, "Print the summary as JSON")
	f.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	f.StringVar(&htmlPath, "html", "", "Write a printable HTML sheet to this file (with --full)")
	f.StringVar(&csvPath, "csv", "", "Write the summary as CSV to this file")
	cmd.MarkFlagRequired("sheet")
	return cmd
}

func writeReport(cmd *cobra.Command, path string, render func(f *os.File) error) error {
	if err := writeFile(path, render); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
