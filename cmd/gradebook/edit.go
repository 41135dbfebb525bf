package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/ukaji3/gradebook-go/pkg/gradebook"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

var (
	editSheet string
	sets      []string
	deletes   []string
)

// gradeEdit is one parsed --set value.
type gradeEdit struct {
	reg, subject, value string
}

// parseSet splits "REG:SUBJECT=GRADE". The grade may be empty to clear a cell.
func parseSet(s string) (gradeEdit, error) {
	reg, rest, ok := strings.Cut(s, ":")
	eq := strings.LastIndex(rest, "=")
	if !ok || eq < 0 {
		return gradeEdit{}, fmt.Errorf("invalid --set %q (want REG:SUBJECT=GRADE)", s)
	}
	e := gradeEdit{
		reg:     strings.TrimSpace(reg),
		subject: strings.TrimSpace(rest[:eq]),
		value:   strings.TrimSpace(rest[eq+1:]),
	}
	if e.reg == "" || e.subject == "" {
		return gradeEdit{}, fmt.Errorf("invalid --set %q (want REG:SUBJECT=GRADE)", s)
	}
	return e, nil
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <workbook.xlsx>",
		Short: "Change grades or remove students and save the workbook",
		Long: `edit applies grade changes and student removals to one batch and writes
them back into the workbook. The file must not be open in another program.
When a registration number appears more than once, the last row is changed.`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}
	f := cmd.Flags()
	f.StringVar(&editSheet, "sheet", "", "Batch (sheet) name")
	f.StringArrayVar(&sets, "set", nil, `Grade change "REG:SUBJECT=GRADE" (repeatable)`)
	f.StringArrayVar(&deletes, "delete", nil, "Registration number to remove (repeatable)")
	cmd.MarkFlagRequired("sheet")
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	if len(sets) == 0 && len(deletes) == 0 {
		return errors.New("nothing to do: give --set or --delete")
	}
	s, err := load(args[0])
	if err != nil {
		return err
	}

	for _, raw := range sets {
		e, err := parseSet(raw)
		if err != nil {
			return err
		}
		m, err := lastMatch(s, e.reg)
		if err != nil {
			return err
		}
		if err := s.EditGrade(m, e.subject, e.value); err != nil {
			return err
		}
	}
	for _, reg := range deletes {
		m, err := lastMatch(s, reg)
		if err != nil {
			return err
		}
		if err := s.DeleteStudent(m); err != nil {
			return err
		}
	}

	res, err := s.Commit()
	if errors.Is(err, gradebook.ErrFileLocked) {
		return fmt.Errorf("%s is open in another program: %w", args[0], err)
	}
	if err != nil {
		return err
	}

	level.Info(logger).Log("msg", "workbook saved", "path", args[0],
		"applied", res.Applied, "deleted", res.Deleted, "skipped", res.Skipped)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved: %d grade(s) changed, %d student(s) removed, %d skipped\n",
		res.Applied, res.Deleted, res.Skipped)
	return nil
}

// lastMatch returns the final row carrying reg, the row the writer updates.
func lastMatch(s *gradebook.Session, reg string) (models.Match, error) {
	matches, err := s.Lookup(editSheet, reg)
	if err != nil {
		return models.Match{}, err
	}
	if len(matches) > 1 {
		level.Warn(logger).Log("msg", "duplicate registration number, using last row",
			"sheet", editSheet, "registration", reg, "rows", len(matches))
	}
	return matches[len(matches)-1], nil
}
