package main

import (
	"fmt"
	"math"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/wellscore/internal/tui/report"
	"github.com/garrettladley/wellscore/internal/tui/theme"
	"github.com/garrettladley/wellscore/internal/wellness"
)

func gradeCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "grade [score]",
		Short: "Letter grade for a total score",
		Long:  "Prints the grade and its meaning for a total score. Without a score, prints the whole scale.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				if asJSON {
					return writeJSON(w, wellness.Grades())
				}
				_, _ = fmt.Fprint(w, report.Grades())
				return nil
			}

			score, err := strconv.ParseFloat(args[0], 64)
			if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
				return fmt.Errorf("score must be a finite number, got %q", args[0])
			}

			grade := wellness.GradeFromScore(score)
			if a.cfg.Server != "" {
				b, err := a.open(cmd.Context())
				if err != nil {
					return err
				}
				if grade, err = b.Grade(cmd.Context(), score); err != nil {
					return err
				}
			}

			if asJSON {
				return writeJSON(w, grade)
			}
			style := lipgloss.NewStyle().Foreground(theme.GradeColor(grade.Grade)).Bold(true)
			_, _ = fmt.Fprintf(w, "%s  %s\n", style.Render(grade.Grade), grade.Meaning)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
