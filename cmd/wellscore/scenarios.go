package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/wellscore/internal/tui/theme"
	"github.com/garrettladley/wellscore/internal/wellness"
)

type scenarioRow struct {
	Key    string               `json:"key"`
	Label  string               `json:"label"`
	Input  wellness.MetricInput `json:"input"`
	Scores wellness.Scores      `json:"scores"`
	Grade  wellness.Grade       `json:"grade"`
}

func scenariosCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Score the built-in example profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engines, err := a.engine()
			if err != nil {
				return err
			}

			rows := scoreScenarios(engines.Engine())
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			t := theme.New()
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, t.Dim().Render(fmt.Sprintf("%-26s %5s %5s %5s %5s %6s  %s", "SCENARIO", "MET", "VO2", "GRIP", "BODY", "TOTAL", "GRADE")))
			for _, r := range rows {
				grade := lipgloss.NewStyle().Foreground(theme.GradeColor(r.Grade.Grade)).Bold(true).Render(r.Grade.Grade)
				_, _ = fmt.Fprintf(w, "%-26s %5d %5d %5d %5d %6d  %s\n",
					r.Key, r.Scores.Metabolic, r.Scores.VO2Max, r.Scores.GripStrength, r.Scores.BodyComposition, r.Scores.Total, grade)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func scoreScenarios(e *wellness.Engine) []scenarioRow {
	scenarios := wellness.Scenarios()
	rows := make([]scenarioRow, 0, len(scenarios))
	for _, s := range scenarios {
		scores := e.Calculate(s.Input)
		rows = append(rows, scenarioRow{
			Key:    s.Key,
			Label:  s.Label,
			Input:  s.Input,
			Scores: scores,
			Grade:  scores.Grade(),
		})
	}
	return rows
}
