package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/garrettladley/wellscore/internal/assessment"
	"github.com/garrettladley/wellscore/internal/tui/report"
	"github.com/garrettladley/wellscore/internal/tui/theme"
)

const shortIDLen = 8

func historyCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"ls"},
		Short:   "List saved assessments, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			list, err := b.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list assessments: %w", err)
			}
			if limit > 0 && limit < len(list) {
				list = list[:limit]
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}
			writeHistory(cmd.OutOrStdout(), list)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n assessments")
	return cmd
}

func writeHistory(w io.Writer, list []assessment.Assessment) {
	t := theme.New()
	if len(list) == 0 {
		_, _ = fmt.Fprintln(w, t.Dim().Render("no saved assessments"))
		return
	}

	for _, a := range list {
		_, _ = fmt.Fprintf(w, "%s  %s  %3d %-2s  %s\n",
			t.Dim().Render(a.ID.String()[:shortIDLen]),
			a.CreatedAt.Local().Format("2006-01-02 15:04"),
			a.Scores.Total,
			a.Grade.Grade,
			a.Title,
		)
	}
}

func showCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved assessment",
		Long:  "Shows a saved assessment. The id may be shortened to any unique prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			b, err := a.open(ctx)
			if err != nil {
				return err
			}
			id, err := resolveID(ctx, b, args[0])
			if err != nil {
				return notFound(err)
			}
			got, err := b.Get(ctx, id)
			if err != nil {
				return notFound(err)
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, got)
			}
			_, _ = fmt.Fprint(w, report.Render(report.Report{Title: got.Title, Scores: got.Scores, Grade: got.Grade}))
			_, _ = fmt.Fprintf(w, "\n%s\n", theme.New().Dim().Render(got.ID.String()+"  "+got.CreatedAt.Local().Format("Jan 2, 2006 15:04")))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func rmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a saved assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			b, err := a.open(ctx)
			if err != nil {
				return err
			}
			id, err := resolveID(ctx, b, args[0])
			if err != nil {
				return notFound(err)
			}
			if err := b.Delete(ctx, id); err != nil {
				return notFound(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			return nil
		},
	}
}

func notFound(err error) error {
	if errors.Is(err, assessment.ErrNotFound) {
		return fmt.Errorf("no such assessment: %w", err)
	}
	return err
}
