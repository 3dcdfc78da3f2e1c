package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/garrettladley/wellscore/internal/tui"
)

func tuiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [id]",
		Short: "Browse saved assessments in the dashboard",
		Long:  "Opens the full-screen dashboard on the newest assessment, or on the given one.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			b, err := a.open(ctx)
			if err != nil {
				return err
			}

			var selected uuid.UUID
			if len(args) == 1 {
				if selected, err = resolveID(ctx, b, args[0]); err != nil {
					return notFound(err)
				}
			}

			return runDashboard(tui.Deps{
				Ctx:      ctx,
				Logger:   a.logger,
				Store:    b,
				Selected: selected,
			})
		},
	}
}
