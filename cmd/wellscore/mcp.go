package main

import (
	"github.com/spf13/cobra"

	"github.com/garrettladley/wellscore/internal/mcp"
	"github.com/garrettladley/wellscore/internal/version"
)

func mcpCmd(a *app) *cobra.Command {
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the scoring tools over MCP (stdio)",
		Long: "Runs a Model Context Protocol server on stdin/stdout with the tools " +
			"calculate_scores, grade_from_score, list_scenarios, score_scenario and list_assessments.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			engines, err := a.engine()
			if err != nil {
				return err
			}

			var history mcp.History
			if !noHistory {
				b, err := a.open(ctx)
				if err != nil {
					return err
				}
				history = b
			}

			a.logger.InfoContext(ctx, "starting mcp server")
			return mcp.NewServer(version.Get(), engines, history).Start(ctx)
		},
	}

	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not expose saved assessments")
	return cmd
}
