package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/garrettladley/wellscore/internal/client/github"
	"github.com/garrettladley/wellscore/internal/version"
)

const (
	repoOwner   = "garrettladley"
	repoName    = "wellscore"
	installPath = "github.com/garrettladley/wellscore/cmd/wellscore@latest"
)

func upgradeCmd() *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Check for updates and install if available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			currentVersion := version.Get()

			update, err := github.NewClient().CheckForUpdate(ctx, repoOwner, repoName, currentVersion)
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}

			w := cmd.OutOrStdout()
			if !update.Available {
				_, _ = fmt.Fprintf(w, "wellscore is up to date (%s)\n", currentVersion)
				return nil
			}

			latest := update.Latest
			if checkOnly {
				_, _ = fmt.Fprintf(w, "wellscore %s is available (you have %s)\n%s\n", latest.TagName, currentVersion, latest.HTMLURL)
				return nil
			}

			_, _ = fmt.Fprintf(w, "Updating wellscore %s → %s\n", currentVersion, latest.TagName)
			return goInstallUpgrade(ctx)
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update exists")
	return cmd
}

func goInstallUpgrade(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "go", "install", installPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("upgrade failed: %w", err)
	}
	fmt.Println("Successfully updated!")
	return nil
}
