package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/wellscore/internal/version"
)

// databaseURL overrides DATABASE_URL when set.
var databaseURL string

func main() {
	_ = godotenv.Load()

	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "db",
		Short:        "Manage the wellscore server database and local history",
		Version:      version.Get(),
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Postgres connection string (default $DATABASE_URL)")

	rootCmd.AddCommand(
		newMigrationCmd(),
		migrateCmd(),
		userCmd(),
	)
	return rootCmd
}
