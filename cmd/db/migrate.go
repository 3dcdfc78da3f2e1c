package main

import (
	"fmt"

	"github.com/garrettladley/wellscore/internal/db"
	"github.com/garrettladley/wellscore/internal/migrations/postgres"
	"github.com/garrettladley/wellscore/internal/paths"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long:  "Apply pending migrations to the server database (DATABASE_URL), or to the local history database with --local.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				applied []string
				err     error
			)
			if local {
				applied, err = migrateLocal(cmd)
			} else {
				applied, err = migrateServer(cmd)
			}
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "migrate the local SQLite history instead of Postgres")
	return cmd
}

func migrateServer(cmd *cobra.Command) ([]string, error) {
	pool, err := openPool(cmd.Context())
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	return postgres.Apply(cmd.Context(), pool)
}

func migrateLocal(cmd *cobra.Command) ([]string, error) {
	if _, err := paths.EnsureDir(); err != nil {
		return nil, err
	}
	dbPath, err := paths.DB()
	if err != nil {
		return nil, err
	}

	sqlDB, applied, err := db.Open(cmd.Context(), dbPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = sqlDB.Close() }()

	return applied, nil
}
