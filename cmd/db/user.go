package main

import (
	"fmt"
	"strconv"

	"github.com/garrettladley/wellscore/internal/service/user"
	"github.com/spf13/cobra"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage API users",
	}
	cmd.AddCommand(userCreateCmd(), userRevokeCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <email>",
		Short: "Create a user and print its API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			created, err := user.NewPostgresService(user.NewQueries(pool)).CreateUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "user id:    %d\n", created.UserID)
			fmt.Fprintf(out, "api key id: %d\n", created.APIKeyID)
			fmt.Fprintf(out, "api key:    %s\n", created.APIKey)
			fmt.Fprintln(out, "Store the key now; it cannot be shown again.")
			return nil
		},
	}
}

func userRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <api-key-id>",
		Short: "Revoke an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid api key id %q: %w", args[0], err)
			}

			pool, err := openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := user.NewPostgresService(user.NewQueries(pool)).RevokeAPIKey(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Revoked API key %d\n", id)
			return nil
		},
	}
}
