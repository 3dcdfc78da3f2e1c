package main

import (
	"context"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/wellscore/internal/version"
	"github.com/garrettladley/wellscore/internal/xslog"
)

func main() {
	_ = godotenv.Load()

	// stdout belongs to command output and the MCP transport
	logger := xslog.NewLoggerFromEnv(os.Stderr)
	slog.SetDefault(logger)

	rootCmd := newRootCmd(&app{logger: logger})

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "wellscore",
		Short:             "Composite wellness score from lab, fitness and body metrics",
		Version:           version.Get(),
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(*cobra.Command, []string) { a.close() },
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.server, "server", "", "use a wellscore server instead of the local history (env WELLSCORE_SERVER)")
	flags.StringVar(&a.flags.apiKey, "api-key", "", "API key for --server (env WELLSCORE_API_KEY)")
	flags.StringVar(&a.flags.weights, "weights", "", "YAML category weights file (env WELLSCORE_WEIGHTS_FILE)")
	flags.StringVar(&a.flags.db, "db", "", "local history database (env WELLSCORE_DB)")

	rootCmd.AddCommand(
		scoreCmd(a),
		gradeCmd(a),
		scenariosCmd(a),
		historyCmd(a),
		showCmd(a),
		rmCmd(a),
		tuiCmd(a),
		mcpCmd(a),
		upgradeCmd(),
	)
	return rootCmd
}
