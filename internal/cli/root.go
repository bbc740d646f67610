package cli

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/task/internal/config"
	"github.com/example/task/internal/wire"
)

// SetupRoot adds the global flags to root and loads configuration before
// any subcommand runs.
func SetupRoot(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/task/config.yaml)")
	flags.String("backend", "", "Storage backend: document or sqlite")
	flags.String("data-dir", "", "Directory holding the task store")
	flags.BoolP("verbose", "v", false, "Log debug output to stderr")
	flags.Bool("no-color", false, "Disable colored output")

	root.SilenceErrors = true
	root.SilenceUsage = true

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		v := config.New()
		if err := config.BindFlags(v, cmd.Flags()); err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.DefaultConfigPath()
		}
		cfg, err := config.Load(v, path)
		if err != nil {
			return err
		}

		setupLogging(cfg.Verbose)
		if cfg.NoColor {
			color.NoColor = true
		}
		wire.Configure(cfg)
		return nil
	}
}

// Execute runs root and then releases the store, whether or not the
// command failed.
func Execute(root *cobra.Command) error {
	err := root.Execute()
	if cerr := wire.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
