// Package main provides the CLI entrypoint for tourkit.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tourkit/internal/config"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// defaultCommandTimeout bounds a single command's store and network work.
const defaultCommandTimeout = 10 * time.Second

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		statePath  string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tourkit",
	Short: "Tour filters and theme tooling for the tours site",
	Long: `tourkit manages the two pieces of client state behind the tours listing:
the filter sidebar (destinations, duration, price, tour type, accommodation,
group size, difficulty and rating) and the site theme, a light and dark
palette turned into CSS custom properties.

Filter state persists between runs so a sequence of commands behaves like
clicking through the sidebar. Theme configs can come from a bundled preset,
a TOML/YAML/JSON file, an HTTP endpoint or a versioned SQLite store.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := config.EnsureDataDir(); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		logger.Debug("loaded config", "theme_source", cfg.Theme.Source, "mode", cfg.Theme.Mode)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/tourkit/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.statePath, "state-file", "",
		"Path to sidebar state file (default: ~/.local/share/tourkit/sidebar.json)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// statePath returns the sidebar state file in use.
func statePath() string {
	if globalOpts.statePath != "" {
		return globalOpts.statePath
	}
	return config.StatePath()
}
