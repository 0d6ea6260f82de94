package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chainguard-dev/clog/slag"
	"github.com/spf13/cobra"

	"github.com/polyium/polyium/internal/cli"
	"github.com/polyium/polyium/internal/logging"
	"github.com/polyium/polyium/pkg/version"
)

var (
	logLevel       = slag.Level(slog.LevelInfo)
	verbose        bool
	configPath     string
	nonInteractive bool
	showVersion    bool
)

var rootCmd = &cobra.Command{
	Use:   "polyium",
	Short: "Polyium project scaffold tooling",
	Long: `Tooling shared by polyium projects.

It manages the runtime directories described by the settings file
(working, artifacts, temporary), prints their JSON schema, and turns a
.env template into the script a CI pipeline runs to materialize .env.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.Level(logLevel)
		if verbose {
			level = slog.LevelDebug
		}
		cmd.SetContext(logging.Setup(cmd.Context(), os.Stderr, level))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintln(cmd.OutOrStdout(), version.Short())
			return nil
		}
		return cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Var(&logLevel, "log-level", "log level (debug, info, warn, error)")
	flags.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flags.StringVar(&configPath, "config", "", "settings file (.yaml, .yml, .json or .jsonc)")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "answer every prompt with its default")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "print the version and exit")

	rootCmd.AddCommand(versionCmd)
}

// newContext builds the command context from the persistent flags.
func newContext() (*cli.Context, error) {
	ctx, err := cli.NewContext(cli.Options{
		ConfigPath:     configPath,
		NonInteractive: nonInteractive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context: %w", err)
	}
	return ctx, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
