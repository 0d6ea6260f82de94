package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyium/polyium/internal/cli"
	"github.com/polyium/polyium/internal/logging"
	"github.com/polyium/polyium/internal/ui"
)

var (
	envFile         string
	includeDefaults bool
	envOutput       string
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Work with .env templates",
}

var envExtractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the CI script that materializes .env",
	Long: `Read a .env template and print a shell script that copies .env.example
to .env and replaces each variable. Variables without a value, in the
template or the current environment, are filled from CI secrets.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithName(cmd.Context(), "env")

		script, err := cli.ExtractEnv(ctx, envFile, includeDefaults)
		if err != nil {
			return err
		}

		if envOutput == "" {
			fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		}

		backup, err := cli.WriteScript(ctx, envOutput, script)
		if err != nil {
			return err
		}
		u := ui.NewWithWriter(cmd.ErrOrStderr())
		if backup != "" {
			u.Infof("Previous script saved to %s", backup)
		}
		u.Successf("Wrote %s", envOutput)
		return nil
	},
}

func init() {
	envExtractCmd.Flags().StringVar(&envFile, "env-file", ".env", "the .env template to read")
	envExtractCmd.Flags().BoolVar(&includeDefaults, "include-defaults", false, "also emit replacements for variables with a value")
	envExtractCmd.Flags().StringVarP(&envOutput, "output", "o", "", "write the script to this file instead of stdout")

	envCmd.AddCommand(envExtractCmd)
	rootCmd.AddCommand(envCmd)
}
