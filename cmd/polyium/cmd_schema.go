package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyium/polyium/internal/models"
)

var schemaTitle string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the settings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []models.Option
		if schemaTitle != "" {
			opts = append(opts, models.WithTitle(schemaTitle))
		}

		schema, err := models.Default(opts...).Schema(models.NewBase())
		if err != nil {
			return err
		}

		out, err := models.JSONify(schema)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaTitle, "title", "", "override the schema title")
	rootCmd.AddCommand(schemaCmd)
}
