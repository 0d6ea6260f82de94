package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyium/polyium/internal/cli"
	"github.com/polyium/polyium/internal/logging"
	"github.com/polyium/polyium/internal/ui"
)

var (
	executables []string
	forceClean  bool
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage the runtime directories",
	Long: `Manage the working, artifacts and temporary directories configured in
the settings file (see "polyium schema").`,
}

var workspaceInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the working and artifacts directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newContext()
		if err != nil {
			return err
		}
		c.UI.Header("Workspace Init")
		return cli.InitWorkspace(logging.WithName(cmd.Context(), "workspace"), c, executables)
	},
}

var workspaceStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of each directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newContext()
		if err != nil {
			return err
		}

		statuses, err := cli.WorkspaceStatus(c)
		if err != nil {
			return err
		}

		c.UI.Header("Workspace Status")
		for _, s := range statuses {
			c.UI.Print(ui.Bold(s.Label))
			c.UI.Field("Path", s.Path)
			if s.Exists {
				c.UI.Field("Exists", ui.Green("yes"))
			} else {
				c.UI.Field("Exists", ui.Yellow("no"))
			}
			c.UI.Field("Permissions", s.Permissions)
			c.UI.Field("Writable", fmt.Sprintf("%t", s.Writable))
			c.UI.Separator()
		}
		return nil
	},
}

var workspaceCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the artifacts directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newContext()
		if err != nil {
			return err
		}
		_, err = cli.CleanWorkspace(logging.WithName(cmd.Context(), "workspace"), c, forceClean)
		return err
	},
}

func init() {
	workspaceInitCmd.Flags().StringSliceVar(&executables, "executable", nil, "script to make executable, relative to the working directory (repeatable)")
	workspaceCleanCmd.Flags().BoolVar(&forceClean, "force", false, "skip the confirmation prompt")

	workspaceCmd.AddCommand(workspaceInitCmd)
	workspaceCmd.AddCommand(workspaceStatusCmd)
	workspaceCmd.AddCommand(workspaceCleanCmd)
	rootCmd.AddCommand(workspaceCmd)
}
