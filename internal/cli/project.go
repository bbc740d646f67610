package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/task/internal/adapters/filesystem"
	"github.com/example/task/internal/wire"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long: `A project is a directory whose tasks are listed whenever a command runs
in it or below it. Tasks outside every project go to the global list.`,
}

var projectNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Register the working directory as a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cwd, err := filesystem.WorkingDirectory()
		if err != nil {
			return err
		}
		return wire.ProjectAdapter().New(ctx, cwd)
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects with their task counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ProjectAdapter().List(context.Background())
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [project]",
	Short: "Delete a project and all its tasks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		scope, err := scopeFromArgs(args, 0)
		if err != nil {
			return err
		}
		return wire.ProjectAdapter().Delete(ctx, scope, confirmed(cmd))
	},
}

func init() {
	addConfirmFlags(projectDeleteCmd)

	projectCmd.AddCommand(projectNewCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}

// ProjectCmd returns the project command
func ProjectCmd() *cobra.Command {
	return projectCmd
}
