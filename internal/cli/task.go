package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/task/internal/wire"
)

var listCmd = &cobra.Command{
	Use:   "list [project]",
	Short: "List tasks of a project",
	Long: `List tasks of the project containing the working directory, or of the
named project. Outside every project the global task list is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		hideFinished, _ := cmd.Flags().GetBool("hide-finished")

		scope, err := scopeFromArgs(args, 0)
		if err != nil {
			return err
		}
		return wire.TaskAdapter().List(ctx, scope, hideFinished)
	},
}

var addCmd = &cobra.Command{
	Use:   "add <name> [project]",
	Short: "Add a task",
	Long: `Add a task to the current or named project. A project name that
matches nothing is created.

Time expressions:
  1d2h, 3w, 1mo, 90min   relative to now (y, mo, w, d, h, min)
  14:30                   today at that time
  2403                    day and month this year, at midnight
  240315-09:00            day, month and two-digit year, with optional time`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		when, _ := cmd.Flags().GetString("time")

		scope, err := scopeFromArgs(args, 1)
		if err != nil {
			return err
		}
		return wire.TaskAdapter().Add(ctx, scope, args[0], when)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id> [project]",
	Short: "Rename a task or change its time",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		scope, err := scopeFromArgs(args, 1)
		if err != nil {
			return err
		}

		var name, when *string
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			name = &v
		}
		if cmd.Flags().Changed("time") {
			v, _ := cmd.Flags().GetString("time")
			when = &v
		}
		return wire.TaskAdapter().Edit(ctx, scope, id, name, when)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id> [project]",
	Short: "Delete a task",
	Long:  "Delete a task. Remaining tasks are renumbered.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		scope, err := scopeFromArgs(args, 1)
		if err != nil {
			return err
		}
		return wire.TaskAdapter().Delete(ctx, scope, id, confirmed(cmd))
	},
}

var finishCmd = &cobra.Command{
	Use:   "finish <id> [project]",
	Short: "Mark a task finished, or reopen a finished one",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		scope, err := scopeFromArgs(args, 1)
		if err != nil {
			return err
		}
		return wire.TaskAdapter().Finish(ctx, scope, id)
	},
}

func init() {
	listCmd.Flags().BoolP("hide-finished", "f", false, "Hide finished tasks")

	addCmd.Flags().StringP("time", "t", "", "Expiration time expression")

	editCmd.Flags().StringP("name", "n", "", "New name")
	editCmd.Flags().StringP("time", "t", "", "New expiration time expression")

	addConfirmFlags(deleteCmd)
}

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return listCmd
}

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	return addCmd
}

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	return editCmd
}

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	return deleteCmd
}

// FinishCmd returns the finish command
func FinishCmd() *cobra.Command {
	return finishCmd
}
