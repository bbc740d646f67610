package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/task/internal/adapters/filesystem"
	"github.com/example/task/internal/ports/primary"
)

// parseTaskID validates a positional task id argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id '%s'. Use the number shown by `task list`", arg)
	}
	return id, nil
}

// scopeFromArgs builds a scope from the optional project argument at index
// i and the working directory.
func scopeFromArgs(args []string, i int) (primary.ScopeRef, error) {
	var scope primary.ScopeRef
	if len(args) > i {
		scope.Project = args[i]
	}
	cwd, err := filesystem.WorkingDirectory()
	if err != nil {
		return scope, err
	}
	scope.Cwd = cwd
	return scope, nil
}

func addConfirmFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().Bool("no-confirm", false, "Same as --yes")
	_ = cmd.Flags().MarkHidden("no-confirm")
}

func confirmed(cmd *cobra.Command) bool {
	yes, _ := cmd.Flags().GetBool("yes")
	noConfirm, _ := cmd.Flags().GetBool("no-confirm")
	return yes || noConfirm
}
