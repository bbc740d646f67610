package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/task/internal/cli"
	"github.com/example/task/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "task",
		Short:   "Simple CLI task manager",
		Version: version.String(),
		Long: `task keeps short-lived to-do items grouped into projects. The project is
picked from the working directory, or named explicitly.`,
	}
	cli.SetupRoot(rootCmd)

	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.EditCmd())
	rootCmd.AddCommand(cli.DeleteCmd())
	rootCmd.AddCommand(cli.FinishCmd())
	rootCmd.AddCommand(cli.ProjectCmd())

	if err := cli.Execute(rootCmd); err != nil {
		fmt.Fprintln(os.Stderr, cli.Describe(err))
		os.Exit(1)
	}
}
