package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/example/task/internal/ports/primary"
)

// ProjectAdapter is a thin adapter that translates CLI operations to ProjectService calls.
type ProjectAdapter struct {
	service primary.ProjectService
	out     io.Writer
}

// NewProjectAdapter creates a new ProjectAdapter with the given service.
func NewProjectAdapter(service primary.ProjectService, out io.Writer) *ProjectAdapter {
	return &ProjectAdapter{
		service: service,
		out:     out,
	}
}

// New registers the working directory as a project.
func (a *ProjectAdapter) New(ctx context.Context, cwd string) error {
	p, err := a.service.NewProject(ctx, cwd)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created project '%s'\n", p.Label)
	return nil
}

// List prints every project with its task count, global first.
func (a *ProjectAdapter) List(ctx context.Context) error {
	projects, err := a.service.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"Project", "Tasks"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	for _, p := range projects {
		table.Append([]string{p.Label, TaskCount(p.TaskCount)})
	}
	table.Render()
	return nil
}

// Delete removes a project and its tasks, asking first unless confirmed.
func (a *ProjectAdapter) Delete(ctx context.Context, scope primary.ScopeRef, confirmed bool) error {
	resp, err := a.service.DeleteProject(ctx, primary.DeleteProjectRequest{
		Scope:     scope,
		Confirmed: confirmed,
	})
	if err != nil {
		return err
	}

	if !resp.Deleted {
		fmt.Fprintln(a.out, "Aborted")
		return nil
	}
	fmt.Fprintf(a.out, "✓ Deleted project '%s' %s\n", resp.Project.Label, TaskCount(resp.Project.TaskCount))
	return nil
}

// TaskCount formats n as "(N task)" or "(N tasks)".
func TaskCount(n int) string {
	if n == 1 {
		return "(1 task)"
	}
	return fmt.Sprintf("(%d tasks)", n)
}
