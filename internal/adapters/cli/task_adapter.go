// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/example/task/internal/core/timeexpr"
	"github.com/example/task/internal/ports/primary"
)

var (
	nameStyle     = color.New(color.Bold)
	finishedStyle = color.New(color.Faint, color.CrossedOut)
	doneStyle     = color.New(color.FgGreen, color.Bold)
	overdueStyle  = color.New(color.FgRed)
	pendingStyle  = color.New(color.FgHiBlack)
	numberStyle   = color.New(color.FgHiBlack)
)

// TaskAdapter is a thin adapter that translates CLI operations to TaskService calls.
type TaskAdapter struct {
	service primary.TaskService
	out     io.Writer
	now     func() time.Time
}

// NewTaskAdapter creates a new TaskAdapter. now is the reference instant for
// countdowns.
func NewTaskAdapter(service primary.TaskService, out io.Writer, now func() time.Time) *TaskAdapter {
	return &TaskAdapter{
		service: service,
		out:     out,
		now:     now,
	}
}

// List prints the tasks of a scope.
func (a *TaskAdapter) List(ctx context.Context, scope primary.ScopeRef, hideFinished bool) error {
	list, err := a.service.ListTasks(ctx, primary.ListTasksRequest{
		Scope:        scope,
		HideFinished: hideFinished,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Listing tasks in project '%s'\n", list.Project.Label)
	if len(list.Tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks yet. Create one with `task add \"My task\"`")
		return nil
	}

	a.printTasks(list.Tasks)
	return nil
}

// taskRow holds the plain text of each cell so widths ignore color codes.
type taskRow struct {
	task   *primary.Task
	number string
	status string
}

func (a *TaskAdapter) printTasks(tasks []*primary.Task) {
	now := a.now()
	rows := make([]taskRow, len(tasks))
	numberWidth, nameWidth := 0, 0
	for i, t := range tasks {
		rows[i] = taskRow{task: t, number: strconv.Itoa(t.ID), status: status(t, now)}
		numberWidth = max(numberWidth, len(rows[i].number))
		nameWidth = max(nameWidth, runewidth.StringWidth(t.Name))
	}

	for _, r := range rows {
		number := numberStyle.Sprint(pad(r.number, numberWidth, true))
		name := pad(r.task.Name, nameWidth, false)
		if r.task.Finished {
			// Strike only the text, not the padding.
			name = finishedStyle.Sprint(r.task.Name) + name[len(r.task.Name):]
		} else {
			name = nameStyle.Sprint(r.task.Name) + name[len(r.task.Name):]
		}

		line := fmt.Sprintf("%s  %s", number, name)
		if r.status != "" {
			line += "  " + a.colorStatus(r, now)
		}
		fmt.Fprintln(a.out, strings.TrimRight(line, " "))
	}
}

func (a *TaskAdapter) colorStatus(r taskRow, now time.Time) string {
	switch {
	case r.task.Finished:
		return doneStyle.Sprint(r.status)
	case r.task.Expiration.Before(now):
		return overdueStyle.Sprint(r.status)
	default:
		return pendingStyle.Sprint(r.status)
	}
}

// status is the last column: DONE, a countdown, or nothing.
func status(t *primary.Task, now time.Time) string {
	if t.Finished {
		return "DONE"
	}
	if t.Expiration == nil {
		return ""
	}
	return timeexpr.Render(*t.Expiration, now)
}

func pad(s string, width int, right bool) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// Add creates a task and reports where it went.
func (a *TaskAdapter) Add(ctx context.Context, scope primary.ScopeRef, name, when string) error {
	resp, err := a.service.AddTask(ctx, primary.AddTaskRequest{
		Scope: scope,
		Name:  name,
		Time:  when,
	})
	if err != nil {
		return err
	}

	if resp.ProjectCreated {
		fmt.Fprintf(a.out, "✓ Created project '%s'\n", resp.Project.Label)
	}
	fmt.Fprintf(a.out, "✓ Added task %d to '%s': %s\n", resp.Task.ID, resp.Project.Label, resp.Task.Name)
	return nil
}

// Edit renames a task and/or changes its expiration.
func (a *TaskAdapter) Edit(ctx context.Context, scope primary.ScopeRef, taskID int, name, when *string) error {
	t, err := a.service.EditTask(ctx, primary.EditTaskRequest{
		Scope:  scope,
		TaskID: taskID,
		Name:   name,
		Time:   when,
	})
	if err != nil {
		if t != nil && name != nil {
			fmt.Fprintf(a.out, "✓ Renamed task %d: %s\n", t.ID, t.Name)
		}
		return err
	}

	fmt.Fprintf(a.out, "✓ Updated task %d: %s\n", t.ID, t.Name)
	return nil
}

// Delete removes a task, asking first unless confirmed.
func (a *TaskAdapter) Delete(ctx context.Context, scope primary.ScopeRef, taskID int, confirmed bool) error {
	resp, err := a.service.DeleteTask(ctx, primary.DeleteTaskRequest{
		Scope:     scope,
		TaskID:    taskID,
		Confirmed: confirmed,
	})
	if err != nil {
		return err
	}

	if !resp.Deleted {
		fmt.Fprintln(a.out, "Aborted")
		return nil
	}
	fmt.Fprintf(a.out, "✓ Deleted task '%s'\n", resp.Task.Name)
	return nil
}

// Finish toggles the finished flag of a task.
func (a *TaskAdapter) Finish(ctx context.Context, scope primary.ScopeRef, taskID int) error {
	t, err := a.service.FinishTask(ctx, scope, taskID)
	if err != nil {
		return err
	}

	if t.Finished {
		fmt.Fprintf(a.out, "✓ Finished task %d: %s\n", t.ID, t.Name)
	} else {
		fmt.Fprintf(a.out, "✓ Reopened task %d: %s\n", t.ID, t.Name)
	}
	return nil
}
