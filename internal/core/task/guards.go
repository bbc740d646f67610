// Package task contains the pure business logic for task operations.
// Guards are pure functions that evaluate preconditions without side effects.
package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/task/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	// Kind is the sentinel the resulting error wraps, if any.
	Kind error
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Kind != nil {
		return fmt.Errorf("%s: %w", r.Reason, r.Kind)
	}
	return errors.New(r.Reason)
}

// AddTaskContext provides context for task creation guards.
type AddTaskContext struct {
	Name string
}

// EditTaskContext provides context for task edit guards.
type EditTaskContext struct {
	TaskID          int
	TaskCount       int
	NameGiven       bool
	Name            string
	ExpirationGiven bool
}

// TaskRefContext provides context for guards on an existing task.
type TaskRefContext struct {
	TaskID    int
	TaskCount int
}

// DeleteProjectContext provides context for project deletion guards.
type DeleteProjectContext struct {
	ProjectKey string
}

// CanAddTask evaluates whether a task can be created.
// Rules:
// - Name must not be blank
func CanAddTask(ctx AddTaskContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{Reason: "task name must not be empty"}
	}
	return GuardResult{Allowed: true}
}

// TaskExists evaluates whether the positional id addresses a task.
func TaskExists(ctx TaskRefContext) GuardResult {
	if ctx.TaskID < 1 || ctx.TaskID > ctx.TaskCount {
		return GuardResult{
			Reason: fmt.Sprintf("task %d", ctx.TaskID),
			Kind:   models.ErrNotFound,
		}
	}
	return GuardResult{Allowed: true}
}

// CanEditTask evaluates whether a task can be edited.
// Rules:
// - Task must exist
// - At least one of name or expiration must be supplied
// - A supplied name must not be blank
func CanEditTask(ctx EditTaskContext) GuardResult {
	if r := TaskExists(TaskRefContext{TaskID: ctx.TaskID, TaskCount: ctx.TaskCount}); !r.Allowed {
		return r
	}
	if !ctx.NameGiven && !ctx.ExpirationGiven {
		return GuardResult{Reason: "nothing to change: specify a new name and/or time"}
	}
	if ctx.NameGiven && strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{Reason: "task name must not be empty"}
	}
	return GuardResult{Allowed: true}
}

// CanDeleteProject evaluates whether a project can be deleted.
// Rules:
// - The global bucket is permanent
func CanDeleteProject(ctx DeleteProjectContext) GuardResult {
	if ctx.ProjectKey == models.GlobalKey {
		return GuardResult{
			Reason: "the global project cannot be deleted",
			Kind:   models.ErrGlobalProject,
		}
	}
	return GuardResult{Allowed: true}
}
