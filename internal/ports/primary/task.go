package primary

import (
	"context"
	"time"
)

// TaskService defines the primary port for task operations within a project.
type TaskService interface {
	// ListTasks returns the tasks of the resolved project in display order.
	ListTasks(ctx context.Context, req ListTasksRequest) (*TaskList, error)

	// GetTask retrieves a task by its positional id.
	GetTask(ctx context.Context, scope ScopeRef, taskID int) (*Task, error)

	// AddTask appends a task, creating the named project if needed.
	AddTask(ctx context.Context, req AddTaskRequest) (*AddTaskResponse, error)

	// EditTask updates the name and/or expiration of a task.
	EditTask(ctx context.Context, req EditTaskRequest) (*Task, error)

	// DeleteTask removes a task after confirmation and renumbers the rest.
	DeleteTask(ctx context.Context, req DeleteTaskRequest) (*DeleteTaskResponse, error)

	// FinishTask toggles the finished flag of a task.
	FinishTask(ctx context.Context, scope ScopeRef, taskID int) (*Task, error)
}

// ScopeRef identifies the project a command targets: an explicit name, or
// the working directory when Project is empty.
type ScopeRef struct {
	Project string
	Cwd     string
}

// ListTasksRequest contains parameters for listing tasks.
type ListTasksRequest struct {
	Scope        ScopeRef
	HideFinished bool
}

// TaskList is a project together with its (possibly filtered) tasks.
type TaskList struct {
	Project *Project
	Tasks   []*Task
}

// AddTaskRequest contains parameters for adding a task.
type AddTaskRequest struct {
	Scope ScopeRef
	Name  string
	Time  string // Optional time expression
}

// AddTaskResponse contains the result of adding a task.
type AddTaskResponse struct {
	Project        *Project
	Task           *Task
	ProjectCreated bool
}

// EditTaskRequest contains parameters for editing a task.
// Nil fields are left unchanged.
type EditTaskRequest struct {
	Scope  ScopeRef
	TaskID int
	Name   *string
	Time   *string
}

// DeleteTaskRequest contains parameters for deleting a task.
type DeleteTaskRequest struct {
	Scope     ScopeRef
	TaskID    int
	Confirmed bool // Skip the confirmation prompt
}

// DeleteTaskResponse contains the result of a delete.
type DeleteTaskResponse struct {
	Task    *Task
	Deleted bool // False when the user declined
}

// Task represents a task at the port boundary.
type Task struct {
	ID         int
	Name       string
	Finished   bool
	Expiration *time.Time
}
