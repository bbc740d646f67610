package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/task/internal/core/task"
	"github.com/example/task/internal/core/timeexpr"
	"github.com/example/task/internal/models"
	"github.com/example/task/internal/ports/primary"
	"github.com/example/task/internal/ports/secondary"
)

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	scopes    scopeResolver
	store     secondary.Store
	confirmer secondary.Confirmer
	now       func() time.Time
}

// NewTaskService creates a new TaskService with injected dependencies.
// now supplies the reference instant for time expressions.
func NewTaskService(
	store secondary.Store,
	workspace secondary.Workspace,
	confirmer secondary.Confirmer,
	now func() time.Time,
) *TaskServiceImpl {
	return &TaskServiceImpl{
		scopes:    scopeResolver{store: store, workspace: workspace},
		store:     store,
		confirmer: confirmer,
		now:       now,
	}
}

// Commands that only touch tasks fall back to the global bucket when the
// working directory belongs to no project.
var taskScope = resolveOptions{fallbackToGlobal: true}

// ListTasks returns the tasks of the resolved project in display order.
// Hidden finished tasks keep their positional ids on the remaining rows.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, req primary.ListTasksRequest) (*primary.TaskList, error) {
	r, err := s.scopes.resolve(ctx, req.Scope, taskScope)
	if err != nil {
		return nil, err
	}
	p := r.project()

	list := &primary.TaskList{
		Project: projectToPrimary(p),
		Tasks:   make([]*primary.Task, 0, len(p.Tasks)),
	}
	for _, t := range p.Tasks {
		if req.HideFinished && t.Finished {
			continue
		}
		list.Tasks = append(list.Tasks, taskToPrimary(t))
	}
	return list, nil
}

// GetTask retrieves a task by its positional id.
func (s *TaskServiceImpl) GetTask(ctx context.Context, scope primary.ScopeRef, taskID int) (*primary.Task, error) {
	r, err := s.scopes.resolve(ctx, scope, taskScope)
	if err != nil {
		return nil, err
	}
	t, err := r.project().Task(taskID)
	if err != nil {
		return nil, err
	}
	return taskToPrimary(*t), nil
}

// AddTask appends a task. An explicit project name that matches nothing is
// registered as a new project.
func (s *TaskServiceImpl) AddTask(ctx context.Context, req primary.AddTaskRequest) (*primary.AddTaskResponse, error) {
	if err := task.CanAddTask(task.AddTaskContext{Name: req.Name}).Error(); err != nil {
		return nil, err
	}

	var expiration *int64
	if req.Time != "" {
		at, err := timeexpr.Parse(req.Time, s.now())
		if err != nil {
			return nil, err
		}
		expiration = models.Unix(at)
	}

	r, err := s.scopes.resolve(ctx, req.Scope, resolveOptions{
		createIfMissing:  true,
		fallbackToGlobal: true,
	})
	if err != nil {
		return nil, err
	}

	if r.created {
		if err := s.store.CreateProject(ctx, r.key); err != nil {
			return nil, fmt.Errorf("failed to create project: %w", err)
		}
		r.state.Projects[r.key] = &models.Project{Key: r.key}
	}

	p := r.project()
	added := task.Append(p, req.Name, expiration)
	if err := s.store.AppendTask(ctx, r.key, added); err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}

	slog.Debug("added task", "project", r.key, "id", added.ID)
	return &primary.AddTaskResponse{
		Project:        projectToPrimary(p),
		Task:           taskToPrimary(added),
		ProjectCreated: r.created,
	}, nil
}

// EditTask updates the name and/or expiration of a task. A new name is
// committed even when the new expiration is rejected; the rejection is
// still returned as an error.
func (s *TaskServiceImpl) EditTask(ctx context.Context, req primary.EditTaskRequest) (*primary.Task, error) {
	r, err := s.scopes.resolve(ctx, req.Scope, taskScope)
	if err != nil {
		return nil, err
	}
	p := r.project()

	guard := task.CanEditTask(task.EditTaskContext{
		TaskID:          req.TaskID,
		TaskCount:       len(p.Tasks),
		NameGiven:       req.Name != nil,
		Name:            deref(req.Name),
		ExpirationGiven: req.Time != nil,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	existing, _ := p.Task(req.TaskID)
	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}

	var parseErr error
	if req.Time != nil {
		at, err := timeexpr.Parse(*req.Time, s.now())
		if err != nil {
			parseErr = err
		} else {
			updated.Expiration = models.Unix(at)
		}
	}

	if req.Name != nil || parseErr == nil {
		if err := s.store.UpdateTask(ctx, r.key, updated); err != nil {
			return nil, fmt.Errorf("failed to update task: %w", err)
		}
		if err := s.store.Flush(ctx); err != nil {
			return nil, err
		}
		slog.Debug("updated task", "project", r.key, "id", updated.ID)
	}
	if parseErr != nil {
		return taskToPrimary(updated), parseErr
	}
	return taskToPrimary(updated), nil
}

// DeleteTask removes a task and renumbers the remaining ones. Unless the
// request is pre-confirmed the user is asked first; declining is not an
// error.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, req primary.DeleteTaskRequest) (*primary.DeleteTaskResponse, error) {
	r, err := s.scopes.resolve(ctx, req.Scope, taskScope)
	if err != nil {
		return nil, err
	}
	p := r.project()

	guard := task.TaskExists(task.TaskRefContext{TaskID: req.TaskID, TaskCount: len(p.Tasks)})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	t := p.Tasks[req.TaskID-1]
	resp := &primary.DeleteTaskResponse{Task: taskToPrimary(t)}

	if !req.Confirmed {
		ok, err := s.confirmer.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete task '%s'?", t.Name))
		if err != nil {
			return nil, err
		}
		if !ok {
			return resp, nil
		}
	}

	if err := s.store.RemoveTask(ctx, r.key, req.TaskID); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}

	slog.Debug("deleted task", "project", r.key, "id", req.TaskID)
	resp.Deleted = true
	return resp, nil
}

// FinishTask toggles the finished flag of a task.
func (s *TaskServiceImpl) FinishTask(ctx context.Context, scope primary.ScopeRef, taskID int) (*primary.Task, error) {
	r, err := s.scopes.resolve(ctx, scope, taskScope)
	if err != nil {
		return nil, err
	}

	toggled, err := task.ToggleFinished(r.project(), taskID)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateTask(ctx, r.key, toggled); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}

	slog.Debug("toggled task", "project", r.key, "id", taskID, "finished", toggled.Finished)
	return taskToPrimary(toggled), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
