package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/task/internal/core/task"
	"github.com/example/task/internal/models"
	"github.com/example/task/internal/ports/primary"
	"github.com/example/task/internal/ports/secondary"
)

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	scopes    scopeResolver
	store     secondary.Store
	workspace secondary.Workspace
	confirmer secondary.Confirmer
}

// NewProjectService creates a new ProjectService with injected dependencies.
func NewProjectService(
	store secondary.Store,
	workspace secondary.Workspace,
	confirmer secondary.Confirmer,
) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		scopes:    scopeResolver{store: store, workspace: workspace},
		store:     store,
		workspace: workspace,
		confirmer: confirmer,
	}
}

// NewProject registers the canonical form of cwd as a project.
func (s *ProjectServiceImpl) NewProject(ctx context.Context, cwd string) (*primary.Project, error) {
	key, err := s.workspace.Canonicalize(ctx, cwd)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateProject(ctx, key); err != nil {
		return nil, err
	}
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}

	slog.Debug("created project", "key", key)
	return projectToPrimary(&models.Project{Key: key}), nil
}

// ListProjects returns every project, global first, then by path.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context) ([]*primary.Project, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	all := state.All()
	projects := make([]*primary.Project, len(all))
	for i, p := range all {
		projects[i] = projectToPrimary(p)
	}
	return projects, nil
}

// ResolveProject returns the project a scope reference points at. Unlike
// task commands, a working directory outside every project is an error
// here rather than a fallback to the global bucket.
func (s *ProjectServiceImpl) ResolveProject(ctx context.Context, scope primary.ScopeRef) (*primary.Project, error) {
	r, err := s.scopes.resolve(ctx, scope, resolveOptions{})
	if err != nil {
		return nil, err
	}
	return projectToPrimary(r.project()), nil
}

// DeleteProject removes a project and all its tasks after confirmation.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, req primary.DeleteProjectRequest) (*primary.DeleteProjectResponse, error) {
	r, err := s.scopes.resolve(ctx, req.Scope, resolveOptions{})
	if err != nil {
		return nil, err
	}
	p := r.project()

	if err := task.CanDeleteProject(task.DeleteProjectContext{ProjectKey: p.Key}).Error(); err != nil {
		return nil, err
	}

	resp := &primary.DeleteProjectResponse{Project: projectToPrimary(p)}
	if !req.Confirmed {
		question := fmt.Sprintf("Are you sure you want to delete project '%s'? (contains %d %s)",
			p.Key, len(p.Tasks), plural(len(p.Tasks), "task"))
		ok, err := s.confirmer.Confirm(ctx, question)
		if err != nil {
			return nil, err
		}
		if !ok {
			return resp, nil
		}
	}

	if err := s.store.DeleteProject(ctx, p.Key); err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}
	if err := s.store.Flush(ctx); err != nil {
		return nil, err
	}

	slog.Debug("deleted project", "key", p.Key, "tasks", len(p.Tasks))
	resp.Deleted = true
	return resp, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
