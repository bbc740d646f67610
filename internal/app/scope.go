package app

import (
	"context"
	"log/slog"

	"github.com/example/task/internal/core/project"
	"github.com/example/task/internal/models"
	"github.com/example/task/internal/ports/primary"
	"github.com/example/task/internal/ports/secondary"
)

// scopeResolver loads the state tree and resolves scope references against it.
type scopeResolver struct {
	store     secondary.Store
	workspace secondary.Workspace
}

type resolveOptions struct {
	createIfMissing  bool
	fallbackToGlobal bool
}

// resolved is a loaded state together with the chosen bucket.
type resolved struct {
	state   *models.State
	key     string
	created bool
}

// project returns the resolved bucket; a bucket that is about to be created
// is returned empty.
func (r resolved) project() *models.Project {
	if p, ok := r.state.Project(r.key); ok {
		return p
	}
	return &models.Project{Key: r.key}
}

func (s scopeResolver) resolve(ctx context.Context, ref primary.ScopeRef, opts resolveOptions) (resolved, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return resolved{}, err
	}

	req := project.Request{
		Name:             ref.Project,
		CreateIfMissing:  opts.createIfMissing,
		FallbackToGlobal: opts.fallbackToGlobal,
	}
	if ref.Project == "" {
		req.Cwd, err = s.workspace.Canonicalize(ctx, ref.Cwd)
		if err != nil {
			return resolved{}, err
		}
	}

	res, err := project.Resolve(state.Keys(), req)
	if err != nil {
		return resolved{}, err
	}

	slog.Debug("resolved project", "key", res.Key, "created", res.Created, "fallback", res.Fallback)
	return resolved{state: state, key: res.Key, created: res.Created}, nil
}

func projectToPrimary(p *models.Project) *primary.Project {
	return &primary.Project{
		Key:       p.Key,
		Label:     p.Label(),
		Global:    p.IsGlobal(),
		TaskCount: len(p.Tasks),
	}
}

func taskToPrimary(t models.Task) *primary.Task {
	out := &primary.Task{
		ID:       t.ID,
		Name:     t.Name,
		Finished: t.Finished,
	}
	if t.HasExpiration() {
		at := t.ExpiresAt()
		out.Expiration = &at
	}
	return out
}
