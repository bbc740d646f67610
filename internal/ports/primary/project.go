// Package primary defines the primary ports (driving adapters) for the application.
package primary

import "context"

// ProjectService defines the primary port for project operations.
type ProjectService interface {
	// NewProject registers the given directory as a project.
	NewProject(ctx context.Context, cwd string) (*Project, error)

	// ListProjects returns every project, global first.
	ListProjects(ctx context.Context) ([]*Project, error)

	// ResolveProject returns the project a scope reference points at.
	ResolveProject(ctx context.Context, scope ScopeRef) (*Project, error)

	// DeleteProject removes a project and its tasks after confirmation.
	DeleteProject(ctx context.Context, req DeleteProjectRequest) (*DeleteProjectResponse, error)
}

// DeleteProjectRequest contains parameters for deleting a project.
type DeleteProjectRequest struct {
	Scope     ScopeRef
	Confirmed bool
}

// DeleteProjectResponse contains the result of a project delete.
type DeleteProjectResponse struct {
	Project *Project
	Deleted bool
}

// Project represents a project at the port boundary.
type Project struct {
	Key       string
	Label     string
	Global    bool
	TaskCount int
}
