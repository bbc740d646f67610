package models

import "errors"

var (
	// ErrNotFound is returned when a task or project does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidExpiration is returned when expiration text matches no
	// time grammar or names an impossible calendar value.
	ErrInvalidExpiration = errors.New("invalid time expression")

	// ErrAmbiguousProject is returned when a project name matches more
	// than one registered path.
	ErrAmbiguousProject = errors.New("ambiguous project reference")

	// ErrPersistence wraps failures of the underlying store.
	ErrPersistence = errors.New("storage failure")

	// ErrProjectExists is returned when registering a path that is already a project.
	ErrProjectExists = errors.New("project already exists")

	// ErrGlobalProject is returned when an operation is not allowed on the global bucket.
	ErrGlobalProject = errors.New("operation not allowed on the global project")
)
