// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// WorkspaceAdapter implements secondary.Workspace for the local filesystem.
type WorkspaceAdapter struct{}

// NewWorkspaceAdapter creates a new filesystem workspace adapter.
func NewWorkspaceAdapter() *WorkspaceAdapter {
	return &WorkspaceAdapter{}
}

// Canonicalize returns the absolute path of dir with every symlink resolved.
func (a *WorkspaceAdapter) Canonicalize(ctx context.Context, dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	return resolved, nil
}

// WorkingDirectory returns the process working directory.
func WorkingDirectory() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return dir, nil
}
