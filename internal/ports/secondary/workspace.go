package secondary

import "context"

// Workspace defines the secondary port for filesystem path handling.
type Workspace interface {
	// Canonicalize returns the absolute, symlink-free form of dir.
	Canonicalize(ctx context.Context, dir string) (string, error)
}
