// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/task/internal/models"
)

// Store defines the secondary port for persisting the state tree.
//
// Implementations differ in when writes reach disk: the document store
// keeps mutations in memory until Flush, the relational store commits each
// mutation as its own statement. Either way the observable state after
// Flush is the same.
type Store interface {
	// Load returns a copy of the full state tree. A store that does not
	// exist yet yields an empty, valid tree.
	Load(ctx context.Context) (*models.State, error)

	// Save replaces the persisted tree with state.
	Save(ctx context.Context, state *models.State) error

	// CreateProject registers a new, empty bucket.
	CreateProject(ctx context.Context, key string) error

	// DeleteProject removes a bucket together with its tasks.
	DeleteProject(ctx context.Context, key string) error

	// AppendTask adds task at the end of the bucket. task.ID is ignored.
	AppendTask(ctx context.Context, key string, task models.Task) error

	// UpdateTask overwrites name, finished flag and expiration of the task
	// at position task.ID.
	UpdateTask(ctx context.Context, key string, task models.Task) error

	// RemoveTask deletes the task at position id; later tasks move up.
	RemoveTask(ctx context.Context, key string, id int) error

	// Flush makes all mutations since the last Flush durable.
	Flush(ctx context.Context) error

	// Close releases resources held by the store.
	Close() error
}
