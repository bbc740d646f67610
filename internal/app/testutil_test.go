package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/task/internal/adapters/document"
	"github.com/example/task/internal/adapters/sqlite"
	"github.com/example/task/internal/db"
	"github.com/example/task/internal/ports/secondary"
)

var testNow = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)

// fakeWorkspace treats every directory as already canonical.
type fakeWorkspace struct{}

func (fakeWorkspace) Canonicalize(ctx context.Context, dir string) (string, error) {
	return filepath.Clean(dir), nil
}

// fakeConfirmer answers every question with answer and records the questions.
type fakeConfirmer struct {
	answer    bool
	questions []string
}

func (c *fakeConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	c.questions = append(c.questions, question)
	return c.answer, nil
}

type backend struct {
	name string
	open func(t *testing.T) secondary.Store
}

var backends = []backend{
	{
		name: "document",
		open: func(t *testing.T) secondary.Store {
			return document.NewStore(filepath.Join(t.TempDir(), "tasks.yaml"))
		},
	},
	{
		name: "sqlite",
		open: func(t *testing.T) secondary.Store {
			conn, err := db.OpenMemory()
			require.NoError(t, err)
			store := sqlite.NewStore(conn)
			t.Cleanup(func() { store.Close() })
			return store
		},
	},
}

type fixture struct {
	store     secondary.Store
	confirmer *fakeConfirmer
	tasks     *TaskServiceImpl
	projects  *ProjectServiceImpl
}

func newFixture(t *testing.T, b backend) *fixture {
	t.Helper()
	store := b.open(t)
	confirmer := &fakeConfirmer{answer: true}
	return &fixture{
		store:     store,
		confirmer: confirmer,
		tasks:     NewTaskService(store, fakeWorkspace{}, confirmer, func() time.Time { return testNow }),
		projects:  NewProjectService(store, fakeWorkspace{}, confirmer),
	}
}

// forEachBackend runs fn once per storage backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, f *fixture)) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			fn(t, newFixture(t, b))
		})
	}
}
