// Package wire provides dependency injection for the task application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	cliadapter "github.com/example/task/internal/adapters/cli"
	"github.com/example/task/internal/adapters/document"
	"github.com/example/task/internal/adapters/filesystem"
	"github.com/example/task/internal/adapters/sqlite"
	"github.com/example/task/internal/app"
	"github.com/example/task/internal/config"
	"github.com/example/task/internal/db"
	"github.com/example/task/internal/ports/primary"
	"github.com/example/task/internal/ports/secondary"
)

var (
	cfg            *config.Config
	store          secondary.Store
	taskService    primary.TaskService
	projectService primary.ProjectService
	once           sync.Once
)

// Configure sets the configuration used when services are first built.
// It has no effect once a service has been requested.
func Configure(c *config.Config) {
	cfg = c
}

// TaskService returns the singleton TaskService instance.
func TaskService() primary.TaskService {
	once.Do(initServices)
	return taskService
}

// ProjectService returns the singleton ProjectService instance.
func ProjectService() primary.ProjectService {
	once.Do(initServices)
	return projectService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if cfg == nil {
		loaded, err := config.Load(config.New(), config.DefaultConfigPath())
		if err != nil {
			fatal("failed to load config", err)
		}
		cfg = loaded
	}

	var err error
	store, err = OpenStore(cfg)
	if err != nil {
		fatal("failed to open store", err)
	}

	workspace := filesystem.NewWorkspaceAdapter()
	confirmer := cliadapter.NewStdinConfirmer()

	taskService = app.NewTaskService(store, workspace, confirmer, time.Now)
	projectService = app.NewProjectService(store, workspace, confirmer)
}

// OpenStore opens the storage backend named by c.
func OpenStore(c *config.Config) (secondary.Store, error) {
	switch c.Backend {
	case config.BackendSQLite:
		slog.Debug("using sqlite backend", "path", c.DatabasePath())
		database, err := db.Open(c.DatabasePath())
		if err != nil {
			return nil, err
		}
		return sqlite.NewStore(database), nil
	default:
		slog.Debug("using document backend", "path", c.DocumentPath())
		return document.NewStore(c.DocumentPath()), nil
	}
}

// Close releases the store if one was opened. Later calls are no-ops.
func Close() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

// TaskAdapter returns a new TaskAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func TaskAdapter() *cliadapter.TaskAdapter {
	return TaskAdapterWithOutput(os.Stdout)
}

// TaskAdapterWithOutput returns a new TaskAdapter writing to the given output.
func TaskAdapterWithOutput(out io.Writer) *cliadapter.TaskAdapter {
	once.Do(initServices)
	return cliadapter.NewTaskAdapter(taskService, out, time.Now)
}

// ProjectAdapter returns a new ProjectAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ProjectAdapter() *cliadapter.ProjectAdapter {
	return ProjectAdapterWithOutput(os.Stdout)
}

// ProjectAdapterWithOutput returns a new ProjectAdapter writing to the given output.
func ProjectAdapterWithOutput(out io.Writer) *cliadapter.ProjectAdapter {
	once.Do(initServices)
	return cliadapter.NewProjectAdapter(projectService, out)
}
