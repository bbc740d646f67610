// Package sqlite contains the SQLite implementation of the Store port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/task/internal/models"
)

// Store implements secondary.Store with SQLite. Every mutation is its own
// statement and is committed immediately; Flush has nothing left to do.
type Store struct {
	db *sql.DB
}

// NewStore creates a new SQLite store over an opened database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Load reconstructs the full state tree from rows ordered by id.
func (s *Store) Load(ctx context.Context) (*models.State, error) {
	state := models.NewState()
	state.Global.Tasks = []models.Task{}

	byID, err := s.loadProjects(ctx, state)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT project_id, name, finished, expiration FROM tasks ORDER BY id")
	if err != nil {
		return nil, persistence("failed to list tasks", err)
	}
	defer rows.Close()

	for rows.Next() {
		projectID, t, err := scanTask(rows)
		if err != nil {
			return nil, persistence("failed to scan task", err)
		}
		p, ok := byID[projectID]
		if !ok {
			continue
		}
		t.ID = len(p.Tasks) + 1
		p.Tasks = append(p.Tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("failed to list tasks", err)
	}

	return state, nil
}

// loadProjects fills state with one bucket per project row and returns
// the buckets by row id. The rows are closed before returning so the
// single pooled connection is free for the next query.
func (s *Store) loadProjects(ctx context.Context, state *models.State) (map[int64]*models.Project, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, path FROM projects ORDER BY id")
	if err != nil {
		return nil, persistence("failed to list projects", err)
	}
	defer rows.Close()

	byID := make(map[int64]*models.Project)
	for rows.Next() {
		var id int64
		var path string
		if err := rows.Scan(&id, &path); err != nil {
			return nil, persistence("failed to scan project", err)
		}
		if path == models.GlobalKey {
			byID[id] = state.Global
			continue
		}
		p := &models.Project{Key: path, Tasks: []models.Task{}}
		state.Projects[path] = p
		byID[id] = p
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("failed to list projects", err)
	}
	return byID, nil
}

// Save replaces every row with the contents of state in one transaction.
func (s *Store) Save(ctx context.Context, state *models.State) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return persistence("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return persistence("failed to clear tasks", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE path <> ?", models.GlobalKey); err != nil {
		return persistence("failed to clear projects", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO projects (path) VALUES (?)", models.GlobalKey); err != nil {
		return persistence("failed to create global project", err)
	}

	for _, p := range state.All() {
		if !p.IsGlobal() {
			if _, err := tx.ExecContext(ctx, "INSERT INTO projects (path) VALUES (?)", p.Key); err != nil {
				return persistence("failed to insert project", err)
			}
		}
		for _, t := range p.Tasks {
			if err := insertTask(ctx, tx, p.Key, t); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return persistence("failed to commit state", err)
	}
	return nil
}

// Flush is a no-op: statements are committed as they run.
func (s *Store) Flush(ctx context.Context) error {
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func persistence(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, models.ErrPersistence, err)
}
