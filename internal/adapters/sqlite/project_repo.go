package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/example/task/internal/models"
)

// CreateProject registers a new, empty bucket.
func (s *Store) CreateProject(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "INSERT INTO projects (path) VALUES (?)", key)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("project %s: %w", key, models.ErrProjectExists)
		}
		return persistence("failed to create project", err)
	}
	return nil
}

// DeleteProject removes a bucket; its tasks go with it via ON DELETE CASCADE.
func (s *Store) DeleteProject(ctx context.Context, key string) error {
	if key == models.GlobalKey {
		return models.ErrGlobalProject
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE path = ?", key)
	if err != nil {
		return persistence("failed to delete project", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("project %s: %w", key, models.ErrNotFound)
	}
	return nil
}

func projectID(ctx context.Context, q execer, key string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, "SELECT id FROM projects WHERE path = ?", key).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("project %s: %w", key, models.ErrNotFound)
	}
	if err != nil {
		return 0, persistence("failed to get project", err)
	}
	return id, nil
}
