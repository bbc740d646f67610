package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/task/internal/models"
)

// scanTask scans a task row into its project id and a Task without a
// positional id.
func scanTask(row scanner) (int64, models.Task, error) {
	var (
		projectID  int64
		t          models.Task
		expiration sql.NullInt64
	)
	if err := row.Scan(&projectID, &t.Name, &t.Finished, &expiration); err != nil {
		return 0, models.Task{}, err
	}
	if expiration.Valid {
		v := expiration.Int64
		t.Expiration = &v
	}
	return projectID, t, nil
}

func nullExpiration(t models.Task) sql.NullInt64 {
	if t.Expiration == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *t.Expiration, Valid: true}
}

// AppendTask inserts t after the existing tasks of the bucket.
func (s *Store) AppendTask(ctx context.Context, key string, t models.Task) error {
	return insertTask(ctx, s.db, key, t)
}

func insertTask(ctx context.Context, q execer, key string, t models.Task) error {
	pid, err := projectID(ctx, q, key)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx,
		"INSERT INTO tasks (project_id, name, finished, expiration) VALUES (?, ?, ?, ?)",
		pid, t.Name, t.Finished, nullExpiration(t),
	)
	if err != nil {
		return persistence("failed to create task", err)
	}
	return nil
}

// UpdateTask overwrites the task at position t.ID.
func (s *Store) UpdateTask(ctx context.Context, key string, t models.Task) error {
	rowID, err := s.taskRowID(ctx, key, t.ID)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		"UPDATE tasks SET name = ?, finished = ?, expiration = ? WHERE id = ?",
		t.Name, t.Finished, nullExpiration(t), rowID,
	)
	if err != nil {
		return persistence("failed to update task", err)
	}
	return nil
}

// RemoveTask deletes the task at position id. Positions are derived from
// row order, so the survivors renumber themselves.
func (s *Store) RemoveTask(ctx context.Context, key string, id int) error {
	rowID, err := s.taskRowID(ctx, key, id)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", rowID); err != nil {
		return persistence("failed to delete task", err)
	}
	return nil
}

// taskRowID maps a 1-based position within the bucket to the row id.
func (s *Store) taskRowID(ctx context.Context, key string, position int) (int64, error) {
	if position < 1 {
		return 0, fmt.Errorf("task %d: %w", position, models.ErrNotFound)
	}
	pid, err := projectID(ctx, s.db, key)
	if err != nil {
		return 0, err
	}

	var rowID int64
	err = s.db.QueryRowContext(ctx,
		"SELECT id FROM tasks WHERE project_id = ? ORDER BY id LIMIT 1 OFFSET ?",
		pid, position-1,
	).Scan(&rowID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("task %d: %w", position, models.ErrNotFound)
	}
	if err != nil {
		return 0, persistence("failed to get task", err)
	}
	return rowID, nil
}
