// Package document implements the Store port as a single YAML document that
// is rewritten as a whole.
package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/example/task/internal/core/task"
	"github.com/example/task/internal/models"
)

// Store implements secondary.Store on top of one YAML file. Mutations are
// applied to an in-memory tree and written back by Flush.
type Store struct {
	path  string
	state *models.State
	dirty bool
}

// NewStore creates a document store backed by the file at path. Nothing is
// read until the first call that needs the state.
func NewStore(path string) *Store {
	return &Store{path: path}
}

type fileDoc struct {
	Global   bucketDoc            `yaml:"global"`
	Projects map[string]bucketDoc `yaml:"projects"`
}

type bucketDoc struct {
	Tasks []taskDoc `yaml:"tasks"`
}

type taskDoc struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	Finished   bool   `yaml:"finished"`
	Expiration *int64 `yaml:"expiration,omitempty"`
}

// Load returns a copy of the state tree. A missing file is initialized and
// written immediately.
func (s *Store) Load(ctx context.Context) (*models.State, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.state.Clone(), nil
}

// Save replaces the document with state.
func (s *Store) Save(ctx context.Context, state *models.State) error {
	s.state = state.Clone()
	if err := s.write(); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// CreateProject registers a new, empty bucket.
func (s *Store) CreateProject(ctx context.Context, key string) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.state.Project(key); ok {
		return fmt.Errorf("project %s: %w", key, models.ErrProjectExists)
	}
	s.state.Projects[key] = &models.Project{Key: key}
	s.dirty = true
	return nil
}

// DeleteProject removes a bucket together with its tasks.
func (s *Store) DeleteProject(ctx context.Context, key string) error {
	if key == models.GlobalKey {
		return models.ErrGlobalProject
	}
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.state.Projects[key]; !ok {
		return fmt.Errorf("project %s: %w", key, models.ErrNotFound)
	}
	delete(s.state.Projects, key)
	s.dirty = true
	return nil
}

// AppendTask adds t at the end of the bucket.
func (s *Store) AppendTask(ctx context.Context, key string, t models.Task) error {
	p, err := s.project(key)
	if err != nil {
		return err
	}
	appended := task.Append(p, t.Name, t.Expiration)
	p.Tasks[appended.ID-1].Finished = t.Finished
	s.dirty = true
	return nil
}

// UpdateTask overwrites the task at position t.ID.
func (s *Store) UpdateTask(ctx context.Context, key string, t models.Task) error {
	p, err := s.project(key)
	if err != nil {
		return err
	}
	existing, err := p.Task(t.ID)
	if err != nil {
		return err
	}
	existing.Name = t.Name
	existing.Finished = t.Finished
	existing.Expiration = t.Expiration
	s.dirty = true
	return nil
}

// RemoveTask deletes the task at position id and renumbers the bucket.
func (s *Store) RemoveTask(ctx context.Context, key string, id int) error {
	p, err := s.project(key)
	if err != nil {
		return err
	}
	if _, err := task.Remove(p, id); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// Flush writes the document if anything changed since the last write.
func (s *Store) Flush(ctx context.Context) error {
	if !s.dirty {
		return nil
	}
	if err := s.write(); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Close is a no-op; the document holds no open handles.
func (s *Store) Close() error {
	return nil
}

// Path returns the location of the document.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) project(key string) (*models.Project, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	p, ok := s.state.Project(key)
	if !ok {
		return nil, fmt.Errorf("project %s: %w", key, models.ErrNotFound)
	}
	return p, nil
}

func (s *Store) ensureLoaded() error {
	if s.state != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("initializing task document", "path", s.path)
		s.state = models.NewState()
		return s.write()
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w: %w", s.path, models.ErrPersistence, err)
	}

	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w: %w", s.path, models.ErrPersistence, err)
	}
	s.state = fromDoc(doc)
	return nil
}

func (s *Store) write() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toDoc(s.state)); err != nil {
		return fmt.Errorf("failed to encode task document: %w: %w", models.ErrPersistence, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode task document: %w: %w", models.ErrPersistence, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w: %w", models.ErrPersistence, err)
	}
	if err := atomic.WriteFile(s.path, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w: %w", s.path, models.ErrPersistence, err)
	}
	return nil
}

func toDoc(state *models.State) fileDoc {
	doc := fileDoc{
		Global:   toBucket(state.Global),
		Projects: make(map[string]bucketDoc, len(state.Projects)),
	}
	for k, p := range state.Projects {
		doc.Projects[k] = toBucket(p)
	}
	return doc
}

func toBucket(p *models.Project) bucketDoc {
	b := bucketDoc{Tasks: make([]taskDoc, len(p.Tasks))}
	for i, t := range p.Tasks {
		b.Tasks[i] = taskDoc{
			ID:         t.ID,
			Name:       t.Name,
			Finished:   t.Finished,
			Expiration: t.Expiration,
		}
	}
	return b
}

// fromDoc trusts the order of the stored tasks, not their ids.
func fromDoc(doc fileDoc) *models.State {
	state := models.NewState()
	state.Global.Tasks = fromBucket(doc.Global)
	for k, b := range doc.Projects {
		if k == models.GlobalKey {
			state.Global.Tasks = append(state.Global.Tasks, fromBucket(b)...)
			task.Renumber(state.Global.Tasks)
			continue
		}
		state.Projects[k] = &models.Project{Key: k, Tasks: fromBucket(b)}
	}
	return state
}

func fromBucket(b bucketDoc) []models.Task {
	tasks := make([]models.Task, len(b.Tasks))
	for i, t := range b.Tasks {
		tasks[i] = models.Task{
			Name:       t.Name,
			Finished:   t.Finished,
			Expiration: t.Expiration,
		}
	}
	task.Renumber(tasks)
	return tasks
}
