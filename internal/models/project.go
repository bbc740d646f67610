package models

import (
	"fmt"
	"sort"
)

// GlobalKey is the key of the bucket that exists in every state tree and is
// not tied to a directory.
const GlobalKey = "global"

// Project is a bucket of tasks keyed either by GlobalKey or by a
// filesystem path.
type Project struct {
	Key   string
	Tasks []Task
}

// IsGlobal reports whether p is the global bucket.
func (p *Project) IsGlobal() bool {
	return p.Key == GlobalKey
}

// Label is the name shown to users.
func (p *Project) Label() string {
	if p.IsGlobal() {
		return "(global)"
	}
	return p.Key
}

// Task returns the task with the given positional id.
func (p *Project) Task(id int) (*Task, error) {
	if id < 1 || id > len(p.Tasks) {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return &p.Tasks[id-1], nil
}

// State is the whole persisted tree: the global bucket plus every
// path-keyed project.
type State struct {
	Global   *Project
	Projects map[string]*Project
}

// NewState returns an empty, valid state tree.
func NewState() *State {
	return &State{
		Global:   &Project{Key: GlobalKey},
		Projects: make(map[string]*Project),
	}
}

// Project looks up a bucket by key. GlobalKey always resolves.
func (s *State) Project(key string) (*Project, bool) {
	if key == GlobalKey {
		return s.Global, true
	}
	p, ok := s.Projects[key]
	return p, ok
}

// Keys returns the path keys in lexical order. The global key is not included.
func (s *State) Keys() []string {
	keys := make([]string, 0, len(s.Projects))
	for k := range s.Projects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns every bucket, global first, then path keys in lexical order.
func (s *State) All() []*Project {
	all := []*Project{s.Global}
	for _, k := range s.Keys() {
		all = append(all, s.Projects[k])
	}
	return all
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := &State{
		Global:   s.Global.clone(),
		Projects: make(map[string]*Project, len(s.Projects)),
	}
	for k, p := range s.Projects {
		c.Projects[k] = p.clone()
	}
	return c
}

func (p *Project) clone() *Project {
	c := &Project{Key: p.Key, Tasks: make([]Task, len(p.Tasks))}
	for i, t := range p.Tasks {
		if t.Expiration != nil {
			exp := *t.Expiration
			t.Expiration = &exp
		}
		c.Tasks[i] = t
	}
	return c
}
