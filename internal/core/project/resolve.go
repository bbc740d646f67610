// Package project decides which bucket a command applies to.
// Resolution is pure: callers pass the registered keys and an already
// canonicalized working directory.
package project

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/task/internal/models"
)

// Request describes how the target project was referenced.
type Request struct {
	// Name is an explicit project reference; empty means "use Cwd".
	Name string
	// Cwd is the canonical working directory.
	Cwd string
	// CreateIfMissing registers Name as a new project when nothing matches.
	CreateIfMissing bool
	// FallbackToGlobal resolves to the global bucket when no ancestor of
	// Cwd is registered. Without it the walk fails with ErrNotFound.
	FallbackToGlobal bool
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	Key string
	// Created is set when Key is not yet registered and must be created.
	Created bool
	// Fallback is set when no ancestor matched and the global bucket was chosen.
	Fallback bool
}

// Resolve picks the project key for req among the registered path keys.
func Resolve(keys []string, req Request) (Resolution, error) {
	if req.Name != "" {
		return resolveName(keys, req)
	}
	return resolveCwd(keys, req)
}

func resolveName(keys []string, req Request) (Resolution, error) {
	// The same normalized name is matched and, if new, registered.
	name := strings.TrimRight(req.Name, "/")
	if name == "" {
		return Resolution{}, fmt.Errorf("project %q: empty project name: %w", req.Name, models.ErrNotFound)
	}
	if strings.EqualFold(name, models.GlobalKey) {
		return Resolution{Key: models.GlobalKey}, nil
	}

	matches := SuffixMatches(keys, name)
	switch len(matches) {
	case 1:
		return Resolution{Key: matches[0]}, nil
	case 0:
		if req.CreateIfMissing {
			return Resolution{Key: name, Created: true}, nil
		}
		return Resolution{}, fmt.Errorf("project %q: %w", name, models.ErrNotFound)
	default:
		return Resolution{}, fmt.Errorf("project %q matches %s: %w",
			name, strings.Join(matches, ", "), models.ErrAmbiguousProject)
	}
}

// SuffixMatches returns the keys that name refers to. A key equal to name
// wins outright; otherwise every key whose trailing path components equal
// name is a candidate.
func SuffixMatches(keys []string, name string) []string {
	name = strings.TrimRight(name, "/")
	if name == "" {
		return nil
	}

	var matches []string
	for _, k := range keys {
		if k == name {
			return []string{k}
		}
		if strings.HasSuffix(k, "/"+name) {
			matches = append(matches, k)
		}
	}
	sort.Strings(matches)
	return matches
}

func resolveCwd(keys []string, req Request) (Resolution, error) {
	registered := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		registered[k] = struct{}{}
	}

	if req.Cwd != "" {
		for dir := filepath.Clean(req.Cwd); ; {
			if _, ok := registered[dir]; ok {
				return Resolution{Key: dir}, nil
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	if req.FallbackToGlobal {
		return Resolution{Key: models.GlobalKey, Fallback: true}, nil
	}
	return Resolution{}, fmt.Errorf("no project registered at %s or its parents: %w", req.Cwd, models.ErrNotFound)
}
