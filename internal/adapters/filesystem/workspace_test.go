package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/task/internal/adapters/filesystem"
)

func TestWorkspaceAdapter_CanonicalizeResolvesSymlinks(t *testing.T) {
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("EvalSymlinks failed: %v", err)
	}
	realDir := filepath.Join(tmpDir, "realDir", "project")
	if err := os.MkdirAll(realDir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	link := filepath.Join(tmpDir, "link")
	if err := os.Symlink(filepath.Join(tmpDir, "realDir"), link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	adapter := filesystem.NewWorkspaceAdapter()
	got, err := adapter.Canonicalize(context.Background(), filepath.Join(link, "project"))
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}
	if got != realDir {
		t.Errorf("expected %s, got %s", realDir, got)
	}
}

func TestWorkspaceAdapter_CanonicalizeCleansPath(t *testing.T) {
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("EvalSymlinks failed: %v", err)
	}
	sub := filepath.Join(tmpDir, "a")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	adapter := filesystem.NewWorkspaceAdapter()
	got, err := adapter.Canonicalize(context.Background(), sub+"/../a/.")
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}
	if got != sub {
		t.Errorf("expected %s, got %s", sub, got)
	}
}

func TestWorkspaceAdapter_CanonicalizeMissingDirectory(t *testing.T) {
	adapter := filesystem.NewWorkspaceAdapter()
	_, err := adapter.Canonicalize(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
