package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/example/task/internal/models"
)

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"TASK-1", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseTaskID(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTaskID(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseTaskID(%q) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}

func TestScopeFromArgs(t *testing.T) {
	scope, err := scopeFromArgs([]string{"3", "api"}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scope.Project != "api" || scope.Cwd == "" {
		t.Errorf("unexpected scope %+v", scope)
	}

	scope, err = scopeFromArgs([]string{"3"}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scope.Project != "" {
		t.Errorf("expected no project, got %q", scope.Project)
	}
}

func TestConfirmFlags(t *testing.T) {
	for _, args := range [][]string{{"--yes"}, {"-y"}, {"--no-confirm"}} {
		cmd := &cobra.Command{Use: "delete"}
		addConfirmFlags(cmd)
		if err := cmd.ParseFlags(args); err != nil {
			t.Fatalf("ParseFlags(%v): %v", args, err)
		}
		if !confirmed(cmd) {
			t.Errorf("expected %v to confirm", args)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		hint bool
	}{
		{fmt.Errorf("%q: %w", "soon", models.ErrInvalidExpiration), true},
		{fmt.Errorf("project %q matches a, b: %w", "api", models.ErrAmbiguousProject), true},
		{fmt.Errorf("task 9: %w", models.ErrNotFound), false},
		{errors.New("boom"), false},
	}

	for _, tt := range tests {
		got := Describe(tt.err)
		if !strings.HasPrefix(got, "Error: "+tt.err.Error()) {
			t.Errorf("Describe(%v) = %q", tt.err, got)
		}
		if strings.Contains(got, "Hint:") != tt.hint {
			t.Errorf("Describe(%v) hint presence = %v, want %v", tt.err, !tt.hint, tt.hint)
		}
	}
}
