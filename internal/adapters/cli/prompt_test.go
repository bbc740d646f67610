package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Yes\n", true},
		{"okay\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"Y", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := &bytes.Buffer{}
			c := NewPromptConfirmer(strings.NewReader(tt.input), out, true)

			got, err := c.Confirm(context.Background(), "Are you sure you want to delete task 'a'?")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if out.String() != "Are you sure you want to delete task 'a'? (y/N): " {
				t.Errorf("unexpected prompt %q", out.String())
			}
		})
	}
}

func TestPromptConfirmer_NonInteractive(t *testing.T) {
	tests := []struct {
		input string
		want  bool
		out   string
	}{
		{"y\n", true, "Delete? (y/N): y\n"},
		{"no\n", false, "Delete? (y/N): no\n"},
		{"", false, "Delete? (y/N): \n"},
	}

	for _, tt := range tests {
		out := &bytes.Buffer{}
		c := NewPromptConfirmer(strings.NewReader(tt.input), out, false)

		got, err := c.Confirm(context.Background(), "Delete?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if out.String() != tt.out {
			t.Errorf("Confirm(%q) output %q, want %q", tt.input, out.String(), tt.out)
		}
	}
}
