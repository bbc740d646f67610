package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// PromptConfirmer asks yes/no questions and blocks until a line is read.
type PromptConfirmer struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewPromptConfirmer creates a confirmer reading answers from in. When
// interactive is false the answer is echoed after the prompt, since no
// terminal did it.
func NewPromptConfirmer(in io.Reader, out io.Writer, interactive bool) *PromptConfirmer {
	return &PromptConfirmer{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// NewStdinConfirmer prompts on stdout and reads stdin.
func NewStdinConfirmer() *PromptConfirmer {
	fd := os.Stdin.Fd()
	return NewPromptConfirmer(os.Stdin, os.Stdout, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// Confirm prints question and reports whether the answer contains a "y".
func (c *PromptConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(c.out, "%s (y/N): ", question)

	answer, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	if !c.interactive {
		fmt.Fprintln(c.out, strings.TrimRight(answer, "\r\n"))
	}
	return strings.Contains(strings.ToLower(answer), "y"), nil
}
