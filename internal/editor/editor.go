// Package editor opens files in the user's text editor and manages the
// scratch files the create and edit workflows hand to it.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	pkgexec "github.com/vietdv277/smf/pkg/exec"
)

// DefaultProgram is used when neither VISUAL nor EDITOR is set
const DefaultProgram = "vi"

// ErrAborted is returned when the editor ran but exited with a failure status,
// e.g. vim's :cq.
var ErrAborted = errors.New("editor exited with an error")

// Editor edits a file in place and returns once the user is done.
type Editor interface {
	Edit(ctx context.Context, path string) error
}

// Resolve picks the editor program: VISUAL, then EDITOR, then vi.
// lookup is normally os.LookupEnv; empty values are skipped.
func Resolve(lookup func(string) (string, bool)) string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return DefaultProgram
}

// Command runs an external editor program attached to the terminal.
// Program may carry arguments, e.g. "code --wait".
type Command struct {
	Program  string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Executor pkgexec.InteractiveExecutor
}

// NewCommand creates an editor bound to the process's standard streams
func NewCommand(program string) *Command {
	return &Command{
		Program:  program,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Executor: pkgexec.DefaultExecutor(),
	}
}

// Edit opens path in the editor and waits for it to exit
func (c *Command) Edit(ctx context.Context, path string) error {
	fields := strings.Fields(c.Program)
	if len(fields) == 0 {
		return errors.New("failed to open editor: no editor configured")
	}

	args := append(fields[1:], path)
	if err := c.Executor.Attach(ctx, c.Stdin, c.Stdout, c.Stderr, fields[0], args...); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			return fmt.Errorf("%w: %s exit code %d", ErrAborted, fields[0], coder.ExitCode())
		}
		return fmt.Errorf("failed to open editor %q: %w", fields[0], err)
	}
	return nil
}
