// Package exec wraps process execution behind an interface so the aws CLI
// and the text editor can be replaced in tests.
package exec

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// CommandExecutor runs a command to completion and captures its output.
type CommandExecutor interface {
	// Execute runs name with args and returns stdout, stderr and the run error.
	Execute(ctx context.Context, name string, args ...string) (stdout []byte, stderr []byte, err error)
}

// InteractiveExecutor runs a command attached to the given streams, e.g. an editor.
type InteractiveExecutor interface {
	Attach(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, name string, args ...string) error
}

// RealCommandExecutor executes commands with os/exec.
type RealCommandExecutor struct{}

// Execute runs the command and buffers both output streams.
func (r *RealCommandExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Attach runs the command with the caller's streams and waits for it to exit.
func (r *RealCommandExecutor) Attach(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// DefaultExecutor returns the os/exec backed executor.
func DefaultExecutor() *RealCommandExecutor {
	return &RealCommandExecutor{}
}
