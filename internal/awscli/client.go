// Package awscli invokes `aws secretsmanager` as a subprocess.
package awscli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"unicode/utf8"

	"github.com/vietdv277/smf/internal/logging"
	pkgexec "github.com/vietdv277/smf/pkg/exec"
)

// DefaultBinary is the aws CLI executable looked up on PATH
const DefaultBinary = "aws"

const service = "secretsmanager"

// Client runs secretsmanager subcommands through the aws CLI.
type Client struct {
	binary   string
	profile  string
	region   string
	executor pkgexec.CommandExecutor
	logger   *logging.Logger
}

// ClientOption allows customizing the Client
type ClientOption func(*Client)

// WithBinary overrides the aws executable
func WithBinary(binary string) ClientOption {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithProfile passes --profile to every invocation
func WithProfile(profile string) ClientOption {
	return func(c *Client) {
		c.profile = profile
	}
}

// WithRegion passes --region to every invocation
func WithRegion(region string) ClientOption {
	return func(c *Client) {
		c.region = region
	}
}

// WithExecutor replaces the process runner. Used by tests.
func WithExecutor(e pkgexec.CommandExecutor) ClientOption {
	return func(c *Client) {
		c.executor = e
	}
}

// WithLogger sets the logger used for debug tracing
func WithLogger(l *logging.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a Client with the given options
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		binary:   DefaultBinary,
		executor: pkgexec.DefaultExecutor(),
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Args builds the full argument vector for a subcommand
func (c *Client) Args(subcommand string, args ...string) []string {
	argv := make([]string, 0, len(args)+8)
	argv = append(argv, service, subcommand)
	argv = append(argv, args...)
	argv = append(argv, "--output", "json")
	if c.profile != "" {
		argv = append(argv, "--profile", c.profile)
	}
	if c.region != "" {
		argv = append(argv, "--region", c.region)
	}
	return argv
}

// Run executes `aws secretsmanager <subcommand> [args...]` once and returns stdout.
// It blocks until the process exits; there is no retry.
func (c *Client) Run(ctx context.Context, subcommand string, args ...string) (string, error) {
	argv := c.Args(subcommand, args...)
	c.logger.Debug("exec: %s", logging.CommandLine(c.binary, argv))

	stdout, stderr, err := c.executor.Execute(ctx, c.binary, argv...)
	if err != nil {
		if isLaunchFailure(err) {
			return "", &EnvironmentError{Binary: c.binary, Err: err}
		}
		return "", &RemoteError{
			Subcommand: subcommand,
			ExitCode:   exitCode(err),
			Stderr:     string(stderr),
			Err:        err,
		}
	}

	if !utf8.Valid(stdout) {
		return "", &ParseError{Subcommand: subcommand, Err: errors.New("stdout is not valid UTF-8")}
	}
	return string(stdout), nil
}

// RunJSON runs a subcommand and decodes its stdout into v
func (c *Client) RunJSON(ctx context.Context, v interface{}, subcommand string, args ...string) error {
	out, err := c.Run(ctx, subcommand, args...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(out), v); err != nil {
		return &ParseError{Subcommand: subcommand, Err: err}
	}
	return nil
}

func isLaunchFailure(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return true
	}
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}

func exitCode(err error) int {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return -1
}

// String describes the client for debug output
func (c *Client) String() string {
	return fmt.Sprintf("%s %s (profile=%q region=%q)", c.binary, service, c.profile, c.region)
}
