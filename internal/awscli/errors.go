package awscli

import (
	"fmt"
	"strings"
)

// EnvironmentError means the aws CLI could not be launched at all.
type EnvironmentError struct {
	Binary string
	Err    error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("failed to run %s command. Is the AWS CLI installed?\n%v", e.Binary, e.Err)
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// RemoteError means the aws CLI ran and reported failure.
// Stderr is the tool's diagnostic output, verbatim.
type RemoteError struct {
	Subcommand string
	ExitCode   int
	Stderr     string
	Err        error
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("failed to run aws secretsmanager %s", e.Subcommand)
	if e.ExitCode > 0 {
		msg += fmt.Sprintf(" (exit code: %d)", e.ExitCode)
	}
	if stderr := strings.TrimRight(e.Stderr, "\n"); stderr != "" {
		msg += "\n" + stderr
	}
	return msg
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// ParseError means the CLI output could not be decoded.
type ParseError struct {
	Subcommand string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse output of aws secretsmanager %s: %v", e.Subcommand, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
