// Package testutil holds test doubles shared across packages.
package testutil

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	pkgexec "github.com/vietdv277/smf/pkg/exec"
)

var (
	_ pkgexec.CommandExecutor     = (*MockCommandExecutor)(nil)
	_ pkgexec.InteractiveExecutor = (*MockCommandExecutor)(nil)
)

// MockCommandExecutor returns canned responses and records every call.
type MockCommandExecutor struct {
	mu sync.Mutex

	// Responses maps "command arg1 arg2" prefixes to responses. The longest
	// matching prefix wins.
	Responses map[string]MockResponse

	// DefaultResponse is used when nothing in Responses matches.
	DefaultResponse *MockResponse

	// AttachFunc, if set, handles Attach calls.
	AttachFunc func(name string, args ...string) error

	RecordedCalls []RecordedCall

	// StrictMode fails calls that match no response.
	StrictMode bool
}

// MockResponse is the canned result of one command.
type MockResponse struct {
	Stdout []byte
	Stderr []byte
	Err    error
}

// RecordedCall is one observed invocation.
type RecordedCall struct {
	Command string
	Args    []string
}

// Line joins the command and its arguments with spaces
func (c RecordedCall) Line() string {
	return buildKey(c.Command, c.Args)
}

// NewMockCommandExecutor creates a mock with no responses.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Responses: make(map[string]MockResponse),
	}
}

// Execute records the call and returns the best matching response.
func (m *MockCommandExecutor) Execute(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RecordedCalls = append(m.RecordedCalls, RecordedCall{Command: name, Args: args})

	key := buildKey(name, args)
	best, found := "", false
	for pattern := range m.Responses {
		if strings.HasPrefix(key, pattern) && len(pattern) >= len(best) {
			best, found = pattern, true
		}
	}
	if found {
		resp := m.Responses[best]
		return resp.Stdout, resp.Stderr, resp.Err
	}

	if m.DefaultResponse != nil {
		return m.DefaultResponse.Stdout, m.DefaultResponse.Stderr, m.DefaultResponse.Err
	}
	if m.StrictMode {
		return nil, nil, fmt.Errorf("mock: no response configured for command: %s", key)
	}
	return []byte{}, []byte{}, nil
}

// Attach records the call and delegates to AttachFunc.
func (m *MockCommandExecutor) Attach(_ context.Context, _ io.Reader, _, _ io.Writer, name string, args ...string) error {
	m.mu.Lock()
	m.RecordedCalls = append(m.RecordedCalls, RecordedCall{Command: name, Args: args})
	fn := m.AttachFunc
	m.mu.Unlock()

	if fn == nil {
		return nil
	}
	return fn(name, args...)
}

// AddJSONResponse registers a successful response with the given stdout.
func (m *MockCommandExecutor) AddJSONResponse(pattern, json string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[pattern] = MockResponse{Stdout: []byte(json)}
}

// AddResponse registers an arbitrary response.
func (m *MockCommandExecutor) AddResponse(pattern string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[pattern] = resp
}

// Calls returns the recorded calls whose line starts with prefix.
func (m *MockCommandExecutor) Calls(prefix string) []RecordedCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []RecordedCall
	for _, c := range m.RecordedCalls {
		if strings.HasPrefix(c.Line(), prefix) {
			out = append(out, c)
		}
	}
	return out
}

// CallCount returns the number of recorded calls.
func (m *MockCommandExecutor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.RecordedCalls)
}

func buildKey(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
