package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// TempFile is a scratch file that must be released with Close on every path.
// Close is idempotent and tolerates the file having been removed already.
type TempFile struct {
	path   string
	closed bool
}

// NewTempFile creates an empty private file in the system temp directory.
// suffix, e.g. ".json", lets editors pick syntax highlighting.
func NewTempFile(suffix string) (*TempFile, error) {
	f, err := os.CreateTemp("", "smf-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	return &TempFile{path: f.Name()}, nil
}

// Path returns the file's location on disk
func (t *TempFile) Path() string {
	return t.path
}

// URI returns the file:// form accepted by aws CLI string parameters
func (t *TempFile) URI() string {
	return "file://" + t.path
}

// Write replaces the file's contents
func (t *TempFile) Write(data []byte) error {
	if err := os.WriteFile(t.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	return nil
}

// Read returns the file's current contents
func (t *TempFile) Read() ([]byte, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp file: %w", err)
	}
	return data, nil
}

// Exists reports whether the file is still on disk. Editors that delete the
// buffer's file signal an abort this way.
func (t *TempFile) Exists() bool {
	_, err := os.Stat(t.path)
	return err == nil
}

// Close removes the file
func (t *TempFile) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if err := os.Remove(t.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove temp file: %w", err)
	}
	return nil
}
