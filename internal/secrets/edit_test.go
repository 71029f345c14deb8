package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/smf/internal/editor"
)

const jsonValue = `{"ARN":"arn:1","Name":"db-pass","SecretString":"{\"user\":\"admin\"}"}`

// fileURI extracts the file:// argument following flag
func fileURI(t *testing.T, args []string, flag string) string {
	t.Helper()
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	t.Fatalf("flag %s not found in %v", flag, args)
	return ""
}

func TestEditUnchangedMakesNoUpdate(t *testing.T) {
	var edited string
	f := newFixture(t, oneSecret, func(path string) error {
		edited = path
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"user\": \"admin\"\n}", string(data))
		return nil
	})
	f.mock.AddJSONResponse("aws secretsmanager get-secret-value", jsonValue)

	require.NoError(t, f.svc.Edit(context.Background(), "db", false))

	assert.Empty(t, f.calls("update-secret"))
	assert.Contains(t, f.errOut.String(), "Secret not changed. Aborting...")
	assert.NotEmpty(t, edited)
	assert.NoFileExists(t, edited)
}

func TestEditOneByteChangeUpdates(t *testing.T) {
	var edited string
	f := newFixture(t, oneSecret, func(path string) error {
		edited = path
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(path, append(data, '\n'), 0o600)
	})
	f.mock.AddJSONResponse("aws secretsmanager get-secret-value", jsonValue)

	require.NoError(t, f.svc.Edit(context.Background(), "db", false))

	calls := f.calls("update-secret")
	require.Len(t, calls, 1)
	assert.Equal(t, "--secret-id", calls[0].Args[2])
	assert.Equal(t, "arn:1", calls[0].Args[3])
	assert.Equal(t, "file://"+edited, fileURI(t, calls[0].Args, "--secret-string"))
	assert.Contains(t, f.errOut.String(), "Updated secret db-pass")
	assert.NoFileExists(t, edited)
}

func TestEditDescription(t *testing.T) {
	ctx := context.Background()

	t.Run("changed", func(t *testing.T) {
		var edited string
		f := newFixture(t, oneSecret, func(path string) error {
			edited = path
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "prod db", string(data))
			return os.WriteFile(path, []byte("primary prod db"), 0o600)
		})

		require.NoError(t, f.svc.Edit(ctx, "db", true))

		assert.Empty(t, f.calls("get-secret-value"))
		calls := f.calls("update-secret")
		require.Len(t, calls, 1)
		assert.Equal(t, "file://"+edited, fileURI(t, calls[0].Args, "--description"))
		assert.True(t, strings.HasSuffix(edited, ".txt"))
		assert.Contains(t, f.errOut.String(), "Updated secret description db-pass")
	})

	t.Run("unchanged", func(t *testing.T) {
		f := newFixture(t, oneSecret, nil)

		require.NoError(t, f.svc.Edit(ctx, "db", true))
		assert.Empty(t, f.calls("update-secret"))
		assert.Contains(t, f.errOut.String(), "Description not changed. Aborting...")
	})
}

func TestEditEditorFailure(t *testing.T) {
	var edited string
	f := newFixture(t, oneSecret, func(path string) error {
		edited = path
		return errors.New("failed to open editor")
	})
	f.mock.AddJSONResponse("aws secretsmanager get-secret-value", jsonValue)

	err := f.svc.Edit(context.Background(), "db", false)
	require.Error(t, err)
	assert.Empty(t, f.calls("update-secret"))
	assert.NoFileExists(t, edited)
}

func TestEditorFailedExitAborts(t *testing.T) {
	ctx := context.Background()
	aborted := func(string) error { return fmt.Errorf("%w: vim exit code 1", editor.ErrAborted) }

	t.Run("edit", func(t *testing.T) {
		f := newFixture(t, oneSecret, aborted)
		f.mock.AddJSONResponse("aws secretsmanager get-secret-value", jsonValue)

		require.NoError(t, f.svc.Edit(ctx, "db", false))
		assert.Empty(t, f.calls("update-secret"))
		assert.Contains(t, f.errOut.String(), "Aborting...")
	})

	t.Run("create", func(t *testing.T) {
		f := newFixture(t, oneSecret, aborted)

		require.NoError(t, f.svc.Create(ctx, "svc/token", nil))
		assert.Empty(t, f.calls("create-secret"))
		assert.Contains(t, f.errOut.String(), "Aborting...")
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates from edited file", func(t *testing.T) {
		var edited string
		f := newFixture(t, oneSecret, func(path string) error {
			edited = path
			return os.WriteFile(path, []byte(`{"token":"abc"}`), 0o600)
		})
		desc := "service token"

		require.NoError(t, f.svc.Create(ctx, "svc/token", &desc))

		calls := f.calls("create-secret")
		require.Len(t, calls, 1)
		assert.Equal(t, []string{
			"secretsmanager", "create-secret",
			"--name", "svc/token",
			"--secret-string", "file://" + edited,
			"--description", "service token",
			"--output", "json",
		}, calls[0].Args)
		assert.True(t, strings.HasSuffix(edited, ".json"))
		assert.Contains(t, f.errOut.String(), "Created secret svc/token")
		assert.NoFileExists(t, edited)
		assert.Empty(t, f.calls("list-secrets"))
	})

	t.Run("no description flag when unset", func(t *testing.T) {
		f := newFixture(t, oneSecret, nil)

		require.NoError(t, f.svc.Create(ctx, "svc/token", nil))
		calls := f.calls("create-secret")
		require.Len(t, calls, 1)
		assert.NotContains(t, calls[0].Args, "--description")
	})

	t.Run("aborts when the editor removes the file", func(t *testing.T) {
		f := newFixture(t, oneSecret, func(path string) error {
			return os.Remove(path)
		})

		require.NoError(t, f.svc.Create(ctx, "svc/token", nil))
		assert.Empty(t, f.calls("create-secret"))
		assert.Contains(t, f.errOut.String(), "Aborting...")
	})
}
