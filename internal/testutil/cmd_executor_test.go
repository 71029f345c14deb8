package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCommandExecutor(t *testing.T) {
	ctx := context.Background()

	t.Run("longest prefix wins", func(t *testing.T) {
		m := NewMockCommandExecutor()
		m.AddJSONResponse("aws secretsmanager", `{"generic":true}`)
		m.AddJSONResponse("aws secretsmanager list-secrets", `{"SecretList":[]}`)

		stdout, _, err := m.Execute(ctx, "aws", "secretsmanager", "list-secrets", "--output", "json")
		require.NoError(t, err)
		assert.Equal(t, `{"SecretList":[]}`, string(stdout))

		stdout, _, err = m.Execute(ctx, "aws", "secretsmanager", "describe-secret")
		require.NoError(t, err)
		assert.Equal(t, `{"generic":true}`, string(stdout))
		assert.Equal(t, 2, m.CallCount())
	})

	t.Run("strict mode", func(t *testing.T) {
		m := NewMockCommandExecutor()
		m.StrictMode = true
		_, _, err := m.Execute(ctx, "aws", "sts")
		assert.Error(t, err)
	})

	t.Run("calls filter", func(t *testing.T) {
		m := NewMockCommandExecutor()
		_, _, _ = m.Execute(ctx, "aws", "secretsmanager", "list-secrets")
		_, _, _ = m.Execute(ctx, "aws", "secretsmanager", "delete-secret", "--secret-id", "arn:1")

		calls := m.Calls("aws secretsmanager delete-secret")
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"secretsmanager", "delete-secret", "--secret-id", "arn:1"}, calls[0].Args)
	})

	t.Run("attach delegates", func(t *testing.T) {
		m := NewMockCommandExecutor()
		var got []string
		m.AttachFunc = func(name string, args ...string) error {
			got = append([]string{name}, args...)
			return nil
		}
		require.NoError(t, m.Attach(ctx, nil, nil, nil, "vi", "/tmp/x"))
		assert.Equal(t, []string{"vi", "/tmp/x"}, got)
	})
}
