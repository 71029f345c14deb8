package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgtypes "github.com/vietdv277/smf/pkg/types"
)

func candidates() []pkgtypes.Secret {
	return []pkgtypes.Secret{
		{ARN: "arn:1", Name: "db-pass"},
		{ARN: "arn:2", Name: "db-user"},
		{ARN: "arn:3", Name: "db-host"},
	}
}

func TestNumberedChooser(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr string
	}{
		{"first", "0\n", 0, ""},
		{"last with spaces", "  2 \n", 2, ""},
		{"no newline", "1", 1, ""},
		{"out of range", "3\n", 0, "please enter a value between 0 and 2"},
		{"negative", "-1\n", 0, "please enter a value between 0 and 2"},
		{"non-numeric", "db\n", 0, "please enter an integer value"},
		{"empty", "\n", 0, "please enter an integer value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &NumberedChooser{In: strings.NewReader(tt.input), Out: &out}

			got, err := c.Choose("Select secret", candidates())
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "0: db-pass")
			assert.Contains(t, out.String(), "2: db-host")
			assert.Contains(t, out.String(), "Select secret: ")
		})
	}
}

func TestIsAffirmative(t *testing.T) {
	for _, in := range []string{"y", "Yes", "YES", "yes", "yes please", " y "} {
		assert.True(t, IsAffirmative(in), in)
	}
	for _, in := range []string{"n", "", "maybe", "Y", "no", "ye", "sure"} {
		assert.False(t, IsAffirmative(in), in)
	}
}

func TestConfirmer(t *testing.T) {
	var out bytes.Buffer
	c := &Confirmer{In: strings.NewReader("YES\n"), Out: &out}

	ok, err := c.Confirm("Are you sure you want to delete secret 'db-pass'")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Are you sure you want to delete secret 'db-pass' [y/N]? ", out.String())

	c = &Confirmer{In: strings.NewReader(""), Out: &out}
	ok, err = c.Confirm("Delete?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChooserAndConfirmerShareInput(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("1\ny\n")

	idx, err := (&NumberedChooser{In: in, Out: &out}).Choose("Select secret", candidates())
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	ok, err := (&Confirmer{In: in, Out: &out}).Confirm("Delete?")
	require.NoError(t, err)
	assert.True(t, ok)
}
