package ui

import (
	"encoding/json"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"object", `{"a":1}`, false},
		{"array", `[1, 2]`, false},
		{"string", `"x"`, false},
		{"number", `42`, false},
		{"plain text", `plain-text`, true},
		{"empty", ``, true},
		{"trailing data", `{"a":1} extra`, true},
		{"two documents", `{} {}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatJSONPlain(t *testing.T) {
	v, err := ParseJSON(`{"b":[true,null,{}],"a":1.50,"c":"<tag>&","d":[],"e":{"x":"y"}}`)
	require.NoError(t, err)

	want := `{
  "a": 1.50,
  "b": [
    true,
    null,
    {}
  ],
  "c": "<tag>&",
  "d": [],
  "e": {
    "x": "y"
  }
}`
	assert.Equal(t, want, FormatJSON(v, false))
}

func TestFormatJSONContentEquivalent(t *testing.T) {
	v, err := ParseJSON(`{"a":1}`)
	require.NoError(t, err)

	out := FormatJSON(v, false)
	assert.JSONEq(t, `{"a": 1}`, out)
	assert.True(t, json.Valid([]byte(out)))
}

func TestFormatJSONScalars(t *testing.T) {
	v, err := ParseJSON(`"quote \" and \\ slash"`)
	require.NoError(t, err)
	assert.Equal(t, `"quote \" and \\ slash"`, FormatJSON(v, false))

	assert.Equal(t, "null", FormatJSON(nil, false))
	assert.Equal(t, "2.5", FormatJSON(2.5, false))
}

func TestFormatJSONColored(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer DisableColor()

	v, err := ParseJSON(`{"name":"db","port":5432,"tls":true}`)
	require.NoError(t, err)

	colored := FormatJSON(v, true)
	assert.Contains(t, colored, "\x1b[")
	assert.Equal(t, FormatJSON(v, false), ansi.Strip(colored))
}
