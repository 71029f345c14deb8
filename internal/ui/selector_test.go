package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	pkgtypes "github.com/vietdv277/smf/pkg/types"
)

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		query, s string
		want     bool
	}{
		{"", "anything", true},
		{"dbp", "db-pass", true},
		{"DBP", "db-pass", true},
		{"pdb", "db-pass", false},
		{"prod/api", "PROD/api-key", true},
		{"xyz", "db-pass", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fuzzyMatch(tt.query, tt.s), "%q in %q", tt.query, tt.s)
	}
}

func TestModelSelectsInListOrder(t *testing.T) {
	m := NewModel("Select secret", candidates())

	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Cancelled())
	assert.Equal(t, 2, m.Selected())
}

func TestModelFilterMapsToOriginalIndex(t *testing.T) {
	m := NewModel("Select secret", candidates())

	m = press(m, runes("hst"))
	assert.Equal(t, []int{2}, m.filtered)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, m.Selected())
}

func TestModelBackspaceWidensFilter(t *testing.T) {
	m := NewModel("Select secret", candidates())

	m = press(m, runes("user"))
	assert.Len(t, m.filtered, 1)

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Len(t, m.filtered, 3)
}

func TestModelEnterWithNoMatchesIsIgnored(t *testing.T) {
	m := NewModel("Select secret", candidates())

	m = press(m, runes("zzz"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, -1, m.Selected())
	assert.Contains(t, m.View(), "No secrets match")
}

func TestModelCancel(t *testing.T) {
	m := NewModel("Select secret", candidates())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.True(t, m.Cancelled())
	assert.NotNil(t, cmd)
	assert.Equal(t, "", m.View())
}

func TestModelViewShowsDetails(t *testing.T) {
	secrets := []pkgtypes.Secret{
		{ARN: "arn:aws:secretsmanager:eu-west-1:123456789012:secret:db-pass-AbCdEf", Name: "db-pass", Description: strPtr("prod db")},
		{ARN: "not-an-arn", Name: "api-key"},
	}
	m := NewModel("Select secret", secrets)
	m = press(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Select secret > ")
	assert.Contains(t, view, " > db-pass")
	assert.Contains(t, view, "123456789012")
	assert.Contains(t, view, "eu-west-1")
	assert.Contains(t, view, "prod db")
	assert.Contains(t, view, "2/2 secrets")

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	view = m.View()
	assert.Contains(t, view, " > api-key")
	assert.Contains(t, view, "not-an-arn")
}

func TestModelScrolls(t *testing.T) {
	var secrets []pkgtypes.Secret
	for i := 0; i < listHeight+4; i++ {
		secrets = append(secrets, pkgtypes.Secret{ARN: "arn", Name: string(rune('a'+i)) + "-secret"})
	}
	m := NewModel("Select secret", secrets)

	for i := 0; i < listHeight+2; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, listHeight+2, m.cursor)
	assert.Equal(t, 3, m.offset)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, listHeight+2, m.Selected())
}
