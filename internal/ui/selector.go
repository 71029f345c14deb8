package ui

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	pkgtypes "github.com/vietdv277/smf/pkg/types"
)

const (
	listHeight       = 8
	detailLabelWidth = 14
	minWidth         = 60
	maxWidth         = 120
)

// Model is the bubbletea model for picking one secret out of several
type Model struct {
	prompt       string
	secrets      []pkgtypes.Secret
	filtered     []int // indexes into secrets, in list order
	cursor       int
	offset       int // for scrolling
	search       string
	selected     int
	quitting     bool
	cancelled    bool
	termWidth    int
	contentWidth int
}

// NewModel creates a selector over secrets
func NewModel(prompt string, secrets []pkgtypes.Secret) Model {
	m := Model{
		prompt:    prompt,
		secrets:   secrets,
		selected:  -1,
		termWidth: 80,
	}
	m.filterSecrets()
	m.calculateWidths()
	return m
}

func (m *Model) calculateWidths() {
	m.contentWidth = m.termWidth - 2
	if m.contentWidth < minWidth {
		m.contentWidth = minWidth
	}
	if m.contentWidth > maxWidth {
		m.contentWidth = maxWidth
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.calculateWidths()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.selected = m.filtered[m.cursor]
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp, tea.KeyCtrlP:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown, tea.KeyCtrlN:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+listHeight {
					m.offset = m.cursor - listHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				r := []rune(m.search)
				m.search = string(r[:len(r)-1])
				m.filterSecrets()
			}

		case tea.KeySpace:
			m.search += " "
			m.filterSecrets()

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filterSecrets()
		}
	}

	return m, nil
}

// filterSecrets keeps the secrets whose name fuzzily matches the search text
func (m *Model) filterSecrets() {
	m.filtered = nil
	for i, s := range m.secrets {
		if fuzzyMatch(m.search, s.Name) {
			m.filtered = append(m.filtered, i)
		}
	}
	if m.cursor >= len(m.filtered) {
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		} else {
			m.cursor = 0
		}
	}
	m.offset = 0
	if m.cursor >= listHeight {
		m.offset = m.cursor - listHeight + 1
	}
}

// fuzzyMatch reports whether every rune of query appears in s in order, ignoring case
func fuzzyMatch(query, s string) bool {
	if query == "" {
		return true
	}
	q := []rune(strings.ToLower(query))
	qi := 0
	for _, r := range strings.ToLower(s) {
		if r == q[qi] {
			qi++
			if qi == len(q) {
				return true
			}
		}
	}
	return false
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth

	sb.WriteString(BorderStyle.Render(TopLeft + strings.Repeat(Horizontal, w) + TopRight))
	sb.WriteString("\n")

	sb.WriteString(m.line(NameStyle, " "+m.prompt+" > "+m.search))
	sb.WriteString(m.blank())

	visibleEnd := m.offset + listHeight
	if visibleEnd > len(m.filtered) {
		visibleEnd = len(m.filtered)
	}
	for i := m.offset; i < visibleEnd; i++ {
		sb.WriteString(m.renderRow(i))
	}
	for i := visibleEnd - m.offset; i < listHeight; i++ {
		sb.WriteString(m.blank())
	}

	sb.WriteString(BorderStyle.Render(LeftT + strings.Repeat(Horizontal, w) + RightT))
	sb.WriteString("\n")

	sb.WriteString(m.renderDetailsPanel())

	sb.WriteString(BorderStyle.Render(BottomLeft + strings.Repeat(Horizontal, w) + BottomRight))
	sb.WriteString("\n")

	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

func (m Model) line(style lipgloss.Style, text string) string {
	return BorderStyle.Render(Vertical) + style.Render(padRight(text, m.contentWidth)) + BorderStyle.Render(Vertical) + "\n"
}

func (m Model) blank() string {
	return m.line(lipgloss.NewStyle(), "")
}

func (m Model) renderRow(idx int) string {
	s := m.secrets[m.filtered[idx]]
	prefix := "   "
	style := NameStyle
	if idx == m.cursor {
		prefix = " > "
		style = style.Bold(true)
	}
	return m.line(style, prefix+s.Name)
}

func (m Model) renderDetailsPanel() string {
	var sb strings.Builder

	sb.WriteString(m.line(HeaderStyle, " Secret Details"))
	sb.WriteString(m.line(MutedStyle, " "+strings.Repeat("─", 20)))

	if len(m.filtered) == 0 {
		sb.WriteString(m.line(MutedStyle, " No secrets match"))
		for i := 0; i < 4; i++ {
			sb.WriteString(m.blank())
		}
		sb.WriteString(m.blank())
		return sb.String()
	}

	s := m.secrets[m.filtered[m.cursor]]
	account, region := "-", "-"
	if parsed, err := arn.Parse(s.ARN); err == nil {
		account, region = parsed.AccountID, parsed.Region
	}

	details := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Name:", s.Name, NameStyle},
		{"Description:", formatOptional(singleLine(s.DescriptionOrEmpty())), DescStyle},
		{"ARN:", s.ARN, ARNStyle},
		{"Account:", account, MutedStyle},
		{"Region:", region, MutedStyle},
	}

	w := m.contentWidth
	for _, d := range details {
		maxValueWidth := w - 1 - detailLabelWidth
		value := d.value
		if runewidth.StringWidth(value) > maxValueWidth {
			value = runewidth.Truncate(value, maxValueWidth, "...")
		}
		plainWidth := 1 + detailLabelWidth + runewidth.StringWidth(value)

		line := MutedStyle.Render(" "+padRight(d.label, detailLabelWidth)) + d.style.Render(value)
		if plainWidth < w {
			line += strings.Repeat(" ", w-plainWidth)
		}

		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(line)
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}
	sb.WriteString(m.blank())

	return sb.String()
}

func (m Model) renderStatusBar() string {
	w := m.contentWidth + 2

	countInfo := fmt.Sprintf("  %d/%d secrets", len(m.filtered), len(m.secrets))
	hints := "[↑↓:move] [Enter:select] [Esc:cancel]"

	padding := w - runewidth.StringWidth(countInfo) - runewidth.StringWidth(hints)
	if padding < 1 {
		padding = 1
	}
	return countInfo + strings.Repeat(" ", padding) + HintStyle.Render(hints) + "\n"
}

// Selected returns the chosen index into the original list, or -1
func (m Model) Selected() int {
	return m.selected
}

// Cancelled reports whether the user backed out
func (m Model) Cancelled() bool {
	return m.cancelled
}

func formatOptional(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// FuzzyChooser picks a secret with an interactive, incrementally filtered list.
// The picker draws on stderr so stdout stays clean for piping.
type FuzzyChooser struct {
	Options []tea.ProgramOption
}

// Choose implements the secrets chooser
func (c *FuzzyChooser) Choose(prompt string, candidates []pkgtypes.Secret) (int, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("no secrets to choose from")
	}

	p := tea.NewProgram(NewModel(prompt, candidates), c.Options...)
	finalModel, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(Model)
	if result.Cancelled() || result.Selected() < 0 {
		return 0, ErrCancelled
	}
	return result.Selected(), nil
}
