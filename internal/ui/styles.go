package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Box drawing characters
const (
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
	Horizontal  = "─"
	Vertical    = "│"
	LeftT       = "├"
	RightT      = "┤"
	TopT        = "┬"
	BottomT     = "┴"
	Cross       = "┼"
)

// Color palette
const (
	ColorBorder = "240"
	ColorHeader = "252"
	ColorName   = "81"
	ColorDesc   = "252"
	ColorARN    = "214"
	ColorActive = "82"
	ColorMuted  = "240"
	ColorHint   = "245"
	ColorError  = "196"
	ColorKey    = "75"
	ColorString = "114"
	ColorNumber = "214"
	ColorBool   = "177"
	ColorNull   = "245"
	ColorPunct  = "250"
)

// Shared styles
var (
	BorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	NameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorName))
	DescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDesc))
	ARNStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorARN))
	ActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHint))
	ErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorError))

	jsonKeyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorKey))
	jsonStringStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorString))
	jsonNumberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorNumber))
	jsonBoolStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBool))
	jsonNullStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorNull))
	jsonPunctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPunct))
)

// DisableColor forces plain output for every style in the process
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw > width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}
