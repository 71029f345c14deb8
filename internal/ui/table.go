package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	pkgtypes "github.com/vietdv277/smf/pkg/types"
)

type cell struct {
	text  string
	style lipgloss.Style
}

// boxTable renders rows in a bordered box with a styled header row
type boxTable struct {
	headers []string
	widths  []int
	rows    [][]cell
}

func (t *boxTable) border(left, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(BorderStyle.Render(left))
	for i, w := range t.widths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(t.widths)-1 {
			sb.WriteString(BorderStyle.Render(mid))
		}
	}
	sb.WriteString(BorderStyle.Render(right))
	sb.WriteString("\n")
	return sb.String()
}

func (t *boxTable) String() string {
	var sb strings.Builder

	sb.WriteString(t.border(TopLeft, TopT, TopRight))

	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range t.headers {
		sb.WriteString(HeaderStyle.Render(" " + padRight(h, t.widths[i]) + " "))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	sb.WriteString(t.border(LeftT, Cross, RightT))

	for _, row := range t.rows {
		sb.WriteString(BorderStyle.Render(Vertical))
		for i, c := range row {
			sb.WriteString(c.style.Render(" " + padRight(c.text, t.widths[i]) + " "))
			sb.WriteString(BorderStyle.Render(Vertical))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(t.border(BottomLeft, BottomT, BottomRight))
	return sb.String()
}

// fitWidth returns the widest display width of header and values
func fitWidth(header string, values []string) int {
	w := runewidth.StringWidth(header)
	for _, v := range values {
		if vw := runewidth.StringWidth(v); vw > w {
			w = vw
		}
	}
	return w
}

// PrintSecretsTable writes secrets as a Name/Description table followed by the
// count, surrounded by blank lines. Cells are never truncated; a missing
// description renders as an empty cell.
func PrintSecretsTable(w io.Writer, secrets []pkgtypes.Secret) {
	names := make([]string, len(secrets))
	descs := make([]string, len(secrets))
	for i, s := range secrets {
		names[i] = s.Name
		descs[i] = singleLine(s.DescriptionOrEmpty())
	}

	t := &boxTable{
		headers: []string{"Name", "Description"},
		widths: []int{
			fitWidth("Name", names),
			fitWidth("Description", descs),
		},
	}
	for i := range secrets {
		t.rows = append(t.rows, []cell{
			{text: names[i], style: NameStyle},
			{text: descs[i], style: DescStyle},
		})
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, t.String())
	fmt.Fprintf(w, "  %d secrets\n", len(secrets))
	fmt.Fprintln(w)
}

// PrintProfileTable writes AWS profiles, marking the active one
func PrintProfileTable(w io.Writer, profiles []pkgtypes.AWSProfile, activeProfile string) {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}

	t := &boxTable{
		headers: []string{"", "Name", "Region", "Source"},
		widths:  []int{1, fitWidth("Name", names), 16, 11},
	}
	for _, p := range profiles {
		marker, nameStyle := "", NameStyle
		if p.Name == activeProfile {
			marker, nameStyle = "●", ActiveStyle
		}
		region := p.Region
		if region == "" {
			region = "-"
		}
		t.rows = append(t.rows, []cell{
			{text: marker, style: ActiveStyle},
			{text: p.Name, style: nameStyle},
			{text: region, style: MutedStyle},
			{text: p.Source, style: MutedStyle},
		})
	}

	fmt.Fprint(w, t.String())
	fmt.Fprintf(w, "  %d profiles\n", len(profiles))
}

var lineFolder = strings.NewReplacer("\r\n", " ", "\n", " ", "\t", " ")

// singleLine folds newlines so a multi-line description keeps the table intact
func singleLine(s string) string {
	return lineFolder.Replace(s)
}
