package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#3AA99F", Dark: "#3AA99F"})
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#878580", Dark: "#575653"})
)

// table is a bordered text table. Columns listed in right are right-aligned.
type table struct {
	title   string
	headers []string
	rows    [][]string
	right   map[int]bool
}

// renderTitle renders a title in a rounded box.
func renderTitle(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dimStyle.GetForeground()).
		Padding(0, 1).
		Render(titleStyle.Render(title))
}

func (t table) render() string {
	numCols := len(t.headers)
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i := 0; i < numCols && i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	if t.title != "" {
		b.WriteString(headerStyle.Render(t.title))
		b.WriteString("\n")
	}

	border := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	line := func(cells []string, style *lipgloss.Style) {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if t.right[i] {
				cell = runewidth.FillLeft(cell, widths[i])
			} else {
				cell = runewidth.FillRight(cell, widths[i])
			}
			cell = " " + cell + " "
			if style != nil {
				cell = style.Render(cell)
			}
			b.WriteString(cell)
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	border("╭", "┬", "╮")
	line(t.headers, &headerStyle)
	border("├", "┼", "┤")
	for _, row := range t.rows {
		line(row, nil)
	}
	border("╰", "┴", "╯")

	return b.String()
}
