package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box is a rounded frame with a title line.
type Box struct {
	Title   string
	Content string
	Color   lipgloss.Color
	Active  bool
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	inner := max(1, width-4)
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(width - 2).Height(max(1, height-2))
	if b.Color != "" {
		style = style.BorderForeground(b.Color)
	}
	if b.Active {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}
	title := TitleStyle.Render(ansi.Truncate(b.Title, inner, "…"))
	if b.Color != "" {
		title = TitleStyle.Foreground(b.Color).Render(ansi.Truncate(b.Title, inner, "…"))
	}
	lines := []string{title}
	for _, l := range strings.Split(b.Content, "\n") {
		lines = append(lines, ansi.Truncate(l, inner, "…"))
	}
	return style.Render(strings.Join(lines, "\n"))
}
