package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("120")).Foreground(lipgloss.Color("0")).Bold(true)

// SelectList draws a list with an optional highlighted row.
type SelectList struct {
	Title    string
	Items    []string
	Selected int
	Has      bool
	// Notes are appended dimmed after the matching item, if present.
	Notes []string
}

func (l SelectList) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(l.Items)+1)
	if l.Title != "" {
		rows = append(rows, TitleStyle.Render(l.Title))
	}
	if len(l.Items) == 0 {
		rows = append(rows, DimStyle.Render("(empty)"))
	}

	// keep the highlighted row visible when the list is taller than the space
	first := 0
	room := height - len(rows)
	if l.Has && room > 0 && l.Selected >= room {
		first = l.Selected - room + 1
	}
	for i := first; i < len(l.Items); i++ {
		line := "  " + l.Items[i]
		if i < len(l.Notes) && l.Notes[i] != "" {
			line += " " + DimStyle.Render(l.Notes[i])
		}
		if l.Has && i == l.Selected {
			line = selectedStyle.Render("> " + l.Items[i])
			if i < len(l.Notes) && l.Notes[i] != "" {
				line += " " + DimStyle.Render(l.Notes[i])
			}
		}
		rows = append(rows, padRight(line, width))
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}
