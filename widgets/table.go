package widgets

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
)

// ScoreRow is one player's line on the scoreboard.
type ScoreRow struct {
	Name  string
	Total int
	Past  []int
}

// Scoreboard tabulates totals and the most recent round scores.
type Scoreboard struct {
	Rows []ScoreRow
}

func (s Scoreboard) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(s.Rows) == 0 {
		return DimStyle.Render("No players yet.")
	}
	historyWidth := max(6, width-28)
	rows := make([][]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, []string{r.Name, signed(r.Total), recentScores(r.Past, historyWidth)})
	}
	border := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		BorderRow(false).
		Headers("Player", "Total", "Rounds").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			if col == 0 && row >= 0 {
				return cell.Foreground(SeatColor(row))
			}
			if col == 1 {
				return cell.Align(lipgloss.Right)
			}
			return cell
		})
	return fitCanvas(t.Render(), width, height)
}

// recentScores lists past scores newest last, dropping the oldest to fit.
func recentScores(past []int, width int) string {
	parts := make([]string, len(past))
	for i, p := range past {
		parts[i] = signed(p)
	}
	for len(parts) > 1 && ansi.StringWidth(strings.Join(parts, " ")) > width {
		parts = parts[1:]
		parts[0] = "…"
	}
	return strings.Join(parts, " ")
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
