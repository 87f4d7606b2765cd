package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/doko/internal/database/repository"
	"github.com/jask/doko/internal/game"
	"github.com/jask/doko/internal/input"
	"github.com/jask/doko/internal/selectlist"
	"github.com/jask/doko/widgets"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ledgerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

const blockHeight = 5

func (a *App) render() string {
	width, height := max(20, a.width), max(12, a.height)
	footer := a.footer(width)
	bodyHeight := max(1, height-blockHeight-lipgloss.Height(footer))

	base := strings.Join([]string{
		a.playerBlocks().Render(width, blockHeight),
		a.body().Render(width, bodyHeight),
		footer,
	}, "\n")

	if a.machine.Mode() == input.ModeAddPlayer {
		return widgets.Popup{
			Title: "New player",
			Body:  a.machine.Buffer() + "▏\n" + widgets.DimStyle.Render("enter to add · esc to cancel"),
		}.Overlay(base, width, height)
	}
	return base
}

func (a *App) playerBlocks() widgets.Widget {
	players := a.machine.Session().Players()
	active, hasActive := a.machine.Active()
	hasActive = hasActive && a.machine.Mode() == input.ModeSelectGameEvent
	blocks := make([]widgets.Widget, game.MaxPlayers)
	for seat := range blocks {
		if seat >= len(players) {
			blocks[seat] = widgets.Box{Title: fmt.Sprintf("Seat %d", seat+1), Content: widgets.DimStyle.Render("empty")}
			continue
		}
		p := players[seat]
		last := "-"
		if v, ok := p.LastScore(); ok {
			last = signed(v)
		}
		blocks[seat] = widgets.Box{
			Title:   p.Name,
			Content: fmt.Sprintf("Total: %s\nLast:  %s", signed(p.TotalScore), last),
			Color:   widgets.SeatColor(seat),
			Active:  hasActive && active.ID == p.ID,
		}
	}
	return widgets.HStack{Widgets: blocks}
}

func (a *App) body() widgets.Widget {
	switch a.machine.Mode() {
	case input.ModeSelectPlayer:
		return widgets.HStack{
			Widgets: []widgets.Widget{a.playerList(), a.scoreboard()},
			Ratios:  []float64{0.45, 0.55},
			Gap:     2,
		}
	case input.ModeSelectGameEvent:
		active, _ := a.machine.Active()
		return widgets.HStack{
			Widgets: []widgets.Widget{a.playerList(), listWidget("Events for "+active.Name, a.machine.EventList(), nil)},
			Ratios:  []float64{0.5, 0.5},
			Gap:     2,
		}
	default:
		return widgets.HStack{
			Widgets: []widgets.Widget{
				listWidget("Menu", a.machine.Menu(), nil),
				widgets.VStack{
					Widgets: []widgets.Widget{a.scoreboard(), a.chart()},
					Ratios:  []float64{0.4, 0.6},
				},
			},
			Ratios: []float64{0.25, 0.75},
			Gap:    2,
		}
	}
}

func (a *App) playerList() widgets.Widget {
	title := "Players"
	var notes []string
	if r, ok := a.machine.Session().OpenRound(); ok {
		title = fmt.Sprintf("Round %d", r.Index)
		players := a.machine.Session().Players()
		for seat := range players {
			notes = append(notes, declared(r.PerPlayer[seat], players))
		}
	}
	return listWidget(title, a.machine.PlayerList(), notes)
}

func listWidget(title string, l *selectlist.List[string], notes []string) widgets.Widget {
	idx, ok := l.Selected()
	return widgets.SelectList{Title: title, Items: l.Items(), Selected: idx, Has: ok, Notes: notes}
}

func (a *App) scoreboard() widgets.Widget {
	players := a.machine.Session().Players()
	rows := make([]widgets.ScoreRow, 0, len(players))
	for _, p := range players {
		rows = append(rows, widgets.ScoreRow{Name: p.Name, Total: p.TotalScore, Past: p.PastScores})
	}
	return widgets.Scoreboard{Rows: rows}
}

func (a *App) chart() widgets.Widget {
	return widgets.ScoreChart{Title: "Score history", Series: historySeries(a.history)}
}

// historySeries turns ledger rows into one running-total series per seat.
func historySeries(rounds []repository.Round) []widgets.Series {
	var out []widgets.Series
	for _, rd := range rounds {
		for _, s := range rd.Scores {
			for len(out) <= s.Seat {
				out = append(out, widgets.Series{Color: widgets.SeatColor(len(out))})
			}
			out[s.Seat].Name = s.PlayerName
			out[s.Seat].Totals = append(out[s.Seat].Totals, s.Total)
		}
	}
	return out
}

// declared summarizes what a player has entered so far this round.
func declared(info game.PlayerRoundInfo, players []game.Player) string {
	var parts []string
	if info.Won {
		parts = append(parts, "won")
	}
	if info.Contra {
		parts = append(parts, "contra")
	}
	if info.Bids > 0 {
		parts = append(parts, fmt.Sprintf("bid×%d", info.Bids))
	}
	if info.ExAnte > 0 {
		parts = append(parts, fmt.Sprintf("ex ante×%d", info.ExAnte))
	}
	if info.Doppelkopf > 0 {
		parts = append(parts, fmt.Sprintf("doko×%d", info.Doppelkopf))
	}
	if info.Karlchen {
		parts = append(parts, "karlchen")
	}
	if info.KarlchenCaught {
		parts = append(parts, "caught karlchen")
	}
	foxes := 0
	for _, t := range info.FoxEvents {
		if t == info.Player {
			foxes++
		}
	}
	if foxes > 0 {
		parts = append(parts, fmt.Sprintf("fox×%d", foxes))
	}
	for _, p := range players {
		if p.ID == info.Teammate && info.Teammate != "" {
			parts = append(parts, "with "+p.Name)
		}
	}
	if info.Done {
		parts = append(parts, "✓")
	}
	return strings.Join(parts, " ")
}

func (a *App) footer(width int) string {
	lines := []string{statusStyle.Render(a.machine.Status())}
	if a.ledger != "" {
		lines = append(lines, ledgerStyle.Render(a.ledger))
	}
	a.help.Width = width
	lines = append(lines, a.help.ShortHelpView(a.keys.bindings(a.machine.Mode())))
	return strings.Join(lines, "\n")
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
