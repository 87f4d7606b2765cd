package tui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/doko/internal/database"
	"github.com/jask/doko/internal/database/repository"
	"github.com/jask/doko/internal/game"
	"github.com/jask/doko/internal/input"
)

// App ties the interaction state machine to the terminal.
type App struct {
	ctx     context.Context
	machine *input.Machine
	rounds  *repository.RoundRepo
	keys    keyMap
	help    help.Model

	history []repository.Round
	ledger  string // last ledger problem, shown under the status line
	width   int
	height  int
}

// New builds the model. rounds may be nil, in which case committed rounds are
// not archived and the history chart stays empty.
func New(ctx context.Context, machine *input.Machine, rounds *repository.RoundRepo) *App {
	return &App{
		ctx:     ctx,
		machine: machine,
		rounds:  rounds,
		keys:    newKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadHistory()
}

func (a *App) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if a.rounds == nil {
			return historyMsg(nil)
		}
		list, err := a.rounds.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg(list)
	}
}

// archiveCmd stores a committed round and reloads the history.
func (a *App) archiveCmd(res game.RoundResult) tea.Cmd {
	rec := roundRecord(res)
	return func() tea.Msg {
		if a.rounds == nil {
			return historyMsg(nil)
		}
		if err := a.rounds.Insert(a.ctx, rec); err != nil {
			return errMsg{fmt.Errorf("archive round %d: %w", rec.Index, err)}
		}
		list, err := a.rounds.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg(list)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
	case historyMsg:
		a.history = m
	case errMsg:
		log.Printf("ledger: %v", m.error)
		a.ledger = "ledger: " + m.Error()
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, k := range a.keys.translate(a.machine.Mode(), msg) {
		eff := a.machine.Handle(k)
		switch eff.Kind {
		case input.EffectQuit:
			return a, tea.Quit
		case input.EffectRejected:
			log.Printf("rejected in %s: %v", a.machine.Mode(), eff.Err)
		case input.EffectPlayerAdded:
			log.Printf("player %q seated", eff.Player.Name)
		case input.EffectRoundCommitted:
			log.Printf("round %d committed: %v", eff.Result.Index, eff.Result.Deltas())
			cmds = append(cmds, a.archiveCmd(eff.Result))
		}
	}
	return a, tea.Batch(cmds...)
}

func (a *App) View() string {
	return a.render()
}

// roundRecord flattens a committed round for the ledger.
func roundRecord(res game.RoundResult) repository.Round {
	names := make(map[game.Token]string, len(res.Players))
	for _, p := range res.Players {
		names[p.ID] = p.Name
	}
	rec := repository.Round{
		ID:          uuid.NewString(),
		Index:       res.Index,
		CommittedAt: database.Now(),
	}
	for seat, p := range res.Players {
		info := res.Infos[seat]
		foxes := 0
		for _, t := range info.FoxEvents {
			if t == p.ID {
				foxes++
			}
		}
		rec.Scores = append(rec.Scores, repository.RoundScore{
			Seat:           seat,
			PlayerID:       string(p.ID),
			PlayerName:     p.Name,
			Delta:          info.RoundScore,
			Total:          p.TotalScore,
			Won:            info.Won,
			Contra:         info.Contra,
			Bids:           info.Bids,
			ExAnte:         info.ExAnte,
			Doppelkopf:     info.Doppelkopf,
			Karlchen:       info.Karlchen,
			KarlchenCaught: info.KarlchenCaught,
			FoxesCaught:    foxes,
			Teammate:       names[info.Teammate],
		})
	}
	return rec
}

// messages
type historyMsg []repository.Round

type errMsg struct{ error }
