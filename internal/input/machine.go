// Package input is the interaction state machine: it decides what each key
// means in the active mode and drives the game session accordingly.
package input

import (
	"errors"
	"fmt"

	"github.com/jask/doko/internal/game"
	"github.com/jask/doko/internal/selectlist"
)

// Config tunes transitions.
type Config struct {
	// StayInAddPlayer keeps player entry open after a successful add.
	StayInAddPlayer bool
}

// EffectKind tells the caller what a key press did beyond moving state.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectQuit
	EffectRejected
	EffectPlayerAdded
	EffectRoundCommitted
)

// Effect is the outcome of handling one key.
type Effect struct {
	Kind   EffectKind
	Err    error
	Player game.Player
	Result game.RoundResult
}

// Machine owns the interaction state for one session.
type Machine struct {
	session *game.Session
	cfg     Config

	mode   Mode
	buffer []rune
	status string

	menu    *selectlist.List[string]
	players *selectlist.List[string]
	events  *selectlist.List[string]
	options []game.EventOption
	active  game.Player
}

// New starts in player entry with an empty roster view.
func New(session *game.Session, cfg Config) *Machine {
	return &Machine{
		session: session,
		cfg:     cfg,
		mode:    ModeAddPlayer,
		menu:    selectlist.WithItems(menuItems()),
		players: session.PlayerListView(),
		events:  selectlist.WithItems[string](nil),
	}
}

func (m *Machine) Mode() Mode { return m.mode }

// Buffer is the pending player name.
func (m *Machine) Buffer() string { return string(m.buffer) }

// Status is the last message for the user, if any.
func (m *Machine) Status() string { return m.status }

func (m *Machine) Session() *game.Session { return m.session }

func (m *Machine) Menu() *selectlist.List[string] { return m.menu }

func (m *Machine) PlayerList() *selectlist.List[string] { return m.players }

func (m *Machine) EventList() *selectlist.List[string] { return m.events }

// Active is the player currently declaring events.
func (m *Machine) Active() (game.Player, bool) {
	return m.active, m.active.ID != ""
}

// Handle applies one key press.
func (m *Machine) Handle(k Key) Effect {
	if k.Kind == KeyInterrupt {
		return Effect{Kind: EffectQuit}
	}
	switch m.mode {
	case ModeAddPlayer:
		return m.handleAddPlayer(k)
	case ModeBrowse:
		return m.handleBrowse(k)
	case ModeSelectPlayer:
		return m.handleSelectPlayer(k)
	case ModeSelectGameEvent:
		return m.handleSelectGameEvent(k)
	}
	return Effect{}
}

func (m *Machine) handleAddPlayer(k Key) Effect {
	switch k.Kind {
	case KeyRune:
		m.buffer = append(m.buffer, k.Rune)
	case KeyBackspace:
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
	case KeyEsc:
		m.buffer = m.buffer[:0]
		m.status = ""
		m.mode = ModeBrowse
	case KeyEnter:
		return m.commitPlayer()
	}
	return Effect{}
}

func (m *Machine) commitPlayer() Effect {
	name := string(m.buffer)
	similar, hasSimilar := m.session.SimilarName(name)
	p, err := m.session.AddPlayer(name)
	if errors.Is(err, game.ErrRosterFull) {
		m.buffer = m.buffer[:0]
		m.mode = ModeBrowse
		return m.reject(err)
	}
	if err != nil {
		return m.reject(err)
	}

	m.buffer = m.buffer[:0]
	m.players = m.session.PlayerListView()
	m.status = fmt.Sprintf("%s joined the table", p.Name)
	if hasSimilar {
		m.status += fmt.Sprintf(" (similar to %s)", similar)
	}
	if m.session.RosterFull() || !m.cfg.StayInAddPlayer {
		m.mode = ModeBrowse
	}
	return Effect{Kind: EffectPlayerAdded, Player: p}
}

func (m *Machine) handleBrowse(k Key) Effect {
	switch k.Kind {
	case KeyUp:
		m.menu.Previous()
	case KeyDown:
		m.menu.Next()
	case KeyAdd:
		return m.openAddPlayer()
	case KeyQuit:
		return Effect{Kind: EffectQuit}
	case KeyEnter:
		item, err := m.menu.Current()
		if err != nil {
			return m.reject(err)
		}
		switch item {
		case MenuStartRound:
			return m.startRound()
		case MenuAddPlayer:
			return m.openAddPlayer()
		case MenuQuit:
			return Effect{Kind: EffectQuit}
		}
	}
	return Effect{}
}

func (m *Machine) openAddPlayer() Effect {
	if m.session.RosterFull() {
		return m.reject(game.ErrRosterFull)
	}
	m.status = ""
	m.mode = ModeAddPlayer
	return Effect{}
}

func (m *Machine) startRound() Effect {
	r, err := m.session.StartRound()
	if err != nil {
		return m.reject(err)
	}
	m.status = fmt.Sprintf("round %d: pick a player", r.Index)
	m.mode = ModeSelectPlayer
	return Effect{}
}

func (m *Machine) handleSelectPlayer(k Key) Effect {
	switch k.Kind {
	case KeyUp:
		m.players.Previous()
	case KeyDown:
		m.players.Next()
	case KeyEsc:
		m.status = "round paused"
		m.mode = ModeBrowse
	case KeyEnter:
		name, err := m.players.Current()
		if err != nil {
			return m.reject(err)
		}
		p, err := m.session.PlayerByName(name)
		if err != nil {
			return m.reject(err)
		}
		m.active = p
		m.options = m.session.EventOptions(p.ID)
		m.events = selectlist.WithItems(game.Labels(m.options))
		m.status = ""
		m.mode = ModeSelectGameEvent
	}
	return Effect{}
}

func (m *Machine) handleSelectGameEvent(k Key) Effect {
	switch k.Kind {
	case KeyUp:
		m.events.Previous()
	case KeyDown:
		m.events.Next()
	case KeyEsc:
		m.status = ""
		m.mode = ModeSelectPlayer
	case KeyEnter:
		return m.declare()
	}
	return Effect{}
}

func (m *Machine) declare() Effect {
	label, err := m.events.Current()
	if err != nil {
		return m.reject(err)
	}
	ev, ok := game.ResolveEvent(m.options, label)
	if !ok {
		return m.reject(fmt.Errorf("unknown event %q", label))
	}
	if err := m.session.Declare(m.active.ID, ev); err != nil {
		return m.reject(err)
	}

	r, _ := m.session.OpenRound()
	if r == nil || !r.Complete() {
		m.status = fmt.Sprintf("%s: %s", m.active.Name, label)
		m.mode = ModeSelectPlayer
		return Effect{}
	}

	res, err := m.session.CommitRound()
	if err != nil {
		return m.reject(err)
	}
	m.active = game.Player{}
	m.options = nil
	m.events = selectlist.WithItems[string](nil)
	m.players = m.session.PlayerListView()
	m.status = fmt.Sprintf("round %d scored", res.Index)
	m.mode = ModeBrowse
	return Effect{Kind: EffectRoundCommitted, Result: res}
}

func (m *Machine) reject(err error) Effect {
	m.status = err.Error()
	return Effect{Kind: EffectRejected, Err: err}
}
