package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/doko/internal/input"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	VimUp     key.Binding
	VimDown   key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Erase     key.Binding
	Add       key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		VimUp:     key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "up")),
		VimDown:   key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "down")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Erase:     key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "delete")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add player")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// translate maps a terminal key to state machine keys. Printable keys are
// text while a name is being typed and shortcuts otherwise.
func (k keyMap) translate(mode input.Mode, msg tea.KeyMsg) []input.Key {
	switch {
	case key.Matches(msg, k.Interrupt):
		return []input.Key{input.Press(input.KeyInterrupt)}
	case key.Matches(msg, k.Submit):
		return []input.Key{input.Press(input.KeyEnter)}
	case key.Matches(msg, k.Cancel):
		return []input.Key{input.Press(input.KeyEsc)}
	case key.Matches(msg, k.Erase):
		return []input.Key{input.Press(input.KeyBackspace)}
	case key.Matches(msg, k.Up):
		return []input.Key{input.Press(input.KeyUp)}
	case key.Matches(msg, k.Down):
		return []input.Key{input.Press(input.KeyDown)}
	}

	if mode == input.ModeAddPlayer {
		switch msg.Type {
		case tea.KeySpace:
			return []input.Key{input.Rune(' ')}
		case tea.KeyRunes:
			out := make([]input.Key, 0, len(msg.Runes))
			for _, r := range msg.Runes {
				out = append(out, input.Rune(r))
			}
			return out
		}
		return nil
	}

	switch {
	case key.Matches(msg, k.VimUp):
		return []input.Key{input.Press(input.KeyUp)}
	case key.Matches(msg, k.VimDown):
		return []input.Key{input.Press(input.KeyDown)}
	case mode == input.ModeBrowse && key.Matches(msg, k.Add):
		return []input.Key{input.Press(input.KeyAdd)}
	case mode == input.ModeBrowse && key.Matches(msg, k.Quit):
		return []input.Key{input.Press(input.KeyQuit)}
	}
	return nil
}

// bindings lists the keys worth showing in the footer for mode.
func (k keyMap) bindings(mode input.Mode) []key.Binding {
	switch mode {
	case input.ModeAddPlayer:
		return []key.Binding{k.Submit, k.Erase, k.Cancel, k.Interrupt}
	case input.ModeBrowse:
		return []key.Binding{k.Up, k.Down, k.Submit, k.Add, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Submit, k.Cancel, k.Interrupt}
	}
}
