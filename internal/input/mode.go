package input

import "fmt"

// Mode is the active interaction mode.
type Mode int

const (
	ModeAddPlayer Mode = iota
	ModeBrowse
	ModeSelectPlayer
	ModeSelectGameEvent
)

func (m Mode) String() string {
	switch m {
	case ModeAddPlayer:
		return "add player"
	case ModeBrowse:
		return "browse"
	case ModeSelectPlayer:
		return "select player"
	case ModeSelectGameEvent:
		return "select event"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Browse menu entries.
const (
	MenuStartRound = "Start round"
	MenuAddPlayer  = "Add player"
	MenuQuit       = "Quit"
)

func menuItems() []string {
	return []string{MenuStartRound, MenuAddPlayer, MenuQuit}
}
