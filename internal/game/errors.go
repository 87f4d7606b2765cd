package game

import "errors"

var (
	ErrRosterFull       = errors.New("roster is full")
	ErrDuplicateName    = errors.New("player name already taken")
	ErrEmptyName        = errors.New("player name is empty")
	ErrNameTooLong      = errors.New("player name is too long")
	ErrIncompleteRoster = errors.New("a round needs four players")
	ErrNoOpenRound      = errors.New("no round in progress")
	ErrNoFoxLeft        = errors.New("both foxes already caught")
	ErrUnknownPlayer    = errors.New("unknown player")
	ErrPlayerDone       = errors.New("player already finished this round")
)
