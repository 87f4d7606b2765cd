package game

import (
	"fmt"

	"github.com/jask/doko/internal/selectlist"
)

// Session owns the roster and the open round.
type Session struct {
	roster *Roster
	tokens TokenSource
	policy Policy
	round  *Round
	played int
}

// Options configure a Session. Zero values fall back to UUID tokens, the
// default rules and no name length limit.
type Options struct {
	Tokens        TokenSource
	Policy        Policy
	MaxNameLength int
}

func NewSession(opts Options) *Session {
	if opts.Tokens == nil {
		opts.Tokens = UUIDTokens{}
	}
	if opts.Policy == nil {
		opts.Policy = StandardPolicy(DefaultRules())
	}
	return &Session{
		roster: NewRoster(opts.MaxNameLength),
		tokens: opts.Tokens,
		policy: opts.Policy,
	}
}

// AddPlayer seats a new player with zero scores.
func (s *Session) AddPlayer(name string) (Player, error) {
	p, err := s.roster.add(s.tokens.NewToken(), name)
	if err != nil {
		return Player{}, err
	}
	return *p, nil
}

func (s *Session) Players() []Player { return s.roster.Players() }

func (s *Session) RosterFull() bool { return s.roster.Full() }

// SimilarName reports an already seated name that is one edit away from name.
func (s *Session) SimilarName(name string) (string, bool) { return s.roster.Similar(name) }

// PlayerByName resolves a seated player by exact name.
func (s *Session) PlayerByName(name string) (Player, error) {
	p, ok := s.roster.ByName(name)
	if !ok {
		return Player{}, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	return *p, nil
}

// PlayerListView derives a fresh selectable list of names in seat order.
func (s *Session) PlayerListView() *selectlist.List[string] {
	return selectlist.WithItems(s.roster.Names())
}

// RoundsPlayed is the number of committed rounds.
func (s *Session) RoundsPlayed() int { return s.played }

// OpenRound returns the round in progress, if any.
func (s *Session) OpenRound() (*Round, bool) {
	return s.round, s.round != nil
}

// StartRound opens a new round, or returns the one already in progress.
func (s *Session) StartRound() (*Round, error) {
	if s.roster.Len() < MaxPlayers {
		return nil, ErrIncompleteRoster
	}
	if s.round == nil {
		s.round = newRound(s.played+1, s.roster.players, s.tokens)
	}
	return s.round, nil
}

// Declare records ev for player id in the open round.
func (s *Session) Declare(id Token, ev Event) error {
	if s.round == nil {
		return ErrNoOpenRound
	}
	return s.round.Apply(id, ev)
}

// EventOptions lists what player id may declare in the open round.
func (s *Session) EventOptions(id Token) []EventOption {
	return EventOptions(s.roster.Players(), id)
}

// RoundResult is a committed round.
type RoundResult struct {
	Index   int
	Players []Player
	Infos   [MaxPlayers]PlayerRoundInfo
}

// Deltas returns the round score per seat.
func (r RoundResult) Deltas() []int {
	out := make([]int, 0, len(r.Players))
	for i := range r.Players {
		out = append(out, r.Infos[i].RoundScore)
	}
	return out
}

// CommitRound scores the open round, folds each delta into the players'
// history and closes the round.
func (s *Session) CommitRound() (RoundResult, error) {
	if s.roster.Len() < MaxPlayers {
		return RoundResult{}, ErrIncompleteRoster
	}
	if s.round == nil {
		return RoundResult{}, ErrNoOpenRound
	}
	r := s.round
	for seat, p := range s.roster.players {
		info := &r.PerPlayer[seat]
		info.RoundScore = s.policy(*info)
		p.record(info.RoundScore)
	}
	s.round = nil
	s.played++
	return RoundResult{Index: r.Index, Players: s.roster.Players(), Infos: r.PerPlayer}, nil
}
