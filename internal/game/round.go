package game

import "fmt"

// PlayerRoundInfo is what one player declared during a round.
type PlayerRoundInfo struct {
	Player         Token
	Won            bool
	Contra         bool
	Bids           int
	ExAnte         int
	FoxEvents      [2]Token
	Doppelkopf     int
	Karlchen       bool
	KarlchenCaught bool
	Teammate       Token
	RoundScore     int
	Done           bool
}

// Round is the open round. PerPlayer is indexed by seat.
type Round struct {
	Index     int
	PerPlayer [MaxPlayers]PlayerRoundInfo
	noFox     [2]Token
}

func newRound(index int, players []*Player, tokens TokenSource) *Round {
	r := &Round{Index: index}
	taken := make(map[Token]bool, len(players)+2)
	taken[""] = true
	for _, p := range players {
		taken[p.ID] = true
	}
	for i := range r.noFox {
		t := tokens.NewToken()
		for taken[t] {
			t = tokens.NewToken()
		}
		taken[t] = true
		r.noFox[i] = t
	}
	for seat, p := range players {
		r.PerPlayer[seat] = PlayerRoundInfo{Player: p.ID, FoxEvents: r.noFox}
	}
	return r
}

func (r *Round) info(id Token) (*PlayerRoundInfo, error) {
	for i := range r.PerPlayer {
		if r.PerPlayer[i].Player == id && id != "" {
			return &r.PerPlayer[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
}

// Info returns a copy of what player id has declared so far.
func (r *Round) Info(id Token) (PlayerRoundInfo, error) {
	info, err := r.info(id)
	if err != nil {
		return PlayerRoundInfo{}, err
	}
	return *info, nil
}

// FoxCatchers lists the players recorded as having caught a fox.
func (r *Round) FoxCatchers() []Token {
	var out []Token
	for i, t := range r.PerPlayer[0].FoxEvents {
		if t != r.noFox[i] {
			out = append(out, t)
		}
	}
	return out
}

// Complete reports whether every seat has finished declaring.
func (r *Round) Complete() bool {
	for _, info := range r.PerPlayer {
		if !info.Done {
			return false
		}
	}
	return true
}

// Apply records ev against player id. A player who declared Done is locked
// for the rest of the round.
func (r *Round) Apply(id Token, ev Event) error {
	info, err := r.info(id)
	if err != nil {
		return err
	}
	if info.Done {
		return fmt.Errorf("%w: %s", ErrPlayerDone, id)
	}
	switch ev.Kind {
	case EventWon:
		info.Won = true
	case EventLost:
		info.Won = false
	case EventContra:
		info.Contra = true
	case EventBid:
		info.Bids++
	case EventExAnte:
		info.ExAnte++
	case EventDoppelkopf:
		info.Doppelkopf++
	case EventKarlchen:
		info.Karlchen = true
	case EventKarlchenCaught:
		info.KarlchenCaught = true
	case EventFoxCaught:
		return r.foxCaught(id)
	case EventTeammate:
		return r.pair(id, ev.Partner)
	case EventDone:
		info.Done = true
	default:
		return fmt.Errorf("unknown event kind %d", ev.Kind)
	}
	return nil
}

// foxCaught writes catcher into the next free fox slot of every seat.
func (r *Round) foxCaught(catcher Token) error {
	for slot := range r.noFox {
		if r.PerPlayer[0].FoxEvents[slot] != r.noFox[slot] {
			continue
		}
		for i := range r.PerPlayer {
			r.PerPlayer[i].FoxEvents[slot] = catcher
		}
		return nil
	}
	return ErrNoFoxLeft
}

func (r *Round) pair(a, b Token) error {
	if a == b {
		return fmt.Errorf("%w: a player cannot partner themselves", ErrUnknownPlayer)
	}
	ia, err := r.info(a)
	if err != nil {
		return err
	}
	ib, err := r.info(b)
	if err != nil {
		return err
	}
	var stale []*PlayerRoundInfo
	for _, prev := range []Token{ia.Teammate, ib.Teammate} {
		if prev == "" || prev == a || prev == b {
			continue
		}
		if ip, err := r.info(prev); err == nil && (ip.Teammate == a || ip.Teammate == b) {
			stale = append(stale, ip)
		}
	}
	for _, info := range append([]*PlayerRoundInfo{ib}, stale...) {
		if info.Done {
			return fmt.Errorf("%w: %s", ErrPlayerDone, info.Player)
		}
	}
	for _, ip := range stale {
		ip.Teammate = ""
	}
	ia.Teammate, ib.Teammate = b, a
	return nil
}
