package game

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxPlayers is the table size.
const MaxPlayers = 4

// Player is one seat at the table.
type Player struct {
	ID         Token
	Name       string
	TotalScore int
	PastScores []int
}

func (p *Player) record(delta int) {
	p.PastScores = append(p.PastScores, delta)
	total := 0
	for _, s := range p.PastScores {
		total += s
	}
	p.TotalScore = total
}

// LastScore returns the most recent round delta.
func (p Player) LastScore() (int, bool) {
	if len(p.PastScores) == 0 {
		return 0, false
	}
	return p.PastScores[len(p.PastScores)-1], true
}

// Roster is the ordered set of seated players.
type Roster struct {
	players []*Player
	maxName int
}

// NewRoster returns an empty roster. maxName <= 0 disables the length check.
func NewRoster(maxName int) *Roster {
	return &Roster{maxName: maxName}
}

func (r *Roster) Len() int { return len(r.players) }

func (r *Roster) Full() bool { return len(r.players) >= MaxPlayers }

// Players returns copies of the seated players in seat order.
func (r *Roster) Players() []Player {
	out := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		cp := *p
		cp.PastScores = append([]int(nil), p.PastScores...)
		out = append(out, cp)
	}
	return out
}

// Names returns player names in seat order.
func (r *Roster) Names() []string {
	out := make([]string, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p.Name)
	}
	return out
}

func (r *Roster) ByName(name string) (*Player, bool) {
	for _, p := range r.players {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

func (r *Roster) validate(name string) error {
	if r.Full() {
		return ErrRosterFull
	}
	if name == "" {
		return ErrEmptyName
	}
	if r.maxName > 0 && len([]rune(name)) > r.maxName {
		return ErrNameTooLong
	}
	if _, ok := r.ByName(name); ok {
		return ErrDuplicateName
	}
	return nil
}

func (r *Roster) add(id Token, name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if err := r.validate(name); err != nil {
		return nil, err
	}
	p := &Player{ID: id, Name: name}
	r.players = append(r.players, p)
	return p, nil
}

// Similar reports a seated name within one edit of name, ignoring case.
// Exact matches are not reported; those are rejected as duplicates.
func (r *Roster) Similar(name string) (string, bool) {
	name = strings.TrimSpace(name)
	want := strings.ToLower(name)
	if want == "" {
		return "", false
	}
	for _, p := range r.players {
		if p.Name == name {
			continue
		}
		if levenshtein.ComputeDistance(want, strings.ToLower(p.Name)) <= 1 {
			return p.Name, true
		}
	}
	return "", false
}
