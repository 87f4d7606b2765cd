package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, names ...string) *Session {
	t.Helper()
	s := NewSession(Options{Tokens: &SequenceTokens{Namespace: t.Name()}, MaxNameLength: 12})
	for _, n := range names {
		_, err := s.AddPlayer(n)
		require.NoError(t, err)
	}
	return s
}

func TestAddPlayerValidation(t *testing.T) {
	s := newTestSession(t, "Anna")

	_, err := s.AddPlayer("   ")
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = s.AddPlayer("Anna")
	require.ErrorIs(t, err, ErrDuplicateName)

	_, err = s.AddPlayer(" Anna ")
	require.ErrorIs(t, err, ErrDuplicateName)

	_, err = s.AddPlayer("Maximilianus Secundus")
	require.ErrorIs(t, err, ErrNameTooLong)

	p, err := s.AddPlayer("Ben")
	require.NoError(t, err)
	require.Equal(t, "Ben", p.Name)
	require.Zero(t, p.TotalScore)
	require.Empty(t, p.PastScores)
	require.NotEmpty(t, p.ID)
}

func TestAddPlayerRosterFullLeavesRosterUnchanged(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben", "Cleo", "Dora")
	before := s.Players()

	_, err := s.AddPlayer("Emil")
	require.ErrorIs(t, err, ErrRosterFull)
	require.Equal(t, before, s.Players())

	// Full is checked before the name.
	_, err = s.AddPlayer("")
	require.ErrorIs(t, err, ErrRosterFull)
}

func TestSimilarName(t *testing.T) {
	s := newTestSession(t, "Jonas")
	got, ok := s.SimilarName("jonah")
	require.True(t, ok)
	require.Equal(t, "Jonas", got)

	_, ok = s.SimilarName("Jonas")
	require.False(t, ok)
	_, ok = s.SimilarName("Pia")
	require.False(t, ok)
}

func TestPlayerListViewFollowsRoster(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben")
	view := s.PlayerListView()
	require.Equal(t, []string{"Anna", "Ben"}, view.Items())
	_, ok := view.Selected()
	require.False(t, ok)

	_, err := s.AddPlayer("Cleo")
	require.NoError(t, err)
	require.Equal(t, []string{"Anna", "Ben", "Cleo"}, s.PlayerListView().Items())
}

func TestStartRoundNeedsFourPlayers(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben", "Cleo")
	_, err := s.StartRound()
	require.ErrorIs(t, err, ErrIncompleteRoster)

	_, err = s.CommitRound()
	require.ErrorIs(t, err, ErrIncompleteRoster)
}

func TestStartRoundResumesOpenRound(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben", "Cleo", "Dora")
	r1, err := s.StartRound()
	require.NoError(t, err)
	r2, err := s.StartRound()
	require.NoError(t, err)
	require.Same(t, r1, r2)
	require.Equal(t, 1, r1.Index)
}

func TestNewRoundFoxSlotsNeverMatchPlayers(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben", "Cleo", "Dora")
	r, err := s.StartRound()
	require.NoError(t, err)

	ids := map[Token]bool{}
	for _, p := range s.Players() {
		ids[p.ID] = true
	}
	for _, info := range r.PerPlayer {
		require.NotEqual(t, info.FoxEvents[0], info.FoxEvents[1])
		for _, tok := range info.FoxEvents {
			require.False(t, ids[tok], "fox slot %s collides with a player", tok)
			require.NotEmpty(t, tok)
		}
	}
	require.Empty(t, r.FoxCatchers())
}

type repeatingTokens struct {
	queue []Token
}

func (r *repeatingTokens) NewToken() Token {
	t := r.queue[0]
	r.queue = r.queue[1:]
	return t
}

func TestNewRoundRegeneratesCollidingTokens(t *testing.T) {
	players := []*Player{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	src := &repeatingTokens{queue: []Token{"a", "x", "x", "b", "y"}}
	r := newRound(1, players, src)
	require.Equal(t, [2]Token{"x", "y"}, r.noFox)
}

func TestFoxCaughtFillsSlotsInOrder(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben", "Cleo", "Dora")
	_, err := s.StartRound()
	require.NoError(t, err)
	players := s.Players()

	require.NoError(t, s.Declare(players[1].ID, Event{Kind: EventFoxCaught}))
	require.NoError(t, s.Declare(players[2].ID, Event{Kind: EventFoxCaught}))
	err = s.Declare(players[3].ID, Event{Kind: EventFoxCaught})
	require.ErrorIs(t, err, ErrNoFoxLeft)

	r, _ := s.OpenRound()
	require.Equal(t, []Token{players[1].ID, players[2].ID}, r.FoxCatchers())
	for _, info := range r.PerPlayer {
		require.Equal(t, [2]Token{players[1].ID, players[2].ID}, info.FoxEvents)
	}
}

func TestTeammateIsSymmetricAndReplacesOldPair(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben", "Cleo", "Dora")
	r, err := s.StartRound()
	require.NoError(t, err)
	p := s.Players()

	require.NoError(t, s.Declare(p[0].ID, Event{Kind: EventTeammate, Partner: p[1].ID}))
	a, _ := r.Info(p[0].ID)
	b, _ := r.Info(p[1].ID)
	require.Equal(t, p[1].ID, a.Teammate)
	require.Equal(t, p[0].ID, b.Teammate)

	require.NoError(t, s.Declare(p[0].ID, Event{Kind: EventTeammate, Partner: p[2].ID}))
	b, _ = r.Info(p[1].ID)
	c, _ := r.Info(p[2].ID)
	require.Empty(t, b.Teammate)
	require.Equal(t, p[0].ID, c.Teammate)

	err = s.Declare(p[0].ID, Event{Kind: EventTeammate, Partner: p[0].ID})
	require.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestDeclareWithoutRound(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben", "Cleo", "Dora")
	err := s.Declare(s.Players()[0].ID, Event{Kind: EventWon})
	require.ErrorIs(t, err, ErrNoOpenRound)

	_, err = s.CommitRound()
	require.ErrorIs(t, err, ErrNoOpenRound)
}

func TestCommitRoundUpdatesTotals(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben", "Cleo", "Dora")
	p := s.Players()

	for round := 1; round <= 2; round++ {
		_, err := s.StartRound()
		require.NoError(t, err)
		require.NoError(t, s.Declare(p[0].ID, Event{Kind: EventWon}))
		require.NoError(t, s.Declare(p[0].ID, Event{Kind: EventBid}))
		require.NoError(t, s.Declare(p[0].ID, Event{Kind: EventTeammate, Partner: p[1].ID}))
		require.NoError(t, s.Declare(p[1].ID, Event{Kind: EventWon}))
		require.NoError(t, s.Declare(p[0].ID, Event{Kind: EventFoxCaught}))
		require.NoError(t, s.Declare(p[2].ID, Event{Kind: EventDoppelkopf}))

		before := s.RoundsPlayed()
		res, err := s.CommitRound()
		require.NoError(t, err)
		require.Equal(t, before+1, s.RoundsPlayed())
		require.Equal(t, round, res.Index)
		// Anna: +1 win +1 bid. Ben: +1 win +1 fox caught by teammate Anna.
		// Cleo: -1 loss +1 doppelkopf. Dora: -1 loss.
		require.Equal(t, []int{2, 2, 0, -1}, res.Deltas())
	}

	for _, pl := range s.Players() {
		sum := 0
		for _, v := range pl.PastScores {
			sum += v
		}
		require.Len(t, pl.PastScores, 2)
		require.Equal(t, sum, pl.TotalScore)
	}
	_, open := s.OpenRound()
	require.False(t, open)
}

func TestCustomPolicyIsUsed(t *testing.T) {
	s := NewSession(Options{
		Tokens: &SequenceTokens{Namespace: "custom"},
		Policy: func(PlayerRoundInfo) int { return 7 },
	})
	for _, n := range []string{"A", "B", "C", "D"} {
		_, err := s.AddPlayer(n)
		require.NoError(t, err)
	}
	_, err := s.StartRound()
	require.NoError(t, err)
	res, err := s.CommitRound()
	require.NoError(t, err)
	require.Equal(t, []int{7, 7, 7, 7}, res.Deltas())
}

func TestEventOptionsResolve(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben", "Cleo", "Dora")
	p := s.Players()
	opts := s.EventOptions(p[0].ID)
	labels := Labels(opts)
	require.Contains(t, labels, "Teammate: Ben")
	require.NotContains(t, labels, "Teammate: Anna")
	require.Equal(t, "Done", labels[len(labels)-1])

	ev, ok := ResolveEvent(opts, "Teammate: Cleo")
	require.True(t, ok)
	require.Equal(t, Event{Kind: EventTeammate, Partner: p[2].ID}, ev)

	_, ok = ResolveEvent(opts, "Schweinchen")
	require.False(t, ok)
}

func TestApplyUnknownPlayer(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben", "Cleo", "Dora")
	_, err := s.StartRound()
	require.NoError(t, err)
	err = s.Declare("ghost", Event{Kind: EventWon})
	if !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("err = %v, want ErrUnknownPlayer", err)
	}
}

func TestRoundCompleteAfterAllDone(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben", "Cleo", "Dora")
	r, err := s.StartRound()
	require.NoError(t, err)
	for i, p := range s.Players() {
		require.False(t, r.Complete(), "complete after %d players", i)
		require.NoError(t, s.Declare(p.ID, Event{Kind: EventDone}))
	}
	require.True(t, r.Complete())
}

func TestDoneLocksPlayer(t *testing.T) {
	s := newTestSession(t, "Anna", "Ben", "Cleo", "Dora")
	r, err := s.StartRound()
	require.NoError(t, err)
	p := s.Players()

	require.NoError(t, s.Declare(p[0].ID, Event{Kind: EventTeammate, Partner: p[1].ID}))
	require.NoError(t, s.Declare(p[1].ID, Event{Kind: EventDone}))

	for _, ev := range []Event{{Kind: EventWon}, {Kind: EventBid}, {Kind: EventFoxCaught}, {Kind: EventDone}} {
		err := s.Declare(p[1].ID, ev)
		require.ErrorIs(t, err, ErrPlayerDone, "event %s", ev.Kind)
	}
	info, _ := r.Info(p[1].ID)
	require.False(t, info.Won)
	require.Zero(t, info.Bids)
	require.Empty(t, r.FoxCatchers())

	// Pairing with, or away from, a finished player is refused as well.
	require.ErrorIs(t, s.Declare(p[2].ID, Event{Kind: EventTeammate, Partner: p[1].ID}), ErrPlayerDone)
	require.ErrorIs(t, s.Declare(p[0].ID, Event{Kind: EventTeammate, Partner: p[2].ID}), ErrPlayerDone)
	a, _ := r.Info(p[0].ID)
	b, _ := r.Info(p[1].ID)
	require.Equal(t, p[1].ID, a.Teammate)
	require.Equal(t, p[0].ID, b.Teammate)

	require.NoError(t, s.Declare(p[0].ID, Event{Kind: EventWon}))
}
