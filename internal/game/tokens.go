package game

import (
	"strconv"

	"github.com/google/uuid"
)

// Token identifies a player, or stands in for "nobody" in a fox slot.
type Token string

// TokenSource hands out identity tokens. Two calls must never return the same
// value.
type TokenSource interface {
	NewToken() Token
}

// UUIDTokens issues random version 4 UUIDs.
type UUIDTokens struct{}

func (UUIDTokens) NewToken() Token { return Token(uuid.NewString()) }

// SequenceTokens issues tokens derived from a fixed namespace and a counter.
// Tests use it for reproducible identities.
type SequenceTokens struct {
	Namespace string
	n         int
}

func (s *SequenceTokens) NewToken() Token {
	s.n++
	return Token(uuid.NewSHA1(uuid.NameSpaceOID, []byte(s.Namespace+":"+strconv.Itoa(s.n))).String())
}
