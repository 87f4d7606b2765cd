package repository

import "time"

// Round is a committed round row with its per-seat scores.
type Round struct {
	ID          string
	Index       int
	CommittedAt time.Time
	Scores      []RoundScore
}

// RoundScore is one seat's declarations and result for a round.
type RoundScore struct {
	Seat           int
	PlayerID       string
	PlayerName     string
	Delta          int
	Total          int
	Won            bool
	Contra         bool
	Bids           int
	ExAnte         int
	Doppelkopf     int
	Karlchen       bool
	KarlchenCaught bool
	FoxesCaught    int
	Teammate       string
}
