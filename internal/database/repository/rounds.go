package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/doko/internal/database"
)

// RoundRepo keeps the ledger of committed rounds.
type RoundRepo struct {
	db *sql.DB
}

func NewRoundRepo(db *sql.DB) *RoundRepo { return &RoundRepo{db: db} }

// Insert stores a round and its scores atomically.
func (r *RoundRepo) Insert(ctx context.Context, rd Round) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return insertRound(ctx, tx, rd)
	})
}

func insertRound(ctx context.Context, tx *sql.Tx, rd Round) error {
	if _, err := tx.ExecContext(ctx, `
	INSERT INTO rounds(id, idx, committed_at) VALUES (?, ?, ?);
	`, rd.ID, rd.Index, rd.CommittedAt); err != nil {
		return fmt.Errorf("insert round %d: %w", rd.Index, err)
	}
	for _, s := range rd.Scores {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO round_scores(
		 round_id, seat, player_id, player_name, delta, total, won, contra, bids, ex_ante,
		 doppelkopf, karlchen, karlchen_caught, foxes_caught, teammate)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
		`,
			rd.ID, s.Seat, s.PlayerID, s.PlayerName, s.Delta, s.Total, s.Won, s.Contra, s.Bids, s.ExAnte,
			s.Doppelkopf, s.Karlchen, s.KarlchenCaught, s.FoxesCaught, s.Teammate)
		if err != nil {
			return fmt.Errorf("insert score round %d seat %d: %w", rd.Index, s.Seat, err)
		}
	}
	return nil
}

// List returns all rounds ordered by index, scores in seat order.
func (r *RoundRepo) List(ctx context.Context) ([]Round, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT r.id, r.idx, r.committed_at,
	       s.seat, s.player_id, s.player_name, s.delta, s.total, s.won, s.contra, s.bids, s.ex_ante,
	       s.doppelkopf, s.karlchen, s.karlchen_caught, s.foxes_caught, s.teammate
	FROM rounds r
	JOIN round_scores s ON s.round_id = r.id
	ORDER BY r.idx, s.seat`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Round
	for rows.Next() {
		var (
			rd Round
			s  RoundScore
		)
		if err := rows.Scan(&rd.ID, &rd.Index, &rd.CommittedAt,
			&s.Seat, &s.PlayerID, &s.PlayerName, &s.Delta, &s.Total, &s.Won, &s.Contra, &s.Bids, &s.ExAnte,
			&s.Doppelkopf, &s.Karlchen, &s.KarlchenCaught, &s.FoxesCaught, &s.Teammate); err != nil {
			return nil, err
		}
		if n := len(out); n == 0 || out[n-1].ID != rd.ID {
			out = append(out, rd)
		}
		last := &out[len(out)-1]
		last.Scores = append(last.Scores, s)
	}
	return out, rows.Err()
}
