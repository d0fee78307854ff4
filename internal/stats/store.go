// internal/stats/store.go
//
// Per-session game statistics: games played and high score.
// Backed by the session_stats table; a session without a row has zero stats.

package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Stats is the running record for one session.
type Stats struct {
	SessionID   string `json:"-"`
	GamesPlayed int    `json:"gamesPlayed"`
	HighScore   int    `json:"highScore"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Get loads the stats for sessionID, returning zero stats if none are stored.
func (s *Store) Get(ctx context.Context, sessionID string) (Stats, error) {
	st := Stats{SessionID: sessionID}
	err := s.db.QueryRowContext(ctx,
		`SELECT games_played, high_score FROM session_stats WHERE session_id=?`, sessionID,
	).Scan(&st.GamesPlayed, &st.HighScore)
	if errors.Is(err, sql.ErrNoRows) {
		return st, nil
	}
	return st, err
}

// RecordGame counts a finished game for sessionID and raises the high score
// if score is strictly greater than the stored one.
// Returns the updated stats and whether score set a new high score.
func (s *Store) RecordGame(ctx context.Context, sessionID string, score int) (Stats, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, false, err
	}
	defer func() { _ = tx.Rollback() }()

	st := Stats{SessionID: sessionID}
	err = tx.QueryRowContext(ctx,
		`SELECT games_played, high_score FROM session_stats WHERE session_id=?`, sessionID,
	).Scan(&st.GamesPlayed, &st.HighScore)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Stats{}, false, fmt.Errorf("load stats: %w", err)
	}

	st.GamesPlayed++
	newHigh := score > st.HighScore
	if newHigh {
		st.HighScore = score
	}

	_, err = tx.ExecContext(ctx, `
        INSERT INTO session_stats (session_id, games_played, high_score, updated_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(session_id) DO UPDATE SET
            games_played = excluded.games_played,
            high_score   = excluded.high_score,
            updated_at   = excluded.updated_at`,
		sessionID, st.GamesPlayed, st.HighScore, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return Stats{}, false, fmt.Errorf("save stats: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Stats{}, false, err
	}
	return st, newHigh, nil
}
