package daily

import (
	"context"
	"database/sql"
)

type Result struct {
	SessionID string `json:"-"`
	Date      string `json:"date"`
	Score     int    `json:"score"`
	Words     int    `json:"words"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) AlreadyPlayed(ctx context.Context, sessionID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE session_id=? AND date=?",
		sessionID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult stores r. A second result for the same session and date is ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(session_id, date, score, words)
		VALUES(?,?,?,?)`, r.SessionID, r.Date, r.Score, r.Words,
	)
	return err
}

type LBRow struct {
	Rank  int `json:"rank"`
	Score int `json:"score"`
	Words int `json:"words"`
}

// Leaderboard returns the best results for date: highest score first, ties by earliest finish.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT score, words
		FROM daily_results
		WHERE date=?
		ORDER BY score DESC, created_at ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]LBRow, 0, limit)
	for rows.Next() {
		r := LBRow{Rank: len(out) + 1}
		if err := rows.Scan(&r.Score, &r.Words); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
