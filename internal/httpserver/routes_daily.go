// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily board.
// Exposes two endpoints under /daily:
//   - GET /daily/board       → today's board (same for every player)
//   - GET /daily/leaderboard → top 20 results for today (or ?date=YYYY-MM-DD)
//
// Daily rounds themselves are started with POST /game/new {"daily":true};
// a session may record one daily result per date.

package httpserver

import (
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/boggle/internal/daily"
	"github.com/robalobadob/boggle/internal/game"
)

const leaderboardSize = 20

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/board", s.handleDailyBoard)
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

// dailyBoard returns the date key and deterministic board for now.
func (s *Server) dailyBoard(now time.Time) (string, game.Grid, error) {
	seed1, seed2 := daily.Seed(now, s.cfg.DailySalt)
	board, err := game.NewBoard(s.cfg.BoardSize, rand.New(rand.NewPCG(seed1, seed2)))
	return daily.DateKey(now), board, err
}

type dailyBoardRes struct {
	Date  string    `json:"date"`
	Board game.Grid `json:"board"`
}

func (s *Server) handleDailyBoard(w http.ResponseWriter, r *http.Request) {
	date, board, err := s.dailyBoard(s.now())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("daily board")
		writeError(w, http.StatusInternalServerError, "board_failed")
		return
	}
	writeJSON(w, http.StatusOK, dailyBoardRes{Date: date, Board: board})
}

type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(s.now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}
	rows, err := s.daily.Leaderboard(r.Context(), date, leaderboardSize)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
