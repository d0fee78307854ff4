// internal/httpserver/server.go
//
// HTTP server wiring for the Boggle backend.
// Responsibilities:
//   - Router + middleware (request IDs, access log, CORS, timeouts, panic recovery, sessions).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /guess, POST /game/end.
//   - Stats endpoints: POST /game-stats, GET /stats/me.
//   - Daily board endpoints: mounted under /daily.
//
// Notes:
//   - Rounds live in the in-memory store until finished; stats and daily
//     results are persisted in SQLite.
//   - Guesses are trimmed here; the engine receives them otherwise untouched.

package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/gorilla/schema"
	"github.com/rs/cors"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/internal/config"
	"github.com/robalobadob/boggle/internal/daily"
	"github.com/robalobadob/boggle/internal/game"
	"github.com/robalobadob/boggle/internal/stats"
	"github.com/robalobadob/boggle/internal/store"
	"github.com/robalobadob/boggle/internal/words"
)

// Deps are the collaborators a Server is built from.
type Deps struct {
	Rounds store.Store       // in-flight rounds
	Dict   *words.Dictionary // shared read-only dictionary
	DB     *sql.DB           // migrated SQLite handle
	Now    func() time.Time  // clock; defaults to time.Now in UTC
}

// Server bundles router, round store, validator and persistent stores.
type Server struct {
	r      *chi.Mux
	cfg    config.Config
	rounds store.Store
	dict   *words.Dictionary
	check  *game.Validator
	stats  *stats.Store
	daily  *daily.Store
	query  *schema.Decoder
	now    func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, d Deps) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		cfg:    cfg,
		rounds: d.Rounds,
		dict:   d.Dict,
		stats:  stats.NewStore(d.DB),
		daily:  daily.NewStore(d.DB),
		query:  schema.NewDecoder(),
		now:    d.Now,
	}
	if s.now == nil {
		s.now = nowUTC
	}
	// A nil *words.Dictionary must reach the validator as a nil interface.
	if d.Dict != nil {
		s.check = game.NewValidator(d.Dict)
	} else {
		s.check = game.NewValidator(nil)
	}
	s.query.IgnoreUnknownKeys(true)

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(hlog.AccessHandler(accessLog))
	s.r.Use(chimw.Recoverer)
	if cfg.RequestTimeout > 0 {
		s.r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	s.r.Use(jsonContentType)
	s.r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.ClientOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "boggle-go",
			"endpoints": []string{
				"/health", "POST /game/new", "POST /game/guess", "GET /guess",
				"POST /game/end", "POST /game-stats", "/stats/me", "/daily/*",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.dict.Len()})
	})

	// Everything a player touches runs inside a session.
	s.r.Group(func(r chi.Router) {
		r.Use(s.withSession)
		r.Post("/game/new", s.handleNewGame)
		r.Post("/game/guess", s.handleGuess)
		r.Get("/guess", s.handleGuessQuery)
		r.Post("/game/end", s.handleEndGame)
		r.Post("/game-stats", s.handleGameStats)
		r.Get("/stats/me", s.handleStatsMe)
		s.mountDaily(r)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("reqId", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}

// ------------------------------ GAME ---------------------------------------

type newGameReq struct {
	Daily bool `json:"daily"`
}
type newGameRes struct {
	GameID      string    `json:"gameId"`
	Board       game.Grid `json:"board"`
	Date        string    `json:"date,omitempty"`
	HighScore   int       `json:"highScore"`
	GamesPlayed int       `json:"gamesPlayed"`
}

// handleNewGame deals a fresh board (random, or today's daily board) and
// stores the round for the caller's session.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body means a regular game.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}

	sid := sessionID(r)
	var (
		board game.Grid
		date  string
		err   error
	)
	if req.Daily {
		date, board, err = s.dailyBoard(s.now())
		if err == nil {
			played, perr := s.daily.AlreadyPlayed(r.Context(), sid, date)
			if perr != nil {
				hlog.FromRequest(r).Warn().Err(perr).Msg("daily already played")
			} else if played {
				writeError(w, http.StatusConflict, "already_played")
				return
			}
		}
	} else {
		board, err = game.NewBoard(s.cfg.BoardSize, nil)
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("new board")
		writeError(w, http.StatusInternalServerError, "board_failed")
		return
	}

	round := game.NewRound(sid, board)
	round.Daily = date
	if err := s.rounds.Save(r.Context(), round); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	st, err := s.stats.Get(r.Context(), sid)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("load stats")
	}
	writeJSON(w, http.StatusOK, newGameRes{
		GameID:      round.ID,
		Board:       board,
		Date:        date,
		HighScore:   st.HighScore,
		GamesPlayed: st.GamesPlayed,
	})
}

type guessReq struct {
	GameID string `json:"gameId" schema:"gameId"`
	Guess  string `json:"guess" schema:"guess"`
}
type guessRes struct {
	Result game.Result `json:"result"`
	Points int         `json:"points"`
	Score  int         `json:"score"`
}

// handleGuess classifies a JSON-posted guess.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	s.guess(w, r, req)
}

// handleGuessQuery classifies a guess passed as ?gameId=&guess=.
func (s *Server) handleGuessQuery(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := s.query.Decode(&req, r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	s.guess(w, r, req)
}

func (s *Server) guess(w http.ResponseWriter, r *http.Request, req guessReq) {
	round, ok := s.ownedRound(w, r, req.GameID)
	if !ok {
		return
	}
	res, pts, err := round.ApplyGuess(s.check, strings.TrimSpace(req.Guess))
	switch {
	case errors.Is(err, game.ErrRoundFinished):
		writeError(w, http.StatusConflict, "round_finished")
		return
	case errors.Is(err, game.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Str("gameId", round.ID).Msg("check guess")
		writeError(w, http.StatusInternalServerError, "engine_error")
		return
	}
	writeJSON(w, http.StatusOK, guessRes{Result: res, Points: pts, Score: round.Score()})
}

type endGameReq struct {
	GameID string `json:"gameId"`
}
type endGameRes struct {
	Score        int      `json:"score"`
	Words        []string `json:"words"`
	NewHighScore bool     `json:"newHighScore"`
	HighScore    int      `json:"highScore"`
	GamesPlayed  int      `json:"gamesPlayed"`
}

// handleEndGame finishes a round, folds its score into the session stats,
// records the daily result for daily rounds, and drops the round.
// The round stays open if the stats write fails, so the client can retry.
func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request) {
	var req endGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	round, ok := s.ownedRound(w, r, req.GameID)
	if !ok {
		return
	}
	var (
		st      stats.Stats
		newHigh bool
		found   []string
	)
	score, err := round.FinishWith(func(score int, ws []string) error {
		var err error
		st, newHigh, err = s.stats.RecordGame(r.Context(), round.SessionID, score)
		found = ws
		return err
	})
	switch {
	case errors.Is(err, game.ErrRoundFinished):
		writeError(w, http.StatusConflict, "round_finished")
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Str("gameId", round.ID).Msg("record game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	if round.Daily != "" {
		if err := s.daily.InsertResult(r.Context(), daily.Result{
			SessionID: round.SessionID, Date: round.Daily, Score: score, Words: len(found),
		}); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Str("date", round.Daily).Msg("insert daily result")
		}
	}
	if err := s.rounds.Delete(r.Context(), round.ID); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("gameId", round.ID).Msg("delete round")
	}

	writeJSON(w, http.StatusOK, endGameRes{
		Score:        score,
		Words:        found,
		NewHighScore: newHigh,
		HighScore:    st.HighScore,
		GamesPlayed:  st.GamesPlayed,
	})
}

// ownedRound loads gameID and checks it belongs to the caller's session.
// Writes a 404 and returns false otherwise.
func (s *Server) ownedRound(w http.ResponseWriter, r *http.Request, gameID string) (*game.Round, bool) {
	round, err := s.rounds.Get(r.Context(), gameID)
	if err != nil || round.SessionID != sessionID(r) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return round, true
}

// ------------------------------ STATS --------------------------------------

type gameStatsReq struct {
	Score *int `json:"score"`
}
type gameStatsRes struct {
	NewHighScore bool `json:"newHighScore"`
	HighScore    int  `json:"highScore"`
	GamesPlayed  int  `json:"gamesPlayed"`
}

// handleGameStats records a game scored by the client.
func (s *Server) handleGameStats(w http.ResponseWriter, r *http.Request) {
	var req gameStatsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Score == nil || *req.Score < 0 {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	st, newHigh, err := s.stats.RecordGame(r.Context(), sessionID(r), *req.Score)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("record game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, gameStatsRes{NewHighScore: newHigh, HighScore: st.HighScore, GamesPlayed: st.GamesPlayed})
}

func (s *Server) handleStatsMe(w http.ResponseWriter, r *http.Request) {
	st, err := s.stats.Get(r.Context(), sessionID(r))
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("load stats")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// ------------------------------- util --------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
