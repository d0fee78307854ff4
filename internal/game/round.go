package game

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// Round holds the state of a single game on one board.
type Round struct {
	ID        string    // Unique round identifier (random hex string).
	SessionID string    // Owning browser session.
	Board     Grid      // Immutable for the lifetime of the round.
	Daily     string    // "YYYY-MM-DD" for daily-board rounds, empty otherwise.
	StartedAt time.Time // UTC.

	mu       sync.Mutex
	found    []string
	seen     map[string]struct{}
	score    int
	finished bool
}

// NewRound starts a round for sessionID on board.
func NewRound(sessionID string, board Grid) *Round {
	return &Round{
		ID:        randomID(),
		SessionID: sessionID,
		Board:     board,
		StartedAt: time.Now().UTC(),
		seen:      make(map[string]struct{}),
	}
}

// ApplyGuess validates guess and, when it is a new valid word, adds
// len(word) points to the round score.
// Returns the classification, the points awarded for this guess, or an error.
func (r *Round) ApplyGuess(v *Validator, guess string) (Result, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.finished {
		return "", 0, ErrRoundFinished
	}
	word := strings.ToLower(guess)
	if _, dup := r.seen[word]; dup {
		return ResultPlayedWord, 0, nil
	}
	res, err := v.Check(r.Board, word)
	if err != nil || res != ResultOK {
		return res, 0, err
	}
	r.seen[word] = struct{}{}
	r.found = append(r.found, word)
	r.score += len(word)
	return res, len(word), nil
}

// Finish closes the round and returns its final score.
// A round can only be finished once.
func (r *Round) Finish() (int, error) {
	return r.FinishWith(nil)
}

// FinishWith closes the round once commit has accepted its final score and
// words. If commit fails the round stays open, so finishing can be retried.
// The round is locked while commit runs.
func (r *Round) FinishWith(commit func(score int, found []string) error) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return r.score, ErrRoundFinished
	}
	if commit != nil {
		if err := commit(r.score, append([]string(nil), r.found...)); err != nil {
			return r.score, err
		}
	}
	r.finished = true
	return r.score, nil
}

// Score returns the points accumulated so far.
func (r *Round) Score() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.score
}

// Found returns a copy of the words found so far, in order.
func (r *Round) Found() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.found...)
}

// Finished reports whether Finish has been called.
func (r *Round) Finished() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finished
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
