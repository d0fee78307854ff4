// internal/game/types.go
//
// Core type definitions for the Boggle engine.
// Defines:
//   - Grid:   the N×N letter board for a round.
//   - Coord:  a single cell position; Path is a traced sequence of them.
//   - Result: classification of a guess (ok / not-on-board / not-word / played-word).
//   - Sentinel errors for hard failures that are not classifications.

package game

import "errors"

// Result is the classification of a single guess.
// Values double as the JSON strings the browser client expects.
type Result string

const (
	ResultOK         Result = "ok"           // in the dictionary and traceable on the board
	ResultNotOnBoard Result = "not-on-board" // in the dictionary, no trace exists
	ResultNotWord    Result = "not-word"     // not in the dictionary
	ResultPlayedWord Result = "played-word"  // already found earlier in the same round
)

// Grid is a square board of single uppercase letters, indexed [row][col].
// A Grid is never mutated after generation.
type Grid [][]string

// Size returns the number of rows.
func (g Grid) Size() int { return len(g) }

// Validate reports ErrMalformedGrid unless g is non-empty, square, and
// every cell holds exactly one ASCII letter.
func (g Grid) Validate() error {
	n := len(g)
	if n == 0 {
		return ErrMalformedGrid
	}
	for _, row := range g {
		if len(row) != n {
			return ErrMalformedGrid
		}
		for _, cell := range row {
			if len(cell) != 1 || !isLetter(cell[0]) {
				return ErrMalformedGrid
			}
		}
	}
	return nil
}

// Coord is a zero-based cell position.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Path is an ordered trace of distinct, mutually adjacent cells.
type Path []Coord

var (
	ErrBoardSize     = errors.New("board size must be at least 1")
	ErrMalformedGrid = errors.New("malformed grid")
	ErrNoDictionary  = errors.New("dictionary unavailable")
	ErrInvalidGuess  = errors.New("guess must contain letters only")
	ErrRoundFinished = errors.New("round finished")
)

// isLetter reports whether b is an ASCII letter of either case.
func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
