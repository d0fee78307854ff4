// internal/game/engine.go
//
// Word validation engine for a Boggle board.
// Responsibilities:
//   - Reject guesses that are not dictionary words before any board search.
//   - Trace a guess as a simple path of 8-way adjacent cells on the grid.
//
// Notes:
//   - The Validator is stateless; each call allocates its own visited set,
//     so concurrent checks against the same Grid never interfere.
//   - Grid letters are stored uppercase, the dictionary lowercase; both are
//     folded to lowercase before comparison.
package game

import "strings"

// Dictionary is the read-only word set consulted by the Validator.
// Words are expected in lowercase.
type Dictionary interface {
	Contains(word string) bool
}

// Validator classifies guesses against a grid and a shared dictionary.
type Validator struct {
	dict Dictionary
}

// NewValidator wraps dict. A nil dict is accepted here and reported as
// ErrNoDictionary on every call.
func NewValidator(dict Dictionary) *Validator {
	return &Validator{dict: dict}
}

// Check classifies guess against grid.
//
// Order of evaluation:
//   - Hard failures: missing dictionary, malformed grid, non-letter guess.
//   - Dictionary lookup; a miss returns ResultNotWord without searching.
//   - Board search; a trace returns ResultOK, otherwise ResultNotOnBoard.
//
// The guess is lowercased but never trimmed, and no minimum length applies.
func (v *Validator) Check(grid Grid, guess string) (Result, error) {
	if v == nil || v.dict == nil {
		return "", ErrNoDictionary
	}
	if err := grid.Validate(); err != nil {
		return "", err
	}
	word := strings.ToLower(guess)
	if !isAlpha(word) {
		return "", ErrInvalidGuess
	}
	if !v.dict.Contains(word) {
		return ResultNotWord, nil
	}
	if newSearch(grid, word).run() == nil {
		return ResultNotOnBoard, nil
	}
	return ResultOK, nil
}

// Trace returns the first path spelling word on grid, or nil if none exists.
// The dictionary is not consulted.
func (v *Validator) Trace(grid Grid, word string) (Path, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	word = strings.ToLower(word)
	if !isAlpha(word) {
		return nil, ErrInvalidGuess
	}
	return newSearch(grid, word).run(), nil
}

// neighbours lists the 8 row/col offsets of adjacent cells.
var neighbours = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// search is the per-call state of one depth-first trace.
// visited holds exactly the cells on the current partial path.
type search struct {
	cells   [][]byte
	word    string
	visited [][]bool
	path    Path
}

func newSearch(grid Grid, word string) *search {
	n := grid.Size()
	s := &search{
		cells:   make([][]byte, n),
		word:    word,
		visited: make([][]bool, n),
		path:    make(Path, 0, len(word)),
	}
	for r, row := range grid {
		s.cells[r] = make([]byte, n)
		s.visited[r] = make([]bool, n)
		for c, cell := range row {
			s.cells[r][c] = toLower(cell[0])
		}
	}
	return s
}

// run tries every cell as the start of the trace and returns the first
// complete path, or nil.
func (s *search) run() Path {
	if len(s.word) == 0 {
		return nil
	}
	for r := range s.cells {
		for c := range s.cells[r] {
			if s.from(r, c, 0) {
				return s.path
			}
		}
	}
	return nil
}

// from attempts to match word[i:] starting at (row, col).
func (s *search) from(row, col, i int) bool {
	if s.visited[row][col] || s.cells[row][col] != s.word[i] {
		return false
	}
	s.visited[row][col] = true
	defer func() { s.visited[row][col] = false }()

	s.path = append(s.path, Coord{Row: row, Col: col})
	if i == len(s.word)-1 {
		return true
	}

	n := len(s.cells)
	for _, d := range neighbours {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= n || c < 0 || c >= n {
			continue
		}
		if s.from(r, c, i+1) {
			return true
		}
	}
	s.path = s.path[:len(s.path)-1]
	return false
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
