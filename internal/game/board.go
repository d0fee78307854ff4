package game

import "math/rand/v2"

// DefaultSize is the board dimension used when none is configured.
const DefaultSize = 5

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Source is the randomness a board is drawn from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewBoard returns a size×size grid with every cell drawn independently and
// uniformly from A–Z. Repeated letters are expected. A nil rng falls back to
// the process-wide generator; pass a seeded *rand.Rand for reproducible boards.
func NewBoard(size int, rng Source) (Grid, error) {
	if size < 1 {
		return nil, ErrBoardSize
	}
	if rng == nil {
		rng = globalSource{}
	}
	g := make(Grid, size)
	for r := range g {
		row := make([]string, size)
		for c := range row {
			i := rng.IntN(len(alphabet))
			row[c] = alphabet[i : i+1]
		}
		g[r] = row
	}
	return g, nil
}
