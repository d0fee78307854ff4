package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardShape(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for size := 1; size <= 8; size++ {
		g, err := NewBoard(size, r)
		require.NoError(t, err)
		require.Len(t, g, size)
		for _, row := range g {
			require.Len(t, row, size)
			for _, cell := range row {
				require.Len(t, cell, 1)
				assert.True(t, cell[0] >= 'A' && cell[0] <= 'Z', "cell %q out of A-Z", cell)
			}
		}
		assert.NoError(t, g.Validate())
	}
}

func TestNewBoardSeededIsDeterministic(t *testing.T) {
	t.Parallel()

	a, err := NewBoard(DefaultSize, rand.New(rand.NewPCG(42, 7)))
	require.NoError(t, err)
	b, err := NewBoard(DefaultSize, rand.New(rand.NewPCG(42, 7)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewBoard(DefaultSize, rand.New(rand.NewPCG(43, 7)))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestNewBoardUsesWholeAlphabet(t *testing.T) {
	t.Parallel()

	g, err := NewBoard(60, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, row := range g {
		for _, cell := range row {
			seen[cell]++
		}
	}
	assert.Len(t, seen, 26)
}

func TestNewBoardNilSource(t *testing.T) {
	t.Parallel()

	g, err := NewBoard(DefaultSize, nil)
	require.NoError(t, err)
	assert.NoError(t, g.Validate())
}

func TestNewBoardRejectsBadSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1} {
		g, err := NewBoard(size, nil)
		assert.ErrorIs(t, err, ErrBoardSize)
		assert.Nil(t, g)
	}
}

func TestGridValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		grid Grid
		ok   bool
	}{
		{name: "1x1", grid: Grid{{"A"}}, ok: true},
		{name: "lowercase", grid: Grid{{"a", "b"}, {"c", "d"}}, ok: true},
		{name: "empty", grid: Grid{}},
		{name: "nil", grid: nil},
		{name: "ragged", grid: Grid{{"A", "B"}, {"C"}}},
		{name: "not square", grid: Grid{{"A", "B", "C"}, {"D", "E", "F"}}},
		{name: "two letters", grid: Grid{{"AB"}}},
		{name: "digit", grid: Grid{{"A", "1"}, {"C", "D"}}},
		{name: "blank", grid: Grid{{""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.grid.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrMalformedGrid)
			}
		})
	}
}
