package game

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundScoresValidWordsOnce(t *testing.T) {
	t.Parallel()

	v := NewValidator(dict("hello", "hell", "the"))
	r := NewRound("sess", helloGrid)
	require.Len(t, r.ID, 16)
	assert.Equal(t, "sess", r.SessionID)

	res, pts, err := r.ApplyGuess(v, "hello")
	require.NoError(t, err)
	assert.Equal(t, ResultOK, res)
	assert.Equal(t, 5, pts)

	res, pts, err = r.ApplyGuess(v, "HELLO")
	require.NoError(t, err)
	assert.Equal(t, ResultPlayedWord, res)
	assert.Zero(t, pts)

	res, pts, err = r.ApplyGuess(v, "the")
	require.NoError(t, err)
	assert.Equal(t, ResultNotOnBoard, res)
	assert.Zero(t, pts)

	res, pts, err = r.ApplyGuess(v, "asdfg")
	require.NoError(t, err)
	assert.Equal(t, ResultNotWord, res)
	assert.Zero(t, pts)

	res, pts, err = r.ApplyGuess(v, "hell")
	require.NoError(t, err)
	assert.Equal(t, ResultOK, res)
	assert.Equal(t, 4, pts)

	assert.Equal(t, 9, r.Score())
	assert.Equal(t, []string{"hello", "hell"}, r.Found())
}

func TestRoundRejectedGuessesAreNotRemembered(t *testing.T) {
	t.Parallel()

	v := NewValidator(dict("the"))
	r := NewRound("sess", helloGrid)

	for i := 0; i < 2; i++ {
		res, _, err := r.ApplyGuess(v, "the")
		require.NoError(t, err)
		assert.Equal(t, ResultNotOnBoard, res)
	}
	_, _, err := r.ApplyGuess(v, "t h e")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	assert.Empty(t, r.Found())
}

func TestRoundFinish(t *testing.T) {
	t.Parallel()

	v := NewValidator(dict("hello"))
	r := NewRound("sess", helloGrid)
	_, _, err := r.ApplyGuess(v, "hello")
	require.NoError(t, err)

	score, err := r.Finish()
	require.NoError(t, err)
	assert.Equal(t, 5, score)
	assert.True(t, r.Finished())

	_, err = r.Finish()
	assert.ErrorIs(t, err, ErrRoundFinished)

	_, _, err = r.ApplyGuess(v, "hello")
	assert.ErrorIs(t, err, ErrRoundFinished)
}

func TestRoundConcurrentDuplicateGuesses(t *testing.T) {
	t.Parallel()

	v := NewValidator(dict("hello"))
	r := NewRound("sess", helloGrid)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = r.ApplyGuess(v, "hello")
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, r.Score())
	assert.Equal(t, []string{"hello"}, r.Found())
}

func TestRoundFinishWithFailedCommitStaysOpen(t *testing.T) {
	t.Parallel()

	v := NewValidator(dict("hello", "hell"))
	r := NewRound("sess", helloGrid)
	_, _, err := r.ApplyGuess(v, "hello")
	require.NoError(t, err)

	boom := errors.New("disk full")
	_, err = r.FinishWith(func(int, []string) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, r.Finished())

	// Still playable after the failed commit.
	res, _, err := r.ApplyGuess(v, "hell")
	require.NoError(t, err)
	assert.Equal(t, ResultOK, res)

	var gotScore int
	var gotWords []string
	score, err := r.FinishWith(func(score int, found []string) error {
		gotScore, gotWords = score, found
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 9, score)
	assert.Equal(t, 9, gotScore)
	assert.Equal(t, []string{"hello", "hell"}, gotWords)
	assert.True(t, r.Finished())

	called := false
	_, err = r.FinishWith(func(int, []string) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrRoundFinished)
	assert.False(t, called)
}
