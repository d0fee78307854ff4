package daily

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/boggle/assets"
	"github.com/robalobadob/boggle/internal/database"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "daily.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db, assets.Migrations()))
	return NewStore(db)
}

func TestStoreResults(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	const date = "2026-03-01"

	played, err := s.AlreadyPlayed(ctx, "a", date)
	require.NoError(t, err)
	assert.False(t, played)

	require.NoError(t, s.InsertResult(ctx, Result{SessionID: "a", Date: date, Score: 12, Words: 3}))
	require.NoError(t, s.InsertResult(ctx, Result{SessionID: "b", Date: date, Score: 30, Words: 6}))
	require.NoError(t, s.InsertResult(ctx, Result{SessionID: "c", Date: "2026-03-02", Score: 99, Words: 9}))
	// Second result for the same day is ignored.
	require.NoError(t, s.InsertResult(ctx, Result{SessionID: "a", Date: date, Score: 50, Words: 8}))

	played, err = s.AlreadyPlayed(ctx, "a", date)
	require.NoError(t, err)
	assert.True(t, played)

	rows, err := s.Leaderboard(ctx, date, 20)
	require.NoError(t, err)
	assert.Equal(t, []LBRow{
		{Rank: 1, Score: 30, Words: 6},
		{Rank: 2, Score: 12, Words: 3},
	}, rows)

	rows, err = s.Leaderboard(ctx, date, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = s.Leaderboard(ctx, "1999-01-01", 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
