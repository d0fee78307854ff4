package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	b, err := fs.ReadFile(Migrations(), "001_init.sql")
	require.NoError(t, err)
	assert.Contains(t, string(b), "session_stats")
}

func TestMustSubPanicsOnMissingDir(t *testing.T) {
	assert.Panics(t, func() { mustSub("migrations", "*.sql") })
	assert.Panics(t, func() { mustSub("sql", "*.yaml") })
	assert.NotPanics(t, func() { mustSub("sql", "*.sql") })
}

func TestWordList(t *testing.T) {
	list, err := WordList()
	require.NoError(t, err)
	assert.Contains(t, list, "hello")
	for _, w := range list {
		assert.NotContains(t, w, "#")
	}
}
