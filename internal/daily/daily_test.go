package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	assert.Equal(t, "2026-03-01", DateKey(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-02-28", DateKey(time.Date(2026, 3, 1, 8, 0, 0, 0, loc)))
}

func TestSeed(t *testing.T) {
	morning := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	tomorrow := morning.Add(24 * time.Hour)

	a1, a2 := Seed(morning, "salt")
	b1, b2 := Seed(evening, "salt")
	assert.Equal(t, a1, b1)
	assert.Equal(t, a2, b2)

	c1, _ := Seed(tomorrow, "salt")
	assert.NotEqual(t, a1, c1)

	d1, _ := Seed(morning, "pepper")
	assert.NotEqual(t, a1, d1)
}
