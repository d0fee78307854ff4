// internal/store/memory.go
//
// In-memory implementation of the round Store.
// Holds in-flight Boggle rounds between guesses; finished rounds are removed
// once their score has been recorded.
//
// Characteristics:
//   - Stores *game.Round objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Rounds older than the TTL (by StartedAt) are treated as missing and
//     swept on the next Save, so abandoned rounds do not accumulate.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/boggle/internal/game"
)

// ErrNotFound is returned by Get for unknown round IDs.
var ErrNotFound = errors.New("round not found")

// Store defines the persistence interface for rounds in progress.
type Store interface {
	// Save persists or replaces a round.
	Save(ctx context.Context, r *game.Round) error

	// Get retrieves a round by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Round, error)

	// Delete drops a round; deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error
}

type memory struct {
	mu     sync.RWMutex
	rounds map[string]*game.Round
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
// Rounds expire ttl after they started; ttl <= 0 keeps them until deleted.
func NewMemoryStore(ttl time.Duration) Store {
	return &memory{
		rounds: make(map[string]*game.Round),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *memory) expired(r *game.Round, now time.Time) bool {
	return m.ttl > 0 && now.Sub(r.StartedAt) > m.ttl
}

func (m *memory) Save(ctx context.Context, r *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for id, old := range m.rounds {
		if m.expired(old, now) {
			delete(m.rounds, id)
		}
	}
	m.rounds[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok && !m.expired(r, m.now()) {
		return r, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, id)
	return nil
}

