// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package registry holds live game sessions behind opaque identifiers, with
// TTL expiry and a capacity cap bounding memory. Sessions are process-local
// and never persisted; an evicted session is simply gone.
package registry

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/movielinks/internal/game"
)

// Defaults for session lifetime and capacity.
const (
	DefaultTTL      = 2 * time.Hour
	DefaultMaxGames = 5000
)

// ErrNotFound is returned when a session id is unknown or already evicted.
var ErrNotFound = errors.New("game not found")

type entry struct {
	game      *game.Game
	createdAt time.Time
}

// Registry maps opaque session identifiers to live games. It is the only
// shared-mutable state on the hot path: one mutex guards the map, while each
// game carries its own lock for move validation, so the registry lock is
// never held across game mutation.
//
// Expired sessions are evicted on every create and by the periodic sweep; a
// capacity cap drops the oldest sessions when eviction alone is not enough.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]entry
	ttl      time.Duration
	maxGames int
	now      func() time.Time
}

// New creates a registry. Non-positive ttl or maxGames select the defaults.
func New(ttl time.Duration, maxGames int) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxGames <= 0 {
		maxGames = DefaultMaxGames
	}
	return &Registry{
		sessions: make(map[string]entry),
		ttl:      ttl,
		maxGames: maxGames,
		now:      time.Now,
	}
}

// Create registers a game under a fresh 128-bit random identifier and returns
// the identifier. Expired sessions are evicted first; if the registry is
// still at capacity, the oldest sessions are dropped until it is below it.
func (r *Registry) Create(g *game.Game) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpiredLocked()
	if len(r.sessions) >= r.maxGames {
		r.evictOldestLocked(len(r.sessions) - r.maxGames + 1)
	}

	id := uuid.NewString()
	r.sessions[id] = entry{game: g, createdAt: r.now()}
	return id
}

// Get returns the game for a session id.
func (r *Registry) Get(id string) (*game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e.game, nil
}

// Sweep evicts all expired sessions and returns how many were removed. The
// background sweeper calls this periodically so long-idle processes do not
// pin dead sessions until the next create.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.evictExpiredLocked()
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) evictExpiredLocked() int {
	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, e := range r.sessions {
		if e.createdAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) evictOldestLocked(n int) {
	if n <= 0 {
		return
	}
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return r.sessions[ids[i]].createdAt.Before(r.sessions[ids[j]].createdAt)
	})
	if n > len(ids) {
		n = len(ids)
	}
	for _, id := range ids[:n] {
		delete(r.sessions, id)
	}
}
