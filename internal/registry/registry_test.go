// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package registry

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/movielinks/internal/game"
	"github.com/tomtom215/movielinks/internal/graph"
)

func newGame() *game.Game {
	g := graph.New()
	g.AddNode(graph.Node{ID: "actor_1", Type: "actor"})
	g.AddNode(graph.Node{ID: "actor_2", Type: "actor"})
	return game.New(g, nil, nil, "actor_1", "actor_2")
}

func TestCreateAndGet(t *testing.T) {
	r := New(time.Hour, 10)

	g := newGame()
	id := r.Create(g)
	require.NotEmpty(t, id)

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Same(t, g, got)

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	id2 := r.Create(newGame())
	assert.NotEqual(t, id, id2)
}

func TestTTLEvictionOnCreate(t *testing.T) {
	r := New(time.Hour, 10)
	current := time.Unix(1000000, 0)
	r.now = func() time.Time { return current }

	old := r.Create(newGame())

	// Two hours later the first session is expired and a create sweeps it.
	current = current.Add(2 * time.Hour)
	fresh := r.Create(newGame())

	_, err := r.Get(old)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Get(fresh)
	assert.NoError(t, err)
	assert.Equal(t, 1, r.Len())
}

func TestCapacityEvictsOldest(t *testing.T) {
	r := New(time.Hour, 3)
	current := time.Unix(1000000, 0)
	r.now = func() time.Time { return current }

	var ids []string
	for i := 0; i < 3; i++ {
		ids = append(ids, r.Create(newGame()))
		current = current.Add(time.Minute)
	}

	// At capacity and nothing expired: the oldest session goes.
	newest := r.Create(newGame())

	_, err := r.Get(ids[0])
	assert.ErrorIs(t, err, ErrNotFound)
	for _, id := range append(ids[1:], newest) {
		_, err := r.Get(id)
		assert.NoError(t, err)
	}
	assert.Equal(t, 3, r.Len())
}

func TestSweep(t *testing.T) {
	r := New(time.Hour, 10)
	current := time.Unix(1000000, 0)
	r.now = func() time.Time { return current }

	r.Create(newGame())
	r.Create(newGame())
	current = current.Add(30 * time.Minute)
	keep := r.Create(newGame())

	current = current.Add(45 * time.Minute)
	removed := r.Sweep()

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, r.Len())
	_, err := r.Get(keep)
	assert.NoError(t, err)

	assert.Zero(t, r.Sweep(), "second sweep finds nothing")
}

func TestConcurrentAccess(t *testing.T) {
	r := New(time.Hour, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				id := r.Create(newGame())
				if _, err := r.Get(id); err != nil {
					t.Error(err)
					return
				}
				r.Sweep()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 500, r.Len())
}
