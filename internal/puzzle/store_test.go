// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package puzzle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerStoreRoundTrip(t *testing.T) {
	store, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	p := Puzzle{
		StartActor:    "actor_1",
		TargetActor:   "actor_2",
		GeneratedAt:   time.Date(2026, 1, 7, 6, 5, 0, 0, time.UTC),
		ExclusionDays: 20,
	}
	recent := map[string]string{"actor_1": "20260107", "actor_2": "20260107"}
	require.NoError(t, store.Record("20260107", p, recent, nil))

	puzzles, recentLoaded, err := store.Load()
	require.NoError(t, err)
	require.Contains(t, puzzles, "20260107")
	assert.Equal(t, "actor_1", puzzles["20260107"].StartActor)
	assert.Equal(t, 20, puzzles["20260107"].ExclusionDays)
	assert.Equal(t, recent, recentLoaded)
}

func TestBadgerStoreDeletesExpired(t *testing.T) {
	store, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	seed := Puzzle{StartActor: "actor_old", TargetActor: "actor_older", ExclusionDays: 0}
	require.NoError(t, store.Record("20251201", seed, map[string]string{
		"actor_old": "20251201", "actor_older": "20251201",
	}, nil))

	next := Puzzle{StartActor: "actor_1", TargetActor: "actor_2", ExclusionDays: 20}
	require.NoError(t, store.Record("20260107", next, map[string]string{
		"actor_1": "20260107", "actor_2": "20260107",
	}, []string{"actor_old", "actor_older"}))

	puzzles, recent, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, puzzles, 2, "puzzles are never garbage-collected")
	assert.NotContains(t, recent, "actor_old")
	assert.NotContains(t, recent, "actor_older")
	assert.Contains(t, recent, "actor_1")
}

func TestBadgerStoreLoadEmpty(t *testing.T) {
	store, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	puzzles, recent, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, puzzles)
	assert.Empty(t, recent)
}
