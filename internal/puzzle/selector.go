// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/tomtom215/movielinks/internal/graph"
	"github.com/tomtom215/movielinks/internal/logging"
	"github.com/tomtom215/movielinks/internal/metrics"
)

// dateKeyLayout is the civil-date format of puzzle keys.
const dateKeyLayout = "20060102"

// exclusionWindows are the reuse-exclusion windows tried in order. When the
// starting pool minus recently used actors cannot yield a pair, the window
// shrinks until exclusion is waived entirely.
var exclusionWindows = []int{20, 15, 10, 0}

const (
	// maxPairAttempts bounds the random sampling per exclusion window.
	maxPairAttempts = 100

	// recentRetentionDays is how long recent-use entries are kept; it exceeds
	// the widest exclusion window by a safety margin.
	recentRetentionDays = 25
)

// ErrPoolTooSmall is returned when the starting pool cannot yield two
// distinct actors.
var ErrPoolTooSmall = errors.New("not enough starting actors")

// Puzzle is one day's start/target pick.
type Puzzle struct {
	StartActor    string    `json:"start_actor"`
	TargetActor   string    `json:"target_actor"`
	GeneratedAt   time.Time `json:"generated_at"`
	ExclusionDays int       `json:"exclusion_days"`
	Fallback      bool      `json:"fallback,omitempty"`
}

// Selector deterministically picks the daily start/target actor pair.
//
// For a given puzzle key the pick is a pure function of the key and the state
// at first call: the RNG is a dedicated instance seeded from the integer form
// of the key, so every process selecting the same key over the same state
// produces the same pair. Subsequent calls return the recorded pick. One lock
// covers read, pick-and-record, and persist.
type Selector struct {
	mu      sync.Mutex
	graph   *graph.Graph
	store   Store
	puzzles map[string]Puzzle
	recent  map[string]string // actor id -> YYYYMMDD of last use
	now     func() time.Time
}

// NewSelector creates a selector over the graph's starting pool. The store
// may be nil (state is then memory-only). A failed state load starts fresh
// rather than failing the server.
func NewSelector(g *graph.Graph, store Store) *Selector {
	s := &Selector{
		graph:   g,
		store:   store,
		puzzles: make(map[string]Puzzle),
		recent:  make(map[string]string),
		now:     time.Now,
	}
	if store != nil {
		puzzles, recent, err := store.Load()
		if err != nil {
			logging.Warn().Err(err).Msg("Failed to load puzzle state, starting fresh")
		} else {
			s.puzzles = puzzles
			s.recent = recent
			logging.Info().Int("puzzles", len(puzzles)).Int("recent_actors", len(recent)).Msg("Loaded puzzle state")
		}
	}
	return s
}

// TodayKey formats the puzzle key for the current civil date in loc.
func TodayKey(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(dateKeyLayout)
}

// DailyPair returns the puzzle for the given key, generating and recording it
// on first call.
func (s *Selector) DailyPair(key string) (Puzzle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.puzzles[key]; ok {
		return p, nil
	}

	seed, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzle key %q is not a date key: %w", key, err)
	}

	logging.Info().Str("puzzle_id", key).Msg("Generating new daily puzzle")
	rng := rand.New(rand.NewSource(seed))

	for _, window := range exclusionWindows {
		available := s.availableActors(window)
		if len(available) < 2 {
			logging.Debug().Int("exclusion_days", window).Int("available", len(available)).
				Msg("Pool too small for exclusion window, shrinking")
			continue
		}

		for attempt := 1; attempt <= maxPairAttempts; attempt++ {
			start, target := samplePair(rng, available)
			if start == target || s.graph.HasEdge(start, target) {
				continue
			}
			logging.Info().Str("puzzle_id", key).Int("attempts", attempt).
				Int("exclusion_days", window).Msg("Found valid daily pair")
			return s.record(key, start, target, window, false), nil
		}
	}

	// No non-adjacent pair found in any window: accept any two distinct
	// starting-pool actors.
	pool := s.graph.StartingPool()
	if len(pool) < 2 {
		return Puzzle{}, ErrPoolTooSmall
	}
	logging.Warn().Str("puzzle_id", key).Msg("Using fallback pair for daily puzzle")
	start, target := samplePair(rng, pool)
	return s.record(key, start, target, 0, true), nil
}

// availableActors returns the starting pool minus actors used within the
// exclusion window, preserving pool order.
func (s *Selector) availableActors(exclusionDays int) []string {
	cutoff := s.now().AddDate(0, 0, -exclusionDays).Format(dateKeyLayout)
	var out []string
	for _, id := range s.graph.StartingPool() {
		if usedDate, ok := s.recent[id]; ok && usedDate >= cutoff {
			continue
		}
		out = append(out, id)
	}
	return out
}

// samplePair draws two distinct positions from pool (len >= 2).
func samplePair(rng *rand.Rand, pool []string) (string, string) {
	i := rng.Intn(len(pool))
	j := rng.Intn(len(pool) - 1)
	if j >= i {
		j++
	}
	return pool[i], pool[j]
}

// record stores the pick in memory, garbage-collects stale recent entries,
// and persists; persistence failures are logged and swallowed so the pick
// still serves from memory.
func (s *Selector) record(key, start, target string, exclusionDays int, fallback bool) Puzzle {
	p := Puzzle{
		StartActor:    start,
		TargetActor:   target,
		GeneratedAt:   s.now(),
		ExclusionDays: exclusionDays,
		Fallback:      fallback,
	}
	s.puzzles[key] = p
	metrics.RecordPuzzleGeneration(fallback)
	s.recent[start] = key
	s.recent[target] = key

	cutoff := s.now().AddDate(0, 0, -recentRetentionDays).Format(dateKeyLayout)
	var expired []string
	for actorID, usedDate := range s.recent {
		if usedDate < cutoff {
			expired = append(expired, actorID)
		}
	}
	for _, actorID := range expired {
		delete(s.recent, actorID)
	}
	if len(expired) > 0 {
		logging.Debug().Int("removed", len(expired)).Msg("Cleaned up old recent-actor entries")
	}

	if s.store != nil {
		if err := s.store.Record(key, p, map[string]string{start: key, target: key}, expired); err != nil {
			logging.Error().Err(err).Str("puzzle_id", key).Msg("Failed to persist puzzle state")
		}
	}
	return p
}
