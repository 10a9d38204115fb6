// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/movielinks/internal/graph"
)

// chainGraph builds A-m1-B-m2-C with an actor-movie index covering both
// movies and a resolver over display names.
func chainGraph() (*graph.Graph, *graph.ActorMovieIndex, ActorResolver) {
	g := graph.New()
	g.AddNode(graph.Node{ID: "actor_1", Type: "actor", Name: "Alice Allen", TMDBID: 1, InPlayableGraph: true, InStartingPool: true})
	g.AddNode(graph.Node{ID: "actor_2", Type: "actor", Name: "Bob Burns", TMDBID: 2, InPlayableGraph: true})
	g.AddNode(graph.Node{ID: "actor_3", Type: "actor", Name: "Cara Cole", TMDBID: 3, InPlayableGraph: true, InStartingPool: true})
	g.AddEdge("actor_1", "actor_2", []graph.Movie{{ID: 10, Title: "Movie One", Popularity: 20}})
	g.AddEdge("actor_2", "actor_3", []graph.Movie{{ID: 20, Title: "Movie Two", Popularity: 15}})

	ix := &graph.ActorMovieIndex{
		Movies: map[int]graph.MovieInfo{
			10: {ID: 10, Title: "Movie One", Popularity: 20},
			20: {ID: 20, Title: "Movie Two", Popularity: 15},
			30: {ID: 30, Title: "Unrelated Movie", Popularity: 1},
		},
		ActorMovies: map[int][]graph.Credit{
			1: {{MovieID: 10, Title: "Movie One"}},
			2: {{MovieID: 10, Title: "Movie One"}, {MovieID: 20, Title: "Movie Two"}},
			3: {{MovieID: 20, Title: "Movie Two"}, {MovieID: 30, Title: "Unrelated Movie"}},
		},
	}

	names := map[string][]string{
		"alice allen": {"actor_1"},
		"bob burns":   {"actor_2"},
		"cara cole":   {"actor_3"},
	}
	resolve := func(name string) []string { return names[name] }
	return g, ix, resolve
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func assertInvariants(t *testing.T, g *Game) {
	t.Helper()
	snap := g.Snapshot()
	require.NotEmpty(t, snap.Visited)
	assert.Equal(t, snap.Current, snap.Visited[len(snap.Visited)-1])
	assert.Equal(t, len(snap.Visited), len(snap.MoviesUsed)+1)
	assert.LessOrEqual(t, snap.IncorrectGuesses, snap.MaxIncorrect)
}

func TestProgressiveTwoStepWin(t *testing.T) {
	gr, ix, resolve := chainGraph()
	g := New(gr, ix, resolve, "actor_1", "actor_3")

	// Step 1: movie only.
	res := g.Guess(intPtr(10), nil)
	require.True(t, res.Success, res.Message)
	snap := g.Snapshot()
	assert.Equal(t, AwaitingActor, snap.State)
	require.NotNil(t, snap.Pending)
	assert.Equal(t, 10, snap.Pending.ID)
	assertInvariants(t, g)

	// Step 2: actor only.
	res = g.Guess(nil, strPtr("bob burns"))
	require.True(t, res.Success, res.Message)
	snap = g.Snapshot()
	assert.Equal(t, AwaitingMove, snap.State)
	assert.Equal(t, "actor_2", snap.Current)
	assert.Nil(t, snap.Pending)
	assertInvariants(t, g)

	// One-shot legacy pair to the target.
	res = g.Guess(intPtr(20), strPtr("cara cole"))
	require.True(t, res.Success, res.Message)
	snap = g.Snapshot()
	assert.Equal(t, CompletedWin, snap.State)
	assert.True(t, snap.Completed)
	assert.Equal(t, []string{"actor_1", "actor_2", "actor_3"}, snap.Visited)
	require.Len(t, snap.MoviesUsed, 2)
	assert.Equal(t, 10, snap.MoviesUsed[0].ID)
	assert.Equal(t, 20, snap.MoviesUsed[1].ID)
	assert.Equal(t, 3, snap.TotalGuesses)
	assert.Equal(t, 0, snap.IncorrectGuesses)
	assertInvariants(t, g)
}

func TestWrongMovieThenCorrect(t *testing.T) {
	gr, ix, resolve := chainGraph()
	g := New(gr, ix, resolve, "actor_1", "actor_3")

	// Actor 1 is not in movie 30.
	res := g.Guess(intPtr(30), nil)
	assert.False(t, res.Success)
	snap := g.Snapshot()
	assert.Equal(t, 1, snap.IncorrectGuesses)
	assert.Equal(t, AwaitingMove, snap.State)
	assert.Equal(t, "actor_1", snap.Current)

	// Unknown movie id.
	res = g.Guess(intPtr(999), nil)
	assert.False(t, res.Success)
	assert.Equal(t, "Movie not found in database.", res.Message)

	// Correct movie succeeds.
	res = g.Guess(intPtr(10), nil)
	assert.True(t, res.Success)
	assert.Equal(t, 2, g.Snapshot().IncorrectGuesses)
	assertInvariants(t, g)
}

func TestActorGuessRequiresPendingMovie(t *testing.T) {
	gr, ix, resolve := chainGraph()
	g := New(gr, ix, resolve, "actor_1", "actor_3")

	res := g.Guess(nil, strPtr("bob burns"))
	assert.False(t, res.Success)
	assert.Equal(t, "You must guess a movie first.", res.Message)
	snap := g.Snapshot()
	assert.Zero(t, snap.TotalGuesses, "pre-dispatch rejection leaves counters alone")
	assert.Zero(t, snap.IncorrectGuesses)
}

func TestNeitherArgumentRejected(t *testing.T) {
	gr, ix, resolve := chainGraph()
	g := New(gr, ix, resolve, "actor_1", "actor_3")

	res := g.Guess(nil, nil)
	assert.False(t, res.Success)
	assert.Equal(t, "You must provide either a movie or an actor.", res.Message)
	assert.Zero(t, g.Snapshot().TotalGuesses)
}

func TestWrongActorWithPendingMovie(t *testing.T) {
	gr, ix, resolve := chainGraph()
	g := New(gr, ix, resolve, "actor_1", "actor_3")

	require.True(t, g.Guess(intPtr(10), nil).Success)

	// Cara is not in Movie One with Alice.
	res := g.Guess(nil, strPtr("cara cole"))
	assert.False(t, res.Success)
	snap := g.Snapshot()
	assert.Equal(t, 1, snap.IncorrectGuesses)
	assert.Equal(t, "actor_1", snap.Current)
	assert.Equal(t, AwaitingActor, snap.State, "pending movie survives a failed actor guess")

	// Resolver miss.
	res = g.Guess(nil, strPtr("nobody"))
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "couldn't find an actor")
}

func TestOneShotFailureMessages(t *testing.T) {
	gr, ix, resolve := chainGraph()
	g := New(gr, ix, resolve, "actor_1", "actor_3")

	// Connected actors, wrong movie.
	res := g.Guess(intPtr(20), strPtr("bob burns"))
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "doesn't connect")
	assert.Contains(t, res.Message, "Movie Two")

	// Not directly connected.
	res = g.Guess(intPtr(10), strPtr("cara cole"))
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "aren't directly connected")
}

func TestLossOnMaxIncorrect(t *testing.T) {
	gr, ix, resolve := chainGraph()
	g := New(gr, ix, resolve, "actor_1", "actor_3")

	for i := 0; i < DefaultMaxIncorrect; i++ {
		res := g.Guess(intPtr(999), nil)
		assert.False(t, res.Success)
	}
	snap := g.Snapshot()
	assert.Equal(t, CompletedLoss, snap.State)
	assert.True(t, snap.Completed)
	assert.Equal(t, DefaultMaxIncorrect, snap.IncorrectGuesses)

	// Terminal state rejects everything without counting.
	res := g.Guess(intPtr(10), nil)
	assert.False(t, res.Success)
	assert.Equal(t, "Game is already complete.", res.Message)
	assert.Equal(t, DefaultMaxIncorrect, g.Snapshot().TotalGuesses)
}

func TestGiveUp(t *testing.T) {
	gr, ix, resolve := chainGraph()
	g := New(gr, ix, resolve, "actor_1", "actor_3")

	require.True(t, g.Guess(intPtr(10), nil).Success)

	ok, msg := g.GiveUp()
	assert.True(t, ok)
	assert.Equal(t, "You gave up. Game over.", msg)

	snap := g.Snapshot()
	assert.Equal(t, CompletedGaveUp, snap.State)
	assert.True(t, snap.GaveUp)
	assert.Equal(t, snap.MaxIncorrect, snap.IncorrectGuesses)
	assert.Nil(t, snap.Pending)

	// Give up twice is a no-op failure.
	ok, msg = g.GiveUp()
	assert.False(t, ok)
	assert.Equal(t, "Game is already complete.", msg)

	res := g.Guess(intPtr(10), nil)
	assert.Equal(t, "Game is already complete.", res.Message)
}

func TestSwapActors(t *testing.T) {
	gr, ix, resolve := chainGraph()
	g := New(gr, ix, resolve, "actor_1", "actor_3")

	require.NoError(t, g.Swap())
	snap := g.Snapshot()
	assert.Equal(t, "actor_3", snap.Start)
	assert.Equal(t, "actor_1", snap.Target)
	assert.Equal(t, "actor_3", snap.Current)
	assert.Equal(t, []string{"actor_3"}, snap.Visited)

	// Swap twice is the identity.
	require.NoError(t, g.Swap())
	snap = g.Snapshot()
	assert.Equal(t, "actor_1", snap.Start)
	assert.Equal(t, "actor_3", snap.Target)

	// A pending movie is discarded by swap.
	require.True(t, g.Guess(intPtr(10), nil).Success)
	require.NoError(t, g.Swap())
	assert.Nil(t, g.Snapshot().Pending)

	// After a completed move, swap is illegal.
	require.NoError(t, g.Swap())
	require.True(t, g.Guess(intPtr(10), strPtr("bob burns")).Success)
	assert.ErrorIs(t, g.Swap(), ErrMoveAlreadyMade)
}

func TestEdgeFallbackWithoutIndex(t *testing.T) {
	gr, _, resolve := chainGraph()
	g := New(gr, nil, resolve, "actor_1", "actor_3")

	// One-shot validation works from edge metadata alone.
	res := g.Guess(intPtr(10), strPtr("bob burns"))
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "actor_2", g.Snapshot().Current)

	// Movie-only guessing needs the index.
	res = g.Guess(intPtr(20), nil)
	assert.False(t, res.Success)
	assert.Equal(t, "Cannot validate movie.", res.Message)
}

func TestRuleFailureLeavesStateUntouched(t *testing.T) {
	gr, ix, resolve := chainGraph()
	g := New(gr, ix, resolve, "actor_1", "actor_3")

	before := g.Snapshot()
	res := g.Guess(intPtr(30), strPtr("bob burns"))
	require.False(t, res.Success)
	after := g.Snapshot()

	assert.Equal(t, before.Current, after.Current)
	assert.Equal(t, before.Visited, after.Visited)
	assert.Equal(t, before.IncorrectGuesses+1, after.IncorrectGuesses)
	assertInvariants(t, g)
}
