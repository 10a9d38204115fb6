// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tomtom215/movielinks/internal/graph"
)

// State is the game state machine position.
type State int

const (
	// AwaitingMove: no pending movie; the next guess names a movie (or a
	// legacy movie+actor pair).
	AwaitingMove State = iota

	// AwaitingActor: a movie has been accepted and waits to be paired with
	// an actor.
	AwaitingActor

	// CompletedWin: the chain reached the target actor.
	CompletedWin

	// CompletedLoss: the incorrect-guess budget is exhausted.
	CompletedLoss

	// CompletedGaveUp: the player conceded.
	CompletedGaveUp
)

// Terminal reports whether the state admits no further transitions.
func (s State) Terminal() bool { return s >= CompletedWin }

// DefaultMaxIncorrect is the incorrect-guess budget for a new game.
const DefaultMaxIncorrect = 3

// ErrMoveAlreadyMade is returned by Swap once the first move has landed.
var ErrMoveAlreadyMade = errors.New("cannot swap actors after making a move")

// ActorResolver maps a free-text actor name to candidate node ids.
type ActorResolver func(name string) []string

// Result is the outcome of a single guess. Rule failures are values, not
// errors: Success is false and Message explains what went wrong.
type Result struct {
	Success bool
	Message string
}

// Game is one player session traversing the co-star graph from a start actor
// toward a target actor. All mutating calls serialize on the session's own
// lock; the graph and index are shared read-only.
type Game struct {
	mu sync.Mutex

	graph   *graph.Graph
	index   *graph.ActorMovieIndex
	resolve ActorResolver

	start   string
	target  string
	current string

	visited    []string
	moviesUsed []graph.Movie
	pending    *graph.Movie

	state        State
	gaveUp       bool
	maxIncorrect int
	incorrect    int
	total        int
}

// New creates a game between two actor nodes. The actor-movie index may be
// nil, in which case validation falls back to edge connector lists only.
func New(g *graph.Graph, ix *graph.ActorMovieIndex, resolve ActorResolver, start, target string) *Game {
	if resolve == nil {
		resolve = func(string) []string { return nil }
	}
	return &Game{
		graph:        g,
		index:        ix,
		resolve:      resolve,
		start:        start,
		target:       target,
		current:      start,
		visited:      []string{start},
		state:        AwaitingMove,
		maxIncorrect: DefaultMaxIncorrect,
	}
}

// Guess processes one move. Dispatch follows the argument pattern:
//
//   - movie only: first step of progressive guessing
//   - actor only: second step, resolved against the pending movie
//   - both: legacy one-shot pair
//   - neither: rejected without touching the counters
func (g *Game) Guess(movieID *int, actorName *string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Terminal() {
		return Result{Message: "Game is already complete."}
	}

	switch {
	case movieID != nil && actorName == nil:
		return g.guessMovie(*movieID)
	case movieID == nil && actorName != nil:
		if g.pending == nil {
			return Result{Message: "You must guess a movie first."}
		}
		return g.guessActor(*actorName)
	case movieID != nil && actorName != nil:
		return g.guessPair(*movieID, *actorName)
	default:
		return Result{Message: "You must provide either a movie or an actor."}
	}
}

// guessMovie validates the first step: the movie must exist in the index and
// the current actor's filmography must include it. On success the movie is
// held pending until an actor is named.
func (g *Game) guessMovie(movieID int) Result {
	g.total++

	if g.index == nil {
		return Result{Message: "Cannot validate movie."}
	}
	info, ok := g.index.Movie(movieID)
	if !ok {
		g.incIncorrect()
		return Result{Message: "Movie not found in database."}
	}

	tmdbID, err := g.graph.TMDBID(g.current)
	if err != nil {
		return Result{Message: "Invalid actor ID format."}
	}
	if !g.index.ActorHasMovie(tmdbID, movieID) {
		g.incIncorrect()
		return Result{Message: fmt.Sprintf("%s didn't appear in %q.", g.graph.Label(g.current), info.Title)}
	}

	connector := info.Connector(movieID)
	g.pending = &connector
	g.state = AwaitingActor
	return Result{
		Success: true,
		Message: fmt.Sprintf("Valid movie: %q. Now guess an actor.", info.Title),
	}
}

// guessActor validates the second step against the pending movie.
func (g *Game) guessActor(actorName string) Result {
	g.total++

	candidates := g.resolve(actorName)
	if len(candidates) == 0 {
		g.incIncorrect()
		return Result{Message: fmt.Sprintf("I couldn't find an actor matching %q. Try the autocomplete.", actorName)}
	}

	pendingTitle := g.pending.Title
	movie, next, ok := g.validateAndAdvance(g.pending.ID, candidates)
	if !ok {
		g.incIncorrect()
		return Result{Message: fmt.Sprintf("%s didn't appear in %q with %s.", actorName, pendingTitle, g.graph.Label(g.current))}
	}

	return g.accept(movie, next)
}

// guessPair is the legacy one-shot path: movie and actor validated together.
func (g *Game) guessPair(movieID int, actorName string) Result {
	g.total++

	candidates := g.resolve(actorName)
	if len(candidates) == 0 {
		g.incIncorrect()
		return Result{Message: fmt.Sprintf("I couldn't find an actor matching %q. Try the autocomplete.", actorName)}
	}

	movie, next, ok := g.validateAndAdvance(movieID, candidates)
	if !ok {
		g.incIncorrect()
		connected := false
		for _, candidate := range candidates {
			if g.graph.HasEdge(g.current, candidate) {
				connected = true
				break
			}
		}
		if connected {
			return Result{Message: fmt.Sprintf(
				"%q doesn't connect %s and %s. They might have worked together in a different movie.",
				g.movieTitle(movieID), g.graph.Label(g.current), actorName)}
		}
		return Result{Message: fmt.Sprintf(
			"%s and %s aren't directly connected in this graph. Try a different actor.",
			g.graph.Label(g.current), actorName)}
	}

	return g.accept(movie, next)
}

// accept commits a validated move and evaluates the win condition.
func (g *Game) accept(movie graph.Movie, next string) Result {
	g.current = next
	g.visited = append(g.visited, next)
	g.moviesUsed = append(g.moviesUsed, movie)
	g.pending = nil

	if g.current == g.target {
		g.state = CompletedWin
		return Result{Success: true, Message: fmt.Sprintf("Connected to %s — you win!", g.graph.Label(g.current))}
	}
	g.state = AwaitingMove
	return Result{Success: true, Message: fmt.Sprintf("Valid move to %s.", g.graph.Label(g.current))}
}

// GiveUp concedes the game. It counts as a loss: the incorrect counter jumps
// to its budget and the session terminates. Calling it on a finished game is
// a no-op failure.
func (g *Game) GiveUp() (bool, string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Terminal() {
		return false, "Game is already complete."
	}

	g.state = CompletedGaveUp
	g.incorrect = g.maxIncorrect
	g.gaveUp = true
	g.pending = nil
	return true, "You gave up. Game over."
}

// Swap exchanges the start and target actors. Legal only before the first
// completed move; a pending movie guess is discarded. Counters are unchanged,
// so swapping twice on a fresh session is the identity.
func (g *Game) Swap() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.moviesUsed) > 0 {
		return ErrMoveAlreadyMade
	}

	g.start, g.target = g.target, g.start
	g.current = g.start
	g.visited = []string{g.start}
	g.pending = nil
	if !g.state.Terminal() {
		g.state = AwaitingMove
	}
	return nil
}

// incIncorrect bumps the incorrect counter and terminates the game when the
// budget is exhausted.
func (g *Game) incIncorrect() {
	g.incorrect++
	if g.incorrect >= g.maxIncorrect {
		g.state = CompletedLoss
	}
}

// movieTitle resolves a movie id to a title for failure messages: movies
// already played, then the index, then edge metadata, then a placeholder.
func (g *Game) movieTitle(movieID int) string {
	for _, m := range g.moviesUsed {
		if m.ID == movieID {
			return m.Title
		}
	}
	if g.index != nil {
		if info, ok := g.index.Movie(movieID); ok {
			return info.Title
		}
	}
	title := ""
	g.graph.ForEachEdge(func(_, _ string, movies []graph.Movie) {
		if title != "" {
			return
		}
		for _, m := range movies {
			if m.ID == movieID {
				title = m.Title
				return
			}
		}
	})
	if title != "" {
		return title
	}
	return fmt.Sprintf("Movie #%d", movieID)
}

// Snapshot is a consistent copy of the observable session state.
type Snapshot struct {
	Start            string
	Target           string
	Current          string
	Visited          []string
	MoviesUsed       []graph.Movie
	Pending          *graph.Movie
	State            State
	Completed        bool
	GaveUp           bool
	TotalGuesses     int
	IncorrectGuesses int
	MaxIncorrect     int
}

// Snapshot returns a copy of the session state taken under the session lock.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		Start:            g.start,
		Target:           g.target,
		Current:          g.current,
		Visited:          append([]string(nil), g.visited...),
		MoviesUsed:       append([]graph.Movie(nil), g.moviesUsed...),
		State:            g.state,
		Completed:        g.state.Terminal(),
		GaveUp:           g.gaveUp,
		TotalGuesses:     g.total,
		IncorrectGuesses: g.incorrect,
		MaxIncorrect:     g.maxIncorrect,
	}
	if g.pending != nil {
		pending := *g.pending
		snap.Pending = &pending
	}
	return snap
}
