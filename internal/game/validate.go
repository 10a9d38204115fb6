// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package game

import "github.com/tomtom215/movielinks/internal/graph"

// validateAndAdvance is the single validation primitive behind every
// state-mutating guess path. It walks the candidate actors in resolver order
// and accepts the first one that is a direct neighbor of the current actor
// and shares the movie with it.
//
// The actor-movie index is consulted first (both filmographies must list the
// movie); whenever the index does not accept the pair — missing index,
// unparseable node id, the movie absent from it, or a filmography that lacks
// the movie — the truncated edge connector list is scanned instead.
//
// On success it returns the movie connector and the accepted actor id. It
// does not mutate state; accept does.
func (g *Game) validateAndAdvance(movieID int, candidates []string) (graph.Movie, string, bool) {
	for _, candidate := range candidates {
		if !g.graph.HasEdge(g.current, candidate) {
			continue
		}

		if movie, ok := g.validateViaIndex(movieID, candidate); ok {
			return movie, candidate, true
		}

		for _, m := range g.graph.EdgeMovies(g.current, candidate) {
			if m.ID == movieID {
				return m, candidate, true
			}
		}
	}
	return graph.Movie{}, "", false
}

// validateViaIndex checks the full filmographies of the current and candidate
// actors for a shared appearance in the movie.
func (g *Game) validateViaIndex(movieID int, candidate string) (graph.Movie, bool) {
	if g.index == nil {
		return graph.Movie{}, false
	}
	info, ok := g.index.Movie(movieID)
	if !ok {
		return graph.Movie{}, false
	}

	currentID, err := g.graph.TMDBID(g.current)
	if err != nil {
		return graph.Movie{}, false
	}
	candidateID, err := g.graph.TMDBID(candidate)
	if err != nil {
		return graph.Movie{}, false
	}

	if !g.index.ActorHasMovie(currentID, movieID) || !g.index.ActorHasMovie(candidateID, movieID) {
		return graph.Movie{}, false
	}
	return info.Connector(movieID), true
}
