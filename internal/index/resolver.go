// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package index

import (
	"strings"

	"github.com/tomtom215/movielinks/internal/graph"
	"github.com/tomtom215/movielinks/internal/normalize"
)

// ResolveLimit caps the number of candidates a resolver call returns.
const ResolveLimit = 50

// resolveLoose implements the shared exact-then-contains lookup: an exact hit
// on the normalized key wins outright; otherwise keys are scanned in catalog
// insertion order collecting every key containing the query as a substring.
// Within a key the stored order is preserved; across keys, first encountered
// wins. Results are capped at ResolveLimit.
func resolveLoose[T any](query string, keys []string, byNorm map[string][]T) []T {
	k := normalize.String(query)
	if vals, ok := byNorm[k]; ok {
		if len(vals) > ResolveLimit {
			vals = vals[:ResolveLimit]
		}
		out := make([]T, len(vals))
		copy(out, vals)
		return out
	}

	var out []T
	for _, key := range keys {
		if !strings.Contains(key, k) {
			continue
		}
		out = append(out, byNorm[key]...)
		if len(out) >= ResolveLimit {
			break
		}
	}
	if len(out) > ResolveLimit {
		out = out[:ResolveLimit]
	}
	return out
}

// ResolveActors maps a user-supplied actor name to candidate actor node ids.
func (c *Catalog) ResolveActors(name string) []string {
	return resolveLoose(name, c.actorNormKeys, c.actorByNorm)
}

// ResolveMovies maps a user-supplied movie title to candidate movie ids.
func (c *Catalog) ResolveMovies(title string) []int {
	return resolveLoose(title, c.movieNormKeys, c.movieByNorm)
}

// ActorMatch is one actor autocomplete result.
type ActorMatch struct {
	Name   string `json:"name"`
	Image  string `json:"image,omitempty"`
	TMDBID int    `json:"tmdb_id"`
}

// MovieMatch is one movie autocomplete result.
type MovieMatch struct {
	Title   string `json:"title"`
	Image   string `json:"image,omitempty"`
	MovieID int    `json:"movie_id"`
}

// SearchActors returns up to limit playable actors whose normalized name
// contains the normalized query, in catalog order. Actors outside the
// playable graph are skipped.
func (c *Catalog) SearchActors(g *graph.Graph, query string, limit int) []ActorMatch {
	needle := normalize.String(query)
	out := make([]ActorMatch, 0, limit)
	for _, a := range c.Actors {
		if !strings.Contains(a.NormName, needle) {
			continue
		}
		n, ok := g.Node(a.ID)
		if ok && !n.InPlayableGraph {
			continue
		}
		out = append(out, ActorMatch{Name: a.Name, Image: a.Image, TMDBID: a.TMDBID})
		if len(out) >= limit {
			break
		}
	}
	return out
}

// SearchMovies returns up to limit movies whose normalized title contains the
// normalized query, in catalog order.
func (c *Catalog) SearchMovies(query string, limit int) []MovieMatch {
	needle := normalize.String(query)
	out := make([]MovieMatch, 0, limit)
	for _, m := range c.Movies {
		if !strings.Contains(m.NormTitle, needle) {
			continue
		}
		out = append(out, MovieMatch{Title: m.Title, Image: m.Image, MovieID: m.MovieID})
		if len(out) >= limit {
			break
		}
	}
	return out
}
