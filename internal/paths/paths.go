// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package paths

import (
	"errors"

	"github.com/tomtom215/movielinks/internal/graph"
)

// EnumerationCap bounds how many shortest paths are materialized per query.
const EnumerationCap = 100

// ErrNoPath is returned when the two actors are not connected at all.
var ErrNoPath = errors.New("no path exists between the actors")

// AllShortest enumerates shortest paths (equal minimal hop count) from start
// to target, capped at limit. The trivial start == target case yields the
// single-node path.
//
// Enumeration is deterministic: BFS layers and the predecessor expansion both
// follow the graph's neighbor insertion order.
func AllShortest(g *graph.Graph, start, target string, limit int) ([][]string, error) {
	if !g.HasNode(start) || !g.HasNode(target) {
		return nil, ErrNoPath
	}
	if start == target {
		return [][]string{{start}}, nil
	}
	if limit <= 0 {
		limit = EnumerationCap
	}

	// BFS from start recording distances and, per node, every predecessor
	// lying on some shortest path.
	dist := map[string]int{start: 0}
	preds := make(map[string][]string)
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if d, found := dist[target]; found && dist[u] >= d {
			// At or past the target layer; no further shortest path edges.
			break
		}
		for _, v := range g.Neighbors(u) {
			dv, seen := dist[v]
			switch {
			case !seen:
				dist[v] = dist[u] + 1
				preds[v] = append(preds[v], u)
				queue = append(queue, v)
			case dv == dist[u]+1:
				preds[v] = append(preds[v], u)
			}
		}
	}

	if _, found := dist[target]; !found {
		return nil, ErrNoPath
	}

	// Walk the predecessor DAG from the target back to the start, emitting
	// paths in predecessor order until the cap.
	var out [][]string
	stack := []string{target}
	var walk func(node string) bool
	walk = func(node string) bool {
		if node == start {
			path := make([]string, len(stack))
			for i, id := range stack {
				path[len(stack)-1-i] = id
			}
			out = append(out, path)
			return len(out) < limit
		}
		for _, p := range preds[node] {
			stack = append(stack, p)
			more := walk(p)
			stack = stack[:len(stack)-1]
			if !more {
				return false
			}
		}
		return true
	}
	walk(target)

	return out, nil
}

// PathPopularity scores a path by summing, over its consecutive actor pairs,
// the popularity of the most popular movie on that edge. Edges without movie
// metadata contribute zero.
func PathPopularity(g *graph.Graph, path []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		if m, ok := graph.MostPopular(g.EdgeMovies(path[i], path[i+1])); ok {
			total += m.Popularity
		}
	}
	return total
}

// BestByPopularity returns the path with the highest popularity score. Ties
// keep the earliest path in enumeration order. The input must be non-empty.
func BestByPopularity(g *graph.Graph, candidates [][]string) []string {
	best := candidates[0]
	bestScore := PathPopularity(g, best)
	for _, p := range candidates[1:] {
		if score := PathPopularity(g, p); score > bestScore {
			best, bestScore = p, score
		}
	}
	return best
}

// Segment reifies one hop of a path: the most popular connector on the edge
// plus the actor it leads to.
type Segment struct {
	Movie graph.Movie
	Actor string
}

// Segments converts a path into hop segments. Edges with no movie metadata
// are skipped, matching the response contract.
func Segments(g *graph.Graph, path []string) []Segment {
	var out []Segment
	for i := 0; i+1 < len(path); i++ {
		m, ok := graph.MostPopular(g.EdgeMovies(path[i], path[i+1]))
		if !ok {
			continue
		}
		out = append(out, Segment{Movie: m, Actor: path[i+1]})
	}
	return out
}
