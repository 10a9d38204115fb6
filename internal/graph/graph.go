// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is an actor in the co-star graph. Node identifiers have the form
// "actor_<tmdb-id>".
type Node struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	ProfilePath     string `json:"profile_path,omitempty"`
	Image           string `json:"image,omitempty"`
	TMDBID          int    `json:"tmdb_id"`
	InPlayableGraph bool   `json:"in_playable_graph"`
	InStartingPool  bool   `json:"in_starting_pool"`
}

// Movie is a single movie connector on a co-star edge: a movie both endpoint
// actors appeared in. Edge movie lists are sorted by popularity descending and
// truncated to at most 100 entries by the build pipeline.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path,omitempty"`
	Popularity  float64 `json:"popularity"`
	CastSize    int     `json:"cast_size"`
	ReleaseDate string  `json:"release_date,omitempty"`
}

// Graph is the in-memory actor-actor co-star graph. It is built once at load
// time and read-only thereafter, so all queries are safe for concurrent use
// without synchronization.
//
// Node and neighbor ordering is the artifact's insertion order. Several
// consumers (daily puzzle sampling, shortest-path enumeration) rely on that
// ordering being stable across processes loading the same artifact.
type Graph struct {
	nodes     map[string]*Node
	order     []string
	neighbors map[string][]string
	edges     map[string][]Movie
	edgeCount int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		neighbors: make(map[string][]string),
		edges:     make(map[string][]Movie),
	}
}

// edgeKey canonicalizes an unordered actor pair into a single map key.
func edgeKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// AddNode inserts a node. A node with a duplicate identifier replaces the
// stored attributes but keeps the original insertion position.
func (g *Graph) AddNode(n Node) {
	if _, exists := g.nodes[n.ID]; !exists {
		g.order = append(g.order, n.ID)
	}
	stored := n
	g.nodes[n.ID] = &stored
}

// AddEdge inserts an undirected edge carrying the given movie connectors.
// Unknown endpoints are created implicitly so a partially enriched artifact
// still loads. Re-adding an existing edge replaces its movie list.
func (g *Graph) AddEdge(u, v string, movies []Movie) {
	if u == v {
		return
	}
	for _, id := range []string{u, v} {
		if _, ok := g.nodes[id]; !ok {
			g.AddNode(Node{ID: id, Type: "actor", Name: labelFromID(id)})
		}
	}
	key := edgeKey(u, v)
	if _, exists := g.edges[key]; !exists {
		g.neighbors[u] = append(g.neighbors[u], v)
		g.neighbors[v] = append(g.neighbors[v], u)
		g.edgeCount++
	}
	g.edges[key] = movies
}

// Node returns the node with the given identifier.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether the identifier names a node in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether a and b are directly connected.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.edges[edgeKey(a, b)]
	return ok
}

// EdgeMovies returns the movie connectors on the edge between a and b, or nil
// when no such edge exists. The returned slice is shared; callers must not
// mutate it.
func (g *Graph) EdgeMovies(a, b string) []Movie {
	return g.edges[edgeKey(a, b)]
}

// Neighbors returns the actors directly connected to id, in insertion order.
// The returned slice is shared; callers must not mutate it.
func (g *Graph) Neighbors(id string) []string {
	return g.neighbors[id]
}

// NodeIDs returns all node identifiers in insertion order. The returned slice
// is shared; callers must not mutate it.
func (g *Graph) NodeIDs() []string {
	return g.order
}

// NodesWhere returns the identifiers of nodes matching the predicate, in
// insertion order.
func (g *Graph) NodesWhere(pred func(*Node) bool) []string {
	var out []string
	for _, id := range g.order {
		if pred(g.nodes[id]) {
			out = append(out, id)
		}
	}
	return out
}

// StartingPool returns the curated subset of actors eligible as game and
// puzzle endpoints, in insertion order.
func (g *Graph) StartingPool() []string {
	return g.NodesWhere(func(n *Node) bool { return n.InStartingPool })
}

// PlayableActors returns the actors eligible for autocomplete and runtime
// queries, in insertion order.
func (g *Graph) PlayableActors() []string {
	return g.NodesWhere(func(n *Node) bool { return n.InPlayableGraph })
}

// ForEachEdge visits every undirected edge exactly once, in node insertion
// order (u before its later-inserted neighbors).
func (g *Graph) ForEachEdge(fn func(u, v string, movies []Movie)) {
	seen := make(map[string]struct{}, g.edgeCount)
	for _, u := range g.order {
		for _, v := range g.neighbors[u] {
			key := edgeKey(u, v)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			fn(u, v, g.edges[key])
		}
	}
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Label returns the display name for a node, falling back to the trailing
// identifier segment for nodes without a name attribute.
func (g *Graph) Label(id string) string {
	if n, ok := g.nodes[id]; ok && n.Name != "" {
		return n.Name
	}
	return labelFromID(id)
}

// TMDBID extracts the external catalog identifier from a node id of the form
// "actor_<tmdb-id>". The stored tmdb_id attribute takes precedence when set.
func (g *Graph) TMDBID(id string) (int, error) {
	if n, ok := g.nodes[id]; ok && n.TMDBID != 0 {
		return n.TMDBID, nil
	}
	parts := strings.SplitN(id, "_", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("node id %q has no external id segment", id)
	}
	tmdbID, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("node id %q: %w", id, err)
	}
	return tmdbID, nil
}

func labelFromID(id string) string {
	if i := strings.LastIndex(id, "_"); i >= 0 {
		return id[i+1:]
	}
	return id
}
