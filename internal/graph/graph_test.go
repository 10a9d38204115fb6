// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestGraph() *Graph {
	g := New()
	g.AddNode(Node{ID: "actor_1", Type: "actor", Name: "Alpha", TMDBID: 1, InPlayableGraph: true, InStartingPool: true})
	g.AddNode(Node{ID: "actor_2", Type: "actor", Name: "Beta", TMDBID: 2, InPlayableGraph: true, InStartingPool: true})
	g.AddNode(Node{ID: "actor_3", Type: "actor", Name: "Gamma", TMDBID: 3, InPlayableGraph: true})
	g.AddEdge("actor_1", "actor_2", []Movie{
		{ID: 100, Title: "First Film", Popularity: 42.0},
		{ID: 101, Title: "Second Film", Popularity: 7.5},
	})
	g.AddEdge("actor_2", "actor_3", []Movie{
		{ID: 102, Title: "Third Film", Popularity: 3.1},
	})
	return g
}

func TestGraphQueries(t *testing.T) {
	g := buildTestGraph()

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	assert.True(t, g.HasEdge("actor_1", "actor_2"))
	assert.True(t, g.HasEdge("actor_2", "actor_1"), "edges are undirected")
	assert.False(t, g.HasEdge("actor_1", "actor_3"))

	movies := g.EdgeMovies("actor_2", "actor_1")
	require.Len(t, movies, 2)
	assert.Equal(t, 100, movies[0].ID)

	assert.Equal(t, []string{"actor_1", "actor_3"}, g.Neighbors("actor_2"))
	assert.Nil(t, g.EdgeMovies("actor_1", "actor_3"))
}

func TestGraphInsertionOrder(t *testing.T) {
	g := buildTestGraph()

	assert.Equal(t, []string{"actor_1", "actor_2", "actor_3"}, g.NodeIDs())
	assert.Equal(t, []string{"actor_1", "actor_2"}, g.StartingPool())
	assert.Equal(t, []string{"actor_1", "actor_2", "actor_3"}, g.PlayableActors())
}

func TestGraphSelfLoopIgnored(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "actor_1", Type: "actor"})
	g.AddEdge("actor_1", "actor_1", nil)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraphLabelAndTMDBID(t *testing.T) {
	g := buildTestGraph()

	assert.Equal(t, "Alpha", g.Label("actor_1"))
	assert.Equal(t, "99", g.Label("actor_99"), "unknown node falls back to id segment")

	id, err := g.TMDBID("actor_1")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, err = g.TMDBID("actor_42")
	require.NoError(t, err)
	assert.Equal(t, 42, id, "unknown node parses the id segment")

	_, err = g.TMDBID("bogus")
	assert.Error(t, err)
}

func TestChecksumStability(t *testing.T) {
	g1 := buildTestGraph()
	g2 := buildTestGraph()

	c1, err := g1.Checksum()
	require.NoError(t, err)
	c2, err := g2.Checksum()
	require.NoError(t, err)
	assert.Equal(t, c1, c2, "identical structure yields identical checksum")
	assert.Len(t, c1, 64)

	// Movie metadata does not participate in the fingerprint.
	g2.AddEdge("actor_1", "actor_2", []Movie{{ID: 999, Title: "Other", Popularity: 1}})
	c3, err := g2.Checksum()
	require.NoError(t, err)
	assert.Equal(t, c1, c3)

	// Structure does.
	g2.AddEdge("actor_1", "actor_3", nil)
	c4, err := g2.Checksum()
	require.NoError(t, err)
	assert.NotEqual(t, c1, c4)
}

func TestMostPopular(t *testing.T) {
	_, ok := MostPopular(nil)
	assert.False(t, ok)

	m, ok := MostPopular([]Movie{
		{ID: 1, Popularity: 5},
		{ID: 2, Popularity: 9},
		{ID: 3, Popularity: 9},
	})
	require.True(t, ok)
	assert.Equal(t, 2, m.ID, "ties keep the earliest entry")
}

func TestLoadArtifacts(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "test_graph.json")
	graphJSON := `{
		"nodes": [
			{"id": "actor_1", "type": "actor", "name": "Alpha", "tmdb_id": 1, "in_playable_graph": true, "in_starting_pool": true},
			{"id": "actor_2", "name": "Beta", "tmdb_id": 2, "in_playable_graph": true}
		],
		"edges": [
			{"u": "actor_1", "v": "actor_2", "movies": [{"id": 100, "title": "First Film", "popularity": 42.0, "cast_size": 12, "release_date": "1999-03-31"}]}
		]
	}`
	require.NoError(t, os.WriteFile(graphPath, []byte(graphJSON), 0o644))

	g, err := Load(graphPath)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())

	n, ok := g.Node("actor_2")
	require.True(t, ok)
	assert.Equal(t, "actor", n.Type, "missing type defaults to actor")

	indexPath := IndexPathFor(graphPath)
	assert.Equal(t, filepath.Join(dir, "test_graph_actor_movie_index.json"), indexPath)

	indexJSON := `{
		"movies": {"100": {"id": 100, "title": "First Film", "popularity": 42.0, "vote_count": 900, "cast_size": 12, "release_date": "1999-03-31"}},
		"actor_movies": {"1": [{"movie_id": 100, "cast_order": 0, "vote_count": 900, "title": "First Film"}]}
	}`
	require.NoError(t, os.WriteFile(indexPath, []byte(indexJSON), 0o644))

	ix, err := LoadIndex(indexPath)
	require.NoError(t, err)
	assert.True(t, ix.HasMovie(100))
	assert.True(t, ix.ActorHasMovie(1, 100))
	assert.False(t, ix.ActorHasMovie(2, 100))

	info, ok := ix.Movie(100)
	require.True(t, ok)
	conn := info.Connector(100)
	assert.Equal(t, "First Film", conn.Title)
	assert.Equal(t, 42.0, conn.Popularity)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	_, err = LoadIndex(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
