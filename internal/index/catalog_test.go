// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/movielinks/internal/graph"
)

func testGraph() *graph.Graph {
	g := graph.New()
	g.AddNode(graph.Node{ID: "actor_1", Type: "actor", Name: "Penélope Cruz", TMDBID: 1, InPlayableGraph: true, InStartingPool: true})
	g.AddNode(graph.Node{ID: "actor_2", Type: "actor", Name: "Javier Bardem", TMDBID: 2, InPlayableGraph: true, InStartingPool: true})
	g.AddNode(graph.Node{ID: "actor_3", Type: "actor", Name: "Hidden Extra", TMDBID: 3, InPlayableGraph: false})
	g.AddEdge("actor_1", "actor_2", []graph.Movie{
		{ID: 100, Title: "Vicky Cristina Barcelona", PosterPath: "/vcb.jpg", Popularity: 30, ReleaseDate: "2008-08-15"},
	})
	g.AddEdge("actor_2", "actor_3", []graph.Movie{
		{ID: 101, Title: "Hamlet", Popularity: 5, ReleaseDate: "1996-12-25"},
	})
	return g
}

func testIndex() *graph.ActorMovieIndex {
	return &graph.ActorMovieIndex{
		Movies: map[int]graph.MovieInfo{
			100: {ID: 100, Title: "Vicky Cristina Barcelona", Popularity: 30, PosterPath: "/vcb.jpg", ReleaseDate: "2008-08-15"},
			101: {ID: 101, Title: "Hamlet", Popularity: 5, ReleaseDate: "1996-12-25"},
			102: {ID: 102, Title: "Hamlet", Popularity: 3, PosterPath: "/hamlet00.jpg", ReleaseDate: "2000-05-12"},
			103: {ID: 103, Title: "Uncredited Gem", Popularity: 1, ReleaseDate: "2011-01-01"},
		},
		ActorMovies: map[int][]graph.Credit{
			1: {{MovieID: 100, CastOrder: 0, Title: "Vicky Cristina Barcelona"}},
			2: {{MovieID: 100, CastOrder: 1, Title: "Vicky Cristina Barcelona"}, {MovieID: 101, CastOrder: 0, Title: "Hamlet"}},
		},
	}
}

func TestBuildCatalogs(t *testing.T) {
	c := Build(testGraph(), testIndex())

	require.Len(t, c.Actors, 3)
	assert.Equal(t, "penelope cruz", c.Actors[0].NormName)

	// Edge movies first, then supplemental index movies in ascending id order.
	ids := make([]int, 0, len(c.Movies))
	for _, m := range c.Movies {
		ids = append(ids, m.MovieID)
	}
	assert.Equal(t, []int{100, 101, 102, 103}, ids)
}

func TestTitleDisambiguation(t *testing.T) {
	c := Build(testGraph(), testIndex())

	titles := map[int]string{}
	for _, m := range c.Movies {
		titles[m.MovieID] = m.Title
	}
	assert.Equal(t, "Hamlet (1996)", titles[101])
	assert.Equal(t, "Hamlet (2000)", titles[102])
	assert.Equal(t, "Vicky Cristina Barcelona", titles[100], "unique titles stay bare")
}

func TestResolveActors(t *testing.T) {
	c := Build(testGraph(), testIndex())

	assert.Equal(t, []string{"actor_1"}, c.ResolveActors("Penélope Cruz"))
	assert.Equal(t, []string{"actor_1"}, c.ResolveActors("penelope cruz"))
	assert.Equal(t, []string{"actor_1"}, c.ResolveActors("cruz"), "substring fallback")
	assert.Empty(t, c.ResolveActors("nobody at all"))
}

func TestResolveMovies(t *testing.T) {
	c := Build(testGraph(), testIndex())

	assert.Equal(t, []int{100}, c.ResolveMovies("vicky cristina barcelona"))
	got := c.ResolveMovies("hamlet")
	assert.ElementsMatch(t, []int{101, 102}, got)
}

func TestResolveCap(t *testing.T) {
	g := graph.New()
	for i := 0; i < 80; i++ {
		g.AddNode(graph.Node{
			ID:              nodeID(i),
			Type:            "actor",
			Name:            "Common Name " + string(rune('a'+i%26)) + string(rune('a'+i/26)),
			TMDBID:          i,
			InPlayableGraph: true,
		})
	}
	c := Build(g, nil)
	assert.Len(t, c.ResolveActors("common name"), ResolveLimit)
}

func nodeID(i int) string {
	return "actor_" + string(rune('0'+i/10)) + string(rune('0'+i%10))
}

func TestSearchActorsFiltersPlayable(t *testing.T) {
	g := testGraph()
	c := Build(g, testIndex())

	matches := c.SearchActors(g, "e", 10)
	for _, m := range matches {
		assert.NotEqual(t, "Hidden Extra", m.Name)
	}

	matches = c.SearchActors(g, "javier", 10)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].TMDBID)

	assert.Len(t, c.SearchActors(g, "a", 1), 1, "limit honored")
}

func TestSearchMovies(t *testing.T) {
	c := Build(testGraph(), testIndex())

	matches := c.SearchMovies("hamlet", 10)
	require.Len(t, matches, 2)
	assert.Equal(t, "Hamlet (1996)", matches[0].Title)

	assert.Empty(t, c.SearchMovies("zzz", 10))
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://image.tmdb.org/t/p/w185/abc.jpg", ImageURL("/abc.jpg", ProfileSize))
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", ImageURL("/abc.jpg", PosterSize))
	assert.Equal(t, "", ImageURL("", PosterSize))
}
