// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package graph

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

// artifact is the on-disk shape of the graph file produced by the offline
// build pipeline.
type artifact struct {
	Nodes []artifactNode `json:"nodes"`
	Edges []artifactEdge `json:"edges"`
}

// artifactNode mirrors Node but keeps in_playable_graph as a pointer: older
// artifacts predate the flag, and absent means playable.
type artifactNode struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	ProfilePath     string `json:"profile_path"`
	Image           string `json:"image"`
	TMDBID          int    `json:"tmdb_id"`
	InPlayableGraph *bool  `json:"in_playable_graph"`
	InStartingPool  bool   `json:"in_starting_pool"`
}

type artifactEdge struct {
	U      string  `json:"u"`
	V      string  `json:"v"`
	Movies []Movie `json:"movies"`
}

// Load reads the graph artifact at path and builds the in-memory graph.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph artifact: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("decode graph artifact %s: %w", path, err)
	}

	g := New()
	for _, an := range art.Nodes {
		n := Node{
			ID:              an.ID,
			Type:            an.Type,
			Name:            an.Name,
			ProfilePath:     an.ProfilePath,
			Image:           an.Image,
			TMDBID:          an.TMDBID,
			InPlayableGraph: an.InPlayableGraph == nil || *an.InPlayableGraph,
			InStartingPool:  an.InStartingPool,
		}
		if n.Type == "" {
			n.Type = "actor"
		}
		g.AddNode(n)
	}
	for _, e := range art.Edges {
		g.AddEdge(e.U, e.V, e.Movies)
	}
	return g, nil
}

// MovieInfo is the per-movie record of the actor-movie index.
type MovieInfo struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Popularity  float64 `json:"popularity"`
	VoteCount   int     `json:"vote_count"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	CastSize    int     `json:"cast_size"`
}

// Credit is one filmography entry: an actor's appearance in a movie, with the
// 0-based billing position captured by the build pipeline.
type Credit struct {
	MovieID   int    `json:"movie_id"`
	CastOrder int    `json:"cast_order"`
	VoteCount int    `json:"vote_count"`
	Title     string `json:"title"`
	Language  string `json:"original_language,omitempty"`
	Character string `json:"character,omitempty"`
}

// ActorMovieIndex is the comprehensive side index supporting move validation
// beyond the truncated edge movie lists: every movie known to the build, and
// every actor's full filmography keyed by external (TMDb) actor id.
type ActorMovieIndex struct {
	Movies      map[int]MovieInfo `json:"movies"`
	ActorMovies map[int][]Credit  `json:"actor_movies"`
}

// LoadIndex reads the actor-movie index artifact at path.
func LoadIndex(path string) (*ActorMovieIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read actor-movie index: %w", err)
	}

	var ix ActorMovieIndex
	if err := json.Unmarshal(data, &ix); err != nil {
		return nil, fmt.Errorf("decode actor-movie index %s: %w", path, err)
	}
	if ix.Movies == nil {
		ix.Movies = make(map[int]MovieInfo)
	}
	if ix.ActorMovies == nil {
		ix.ActorMovies = make(map[int][]Credit)
	}
	return &ix, nil
}

// IndexPathFor derives the actor-movie index path from the graph artifact
// path: the extension is replaced by an "_actor_movie_index" suffix with the
// same extension, matching the build pipeline's output naming.
func IndexPathFor(graphPath string) string {
	ext := filepath.Ext(graphPath)
	return strings.TrimSuffix(graphPath, ext) + "_actor_movie_index" + ext
}

// Movie returns the index record for a movie id.
func (ix *ActorMovieIndex) Movie(id int) (MovieInfo, bool) {
	info, ok := ix.Movies[id]
	return info, ok
}

// HasMovie reports whether the index knows the movie id.
func (ix *ActorMovieIndex) HasMovie(id int) bool {
	_, ok := ix.Movies[id]
	return ok
}

// ActorHasMovie reports whether the filmography of the actor with the given
// external id contains the movie.
func (ix *ActorMovieIndex) ActorHasMovie(tmdbID, movieID int) bool {
	for _, credit := range ix.ActorMovies[tmdbID] {
		if credit.MovieID == movieID {
			return true
		}
	}
	return false
}

// Connector converts an index record into an edge movie connector.
func (info MovieInfo) Connector(id int) Movie {
	return Movie{
		ID:          id,
		Title:       info.Title,
		PosterPath:  info.PosterPath,
		Popularity:  info.Popularity,
		CastSize:    info.CastSize,
		ReleaseDate: info.ReleaseDate,
	}
}

// MostPopular returns the most popular connector in a non-empty movie list.
// Ties keep the earliest entry.
func MostPopular(movies []Movie) (Movie, bool) {
	if len(movies) == 0 {
		return Movie{}, false
	}
	best := movies[0]
	for _, m := range movies[1:] {
		if m.Popularity > best.Popularity {
			best = m
		}
	}
	return best, true
}
