// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package index

import (
	"sort"

	"github.com/tomtom215/movielinks/internal/graph"
	"github.com/tomtom215/movielinks/internal/normalize"
)

// ActorEntry is one autocomplete catalog row for an actor.
type ActorEntry struct {
	ID       string
	Name     string
	NormName string
	Image    string
	TMDBID   int
}

// MovieEntry is one autocomplete catalog row for a movie, deduplicated by
// movie id across all edges that reference it.
type MovieEntry struct {
	MovieID     int
	Title       string
	NormTitle   string
	Image       string
	PosterPath  string
	releaseDate string
}

// Catalog holds the autocomplete catalogs and the normalized-name lookup maps
// built once at load time. Like the graph, it is immutable after Build and
// safe for concurrent readers.
type Catalog struct {
	Actors []ActorEntry
	Movies []MovieEntry

	actorByNorm   map[string][]string
	actorNormKeys []string
	movieByNorm   map[string][]int
	movieNormKeys []string
}

// Build constructs the catalogs and lookup maps from the graph and the
// optional actor-movie index. Movies come primarily from edge connector
// lists; the index supplements coverage with movies that never made it onto
// a surviving edge, plus posters and release years for disambiguation.
func Build(g *graph.Graph, ix *graph.ActorMovieIndex) *Catalog {
	c := &Catalog{
		actorByNorm: make(map[string][]string),
		movieByNorm: make(map[string][]int),
	}

	for _, id := range g.NodeIDs() {
		n, _ := g.Node(id)
		name := g.Label(id)
		image := n.Image
		if image == "" {
			image = ImageURL(n.ProfilePath, ProfileSize)
		}
		c.Actors = append(c.Actors, ActorEntry{
			ID:       id,
			Name:     name,
			NormName: normalize.String(name),
			Image:    image,
			TMDBID:   n.TMDBID,
		})
	}

	seen := make(map[int]int) // movie id -> position in c.Movies
	addMovie := func(id int, title, posterPath, releaseDate string) {
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = len(c.Movies)
		c.Movies = append(c.Movies, MovieEntry{
			MovieID:     id,
			Title:       title,
			NormTitle:   normalize.String(title),
			Image:       ImageURL(posterPath, ProfileSize),
			PosterPath:  posterPath,
			releaseDate: releaseDate,
		})
	}

	g.ForEachEdge(func(_, _ string, movies []graph.Movie) {
		for _, m := range movies {
			addMovie(m.ID, m.Title, m.PosterPath, m.ReleaseDate)
		}
	})

	if ix != nil {
		// Map iteration order is unspecified; sort ids so the supplemental
		// tail of the catalog is identical on every load.
		extra := make([]int, 0, len(ix.Movies))
		for id := range ix.Movies {
			extra = append(extra, id)
		}
		sort.Ints(extra)
		for _, id := range extra {
			info := ix.Movies[id]
			addMovie(id, info.Title, info.PosterPath, info.ReleaseDate)
		}
		// Backfill release years for edge-sourced entries that lack one.
		for i := range c.Movies {
			if c.Movies[i].releaseDate == "" {
				if info, ok := ix.Movie(c.Movies[i].MovieID); ok {
					c.Movies[i].releaseDate = info.ReleaseDate
				}
			}
		}
	}

	c.disambiguateTitles()

	for _, a := range c.Actors {
		if _, ok := c.actorByNorm[a.NormName]; !ok {
			c.actorNormKeys = append(c.actorNormKeys, a.NormName)
		}
		c.actorByNorm[a.NormName] = append(c.actorByNorm[a.NormName], a.ID)
	}
	for _, m := range c.Movies {
		if _, ok := c.movieByNorm[m.NormTitle]; !ok {
			c.movieNormKeys = append(c.movieNormKeys, m.NormTitle)
		}
		c.movieByNorm[m.NormTitle] = append(c.movieByNorm[m.NormTitle], m.MovieID)
	}

	return c
}

// disambiguateTitles appends " (YYYY)" to catalog titles shared by multiple
// distinct movie ids, using the release-date year. Entries without a known
// year keep the bare title.
func (c *Catalog) disambiguateTitles() {
	byTitle := make(map[string][]int)
	for i, m := range c.Movies {
		byTitle[m.NormTitle] = append(byTitle[m.NormTitle], i)
	}
	for _, positions := range byTitle {
		if len(positions) < 2 {
			continue
		}
		for _, i := range positions {
			year := releaseYear(c.Movies[i].releaseDate)
			if year == "" {
				continue
			}
			c.Movies[i].Title += " (" + year + ")"
			c.Movies[i].NormTitle = normalize.String(c.Movies[i].Title)
		}
	}
}

// releaseYear extracts the leading YYYY from a release date string.
func releaseYear(date string) string {
	if len(date) < 4 {
		return ""
	}
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return date[:4]
}
