// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package paths

import "github.com/tomtom215/movielinks/internal/graph"

// Similarity weights: shared movies dominate shared intermediate actors.
const (
	movieWeight = 0.7
	actorWeight = 0.3
)

// MaxDiversePaths caps how many alternative paths a query may request.
const MaxDiversePaths = 3

// Similarity computes the weighted Jaccard similarity of two paths over
// (a) the most-popular movie picked per edge and (b) the intermediate actors
// strictly between the endpoints. The Jaccard of two empty sets is 0.
func Similarity(g *graph.Graph, p, q []string) float64 {
	movieJaccard := jaccard(pathMovieSet(g, p), pathMovieSet(g, q))
	actorJaccard := jaccard(intermediateSet(p), intermediateSet(q))
	return movieWeight*movieJaccard + actorWeight*actorJaccard
}

// SelectDiverse picks up to max paths from the candidate set. The seed is the
// highest-popularity path; each following pick is the candidate whose nearest
// selected neighbor (by minimum similarity) scores highest. When the
// candidate set fits within max, it is returned unchanged.
func SelectDiverse(g *graph.Graph, candidates [][]string, max int) [][]string {
	if max <= 0 {
		max = MaxDiversePaths
	}
	if len(candidates) <= max {
		return candidates
	}

	best := BestByPopularity(g, candidates)
	selected := [][]string{best}
	remaining := make([][]string, 0, len(candidates)-1)
	for _, p := range candidates {
		if !samePath(p, best) {
			remaining = append(remaining, p)
		}
	}

	for len(selected) < max && len(remaining) > 0 {
		bestIdx := 0
		bestScore := -1.0
		for i, candidate := range remaining {
			score := minSimilarity(g, candidate, selected)
			if score > bestScore {
				bestIdx, bestScore = i, score
			}
		}
		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return selected
}

// minSimilarity returns the candidate's similarity to its nearest neighbor in
// the selected set.
func minSimilarity(g *graph.Graph, candidate []string, selected [][]string) float64 {
	min := 2.0
	for _, s := range selected {
		if sim := Similarity(g, candidate, s); sim < min {
			min = sim
		}
	}
	return min
}

// pathMovieSet collects the most-popular movie id per edge of a path.
func pathMovieSet(g *graph.Graph, path []string) map[int]struct{} {
	out := make(map[int]struct{})
	for i := 0; i+1 < len(path); i++ {
		if m, ok := graph.MostPopular(g.EdgeMovies(path[i], path[i+1])); ok {
			out[m.ID] = struct{}{}
		}
	}
	return out
}

// intermediateSet collects the actors strictly between a path's endpoints.
func intermediateSet(path []string) map[string]struct{} {
	out := make(map[string]struct{})
	for i := 1; i+1 < len(path); i++ {
		out[path[i]] = struct{}{}
	}
	return out
}

func jaccard[K comparable](a, b map[K]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func samePath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
