// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/movielinks/internal/metrics"
	"github.com/tomtom215/movielinks/internal/paths"
)

// OptimalPath returns the single shortest path between the session's start
// and target, preferring the route whose edges carry the most popular movies.
// Callable on completed and conceded games.
func (h *Handler) OptimalPath(w http.ResponseWriter, r *http.Request) {
	if !h.state.Ready {
		respondNotReady(w)
		return
	}
	session, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}
	snap := session.Snapshot()

	started := time.Now()
	candidates, err := paths.AllShortest(h.state.Graph, snap.Start, snap.Target, paths.EnumerationCap)
	if errors.Is(err, paths.ErrNoPath) {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "No path exists")
		return
	}
	best := paths.BestByPopularity(h.state.Graph, candidates)
	metrics.PathComputeDuration.Observe(time.Since(started).Seconds())

	respondJSON(w, http.StatusOK, h.pathToResponse(snap.Start, snap.Target, best))
}

// OptimalPaths returns up to max_paths (clamped to 3) diverse shortest paths.
func (h *Handler) OptimalPaths(w http.ResponseWriter, r *http.Request) {
	if !h.state.Ready {
		respondNotReady(w)
		return
	}
	session, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}
	snap := session.Snapshot()

	maxPaths := paths.MaxDiversePaths
	if raw := r.URL.Query().Get("max_paths"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrCodeValidationFailed, "max_paths must be an integer")
			return
		}
		maxPaths = parsed
	}
	if maxPaths < 1 {
		maxPaths = 1
	}
	if maxPaths > paths.MaxDiversePaths {
		maxPaths = paths.MaxDiversePaths
	}

	started := time.Now()
	candidates, err := paths.AllShortest(h.state.Graph, snap.Start, snap.Target, paths.EnumerationCap)
	if errors.Is(err, paths.ErrNoPath) {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "No path exists")
		return
	}
	selected := paths.SelectDiverse(h.state.Graph, candidates, maxPaths)
	metrics.PathComputeDuration.Observe(time.Since(started).Seconds())

	responses := make([]GamePath, 0, len(selected))
	for _, p := range selected {
		responses = append(responses, h.pathToResponse(snap.Start, snap.Target, p))
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"paths": responses,
		"count": len(responses),
	})
}

// pathToResponse reifies an actor path into wire segments, picking the most
// popular connector per edge.
func (h *Handler) pathToResponse(start, target string, actorPath []string) GamePath {
	segments := make([]PathSegment, 0, len(actorPath))
	for _, seg := range paths.Segments(h.state.Graph, actorPath) {
		segments = append(segments, PathSegment{
			Movie: h.movieConnector(seg.Movie),
			Actor: h.actorNode(seg.Actor),
		})
	}
	return GamePath{
		StartActor:  h.actorNode(start),
		TargetActor: h.actorNode(target),
		Segments:    segments,
	}
}
