// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movielinks/internal/game"
	"github.com/tomtom215/movielinks/internal/graph"
	"github.com/tomtom215/movielinks/internal/index"
	"github.com/tomtom215/movielinks/internal/logging"
)

// Error codes for API error responses.
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// errorResponse is the error body shape for non-2xx responses.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ActorNode is the actor reference shape used in every response.
type ActorNode struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

// MovieConnector is the movie reference shape used in every response.
type MovieConnector struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	PosterURL *string `json:"posterUrl"`
}

// PathSegment pairs the movie used with the actor reached.
type PathSegment struct {
	Movie MovieConnector `json:"movie"`
	Actor ActorNode      `json:"actor"`
}

// GamePath is the traversal-so-far (or a computed optimal route).
type GamePath struct {
	StartActor   ActorNode       `json:"startActor"`
	TargetActor  ActorNode       `json:"targetActor"`
	Segments     []PathSegment   `json:"segments"`
	PendingMovie *MovieConnector `json:"pendingMovie,omitempty"`
}

// GameStateDTO summarizes session counters for game responses.
type GameStateDTO struct {
	Completed         bool `json:"completed"`
	TotalGuesses      int  `json:"totalGuesses"`
	MovesTaken        int  `json:"moves_taken"`
	IncorrectGuesses  int  `json:"incorrectGuesses"`
	RemainingAttempts int  `json:"remainingAttempts"`
	GaveUp            bool `json:"gaveUp,omitempty"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func respondError(w http.ResponseWriter, statusCode int, code, message string) {
	respondJSON(w, statusCode, errorResponse{Error: code, Message: message})
}

// respondNotReady answers 503 on graph-dependent endpoints while the dataset
// is missing or still loading.
func respondNotReady(w http.ResponseWriter) {
	respondJSON(w, http.StatusServiceUnavailable, map[string]string{
		"error":   "Graph not ready",
		"message": "The Movielinks data graph is still loading or missing. Please refresh in a few seconds.",
	})
}

func nullableURL(url string) *string {
	if url == "" {
		return nil
	}
	return &url
}

// actorNode shapes an actor reference from graph attributes.
func (h *Handler) actorNode(id string) ActorNode {
	node := ActorNode{ID: id, Name: h.state.Graph.Label(id)}
	if n, ok := h.state.Graph.Node(id); ok {
		image := n.Image
		if image == "" {
			image = index.ImageURL(n.ProfilePath, index.ProfileSize)
		}
		node.ImageURL = nullableURL(image)
	}
	return node
}

// movieConnector shapes a movie reference, falling back to the actor-movie
// index for posters missing from edge metadata.
func (h *Handler) movieConnector(m graph.Movie) MovieConnector {
	posterPath := m.PosterPath
	if posterPath == "" && h.state.Index != nil {
		if info, ok := h.state.Index.Movie(m.ID); ok {
			posterPath = info.PosterPath
		}
	}
	title := m.Title
	if title == "" {
		title = "Unknown"
	}
	return MovieConnector{
		ID:        m.ID,
		Title:     title,
		PosterURL: nullableURL(index.ImageURL(posterPath, index.PosterSize)),
	}
}

// gamePath converts a session snapshot into the wire path structure.
func (h *Handler) gamePath(snap game.Snapshot) GamePath {
	segments := make([]PathSegment, 0, len(snap.MoviesUsed))
	for i, movie := range snap.MoviesUsed {
		segments = append(segments, PathSegment{
			Movie: h.movieConnector(movie),
			Actor: h.actorNode(snap.Visited[i+1]),
		})
	}

	path := GamePath{
		StartActor:  h.actorNode(snap.Start),
		TargetActor: h.actorNode(snap.Target),
		Segments:    segments,
	}
	if snap.Pending != nil {
		pending := h.movieConnector(*snap.Pending)
		path.PendingMovie = &pending
	}
	return path
}

// gameState converts a session snapshot into the wire counters structure.
func gameState(snap game.Snapshot) GameStateDTO {
	return GameStateDTO{
		Completed:         snap.Completed,
		TotalGuesses:      snap.TotalGuesses,
		MovesTaken:        len(snap.MoviesUsed),
		IncorrectGuesses:  snap.IncorrectGuesses,
		RemainingAttempts: snap.MaxIncorrect - snap.IncorrectGuesses,
		GaveUp:            snap.GaveUp,
	}
}
