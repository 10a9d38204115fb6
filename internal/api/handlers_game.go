// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package api

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/movielinks/internal/game"
	"github.com/tomtom215/movielinks/internal/logging"
	"github.com/tomtom215/movielinks/internal/metrics"
	"github.com/tomtom215/movielinks/internal/registry"
)

// randomPairAttempts bounds how often CreateGame retries for a pair that is
// not directly connected before accepting any distinct pair.
const randomPairAttempts = 100

// CreateGame starts a new session with the given or a random actor pair.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	if !h.state.Ready {
		respondNotReady(w)
		return
	}

	var req CreateGameRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
		return
	}

	var start, target string
	switch {
	case req.StartActorID != "" && req.TargetActorID != "":
		if !h.state.Graph.HasNode(req.StartActorID) {
			respondError(w, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("Start actor not found: %s", req.StartActorID))
			return
		}
		if !h.state.Graph.HasNode(req.TargetActorID) {
			respondError(w, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("Target actor not found: %s", req.TargetActorID))
			return
		}
		start, target = req.StartActorID, req.TargetActorID
	case req.StartActorID != "" || req.TargetActorID != "":
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Provide both startActorId and targetActorId, or neither")
		return
	default:
		var err error
		start, target, err = h.randomPair()
		if err != nil {
			respondError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
			return
		}
	}

	session := game.New(h.state.Graph, h.state.Index, h.state.Catalog.ResolveActors, start, target)
	gameID := h.registry.Create(session)
	metrics.GamesCreated.Inc()
	metrics.ActiveGames.Set(float64(h.registry.Len()))

	logging.Ctx(r.Context()).Info().
		Str("game_id", gameID).
		Str("start", start).
		Str("target", target).
		Msg("Game created")

	respondJSON(w, http.StatusOK, map[string]any{
		"gameId":      gameID,
		"startActor":  h.actorNode(start),
		"targetActor": h.actorNode(target),
		"path":        h.gamePath(session.Snapshot()),
	})
}

// randomPair samples a distinct, preferably non-adjacent pair from the
// starting pool.
func (h *Handler) randomPair() (string, string, error) {
	pool := h.state.Graph.StartingPool()
	if len(pool) < 2 {
		return "", "", errors.New("Not enough starting actors")
	}

	var start, target string
	for i := 0; i < randomPairAttempts; i++ {
		start, target = samplePool(pool)
		if !h.state.Graph.HasEdge(start, target) {
			return start, target, nil
		}
	}
	// Every sampled pair was connected; accept the last distinct pair.
	return start, target, nil
}

func samplePool(pool []string) (string, string) {
	i := rand.Intn(len(pool))
	j := rand.Intn(len(pool) - 1)
	if j >= i {
		j++
	}
	return pool[i], pool[j]
}

// sessionFromRequest resolves the {id} route parameter into a live game.
func (h *Handler) sessionFromRequest(w http.ResponseWriter, r *http.Request) (*game.Game, bool) {
	id := chi.URLParam(r, "id")
	session, err := h.registry.Get(id)
	if errors.Is(err, registry.ErrNotFound) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Game not found")
		return nil, false
	}
	return session, true
}

// Guess processes one move: a movie, an actor, or a legacy movie+actor pair.
func (h *Handler) Guess(w http.ResponseWriter, r *http.Request) {
	if !h.state.Ready {
		respondNotReady(w)
		return
	}
	session, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req GuessRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
		return
	}

	result := session.Guess(req.MovieID, req.ActorName)
	metrics.RecordGuess(guessKind(req), result.Success)

	snap := session.Snapshot()
	respondJSON(w, http.StatusOK, map[string]any{
		"success": result.Success,
		"message": result.Message,
		"path":    h.gamePath(snap),
		"state":   gameState(snap),
	})
}

func guessKind(req GuessRequest) string {
	switch {
	case req.MovieID != nil && req.ActorName != nil:
		return "pair"
	case req.MovieID != nil:
		return "movie"
	case req.ActorName != nil:
		return "actor"
	default:
		return "empty"
	}
}

// SwapActors exchanges start and target before the first move.
func (h *Handler) SwapActors(w http.ResponseWriter, r *http.Request) {
	if !h.state.Ready {
		respondNotReady(w)
		return
	}
	session, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	if err := session.Swap(); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Cannot swap actors after making a move")
		return
	}

	snap := session.Snapshot()
	respondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     "Actors swapped successfully",
		"startActor":  h.actorNode(snap.Start),
		"targetActor": h.actorNode(snap.Target),
		"path":        h.gamePath(snap),
	})
}

// GiveUp concedes the session; it counts as a loss.
func (h *Handler) GiveUp(w http.ResponseWriter, r *http.Request) {
	if !h.state.Ready {
		respondNotReady(w)
		return
	}
	session, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	success, message := session.GiveUp()
	if !success {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, message)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": message,
		"state":   gameState(session.Snapshot()),
	})
}
