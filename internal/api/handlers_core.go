// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package api

import (
	"net/http"
	"time"
)

// Health reports process liveness and dataset readiness. It never returns an
// error status; load balancers gate on the ready flag.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"ready":   h.state.Ready,
		"service": "Movielinks API",
		"uptime":  time.Since(h.startTime).Seconds(),
	})
}

// Meta returns dataset totals and the structural checksum used by fleet-diff
// tooling to compare deployments.
func (h *Handler) Meta(w http.ResponseWriter, r *http.Request) {
	if !h.state.Ready {
		respondNotReady(w)
		return
	}

	g := h.state.Graph
	respondJSON(w, http.StatusOK, map[string]any{
		"ready":                true,
		"actors":               g.NodeCount(),
		"playable_actors":      len(g.PlayableActors()),
		"starting_pool_actors": len(g.StartingPool()),
		"movies":               len(h.state.Catalog.Movies),
		"edges":                g.EdgeCount(),
		"checksum":             h.state.Checksum,
	})
}

// Routes lists the API surface as JSON. Registered only outside production,
// standing in for generated docs pages.
func (h *Handler) Routes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"service": "Movielinks API",
		"routes": []string{
			"GET /health",
			"GET /meta",
			"GET /metrics",
			"GET /api/daily-pair",
			"POST /api/game",
			"POST /api/game/{id}/guess",
			"POST /api/game/{id}/swap-actors",
			"POST /api/game/{id}/give-up",
			"GET /api/game/{id}/optimal-path",
			"GET /api/game/{id}/optimal-paths",
			"GET /autocomplete/actors",
			"GET /autocomplete/movies",
		},
	})
}
