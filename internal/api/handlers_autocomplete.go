// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package api

import "net/http"

// AutocompleteActors suggests playable actors whose normalized name contains
// the query.
func (h *Handler) AutocompleteActors(w http.ResponseWriter, r *http.Request) {
	if !h.state.Ready {
		respondNotReady(w)
		return
	}

	q, limit, err := queryParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"query":   q,
		"results": h.state.Catalog.SearchActors(h.state.Graph, q, limit),
	})
}

// AutocompleteMovies suggests movies whose normalized title contains the
// query.
func (h *Handler) AutocompleteMovies(w http.ResponseWriter, r *http.Request) {
	if !h.state.Ready {
		respondNotReady(w)
		return
	}

	q, limit, err := queryParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"query":   q,
		"results": h.state.Catalog.SearchMovies(q, limit),
	})
}
