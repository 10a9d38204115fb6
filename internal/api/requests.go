// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
)

// CreateGameRequest optionally pins the start and target actors. Both must be
// provided together; with neither, the server picks a random pair from the
// starting pool.
type CreateGameRequest struct {
	StartActorID  string `json:"startActorId" validate:"omitempty,max=64"`
	TargetActorID string `json:"targetActorId" validate:"omitempty,max=64"`
}

// GuessRequest carries one progressive or one-shot guess. Field presence
// drives dispatch, so both fields are pointers.
type GuessRequest struct {
	MovieID   *int    `json:"movieId" validate:"omitempty,min=1"`
	ActorName *string `json:"actorName" validate:"omitempty,min=1,max=200"`
}

// decodeBody decodes a JSON request body into dst. An empty body leaves dst
// at its zero value, matching clients that POST without a payload.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// queryParams extracts and bounds the autocomplete query parameters: q is
// required with at most 100 characters, limit defaults to 10 and clamps to
// [1, 50].
func queryParams(r *http.Request) (q string, limit int, err error) {
	q = r.URL.Query().Get("q")
	if q == "" {
		return "", 0, fmt.Errorf("query parameter q is required")
	}
	if len(q) > 100 {
		return "", 0, fmt.Errorf("query parameter q exceeds 100 characters")
	}

	limit = 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			return "", 0, fmt.Errorf("limit must be an integer")
		}
		limit = parsed
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 50 {
		limit = 50
	}
	return q, limit, nil
}
