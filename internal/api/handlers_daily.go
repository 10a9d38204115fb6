// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/movielinks/internal/logging"
	"github.com/tomtom215/movielinks/internal/puzzle"
)

// DailyPair returns today's puzzle pair. The key is the civil date in the
// configured puzzle time zone, so every caller worldwide sees the same pair
// for the same key.
func (h *Handler) DailyPair(w http.ResponseWriter, r *http.Request) {
	if !h.state.Ready || h.daily == nil {
		respondNotReady(w)
		return
	}

	puzzleID := puzzle.TodayKey(time.Now(), h.puzzleLoc)
	p, err := h.daily.DailyPair(puzzleID)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("puzzle_id", puzzleID).Msg("Daily puzzle selection failed")
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Could not generate daily puzzle")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"puzzleId":    puzzleID,
		"startActor":  h.actorNode(p.StartActor),
		"targetActor": h.actorNode(p.TargetActor),
	})
}
