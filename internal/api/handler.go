// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package api

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/movielinks/internal/config"
	"github.com/tomtom215/movielinks/internal/graph"
	"github.com/tomtom215/movielinks/internal/index"
	"github.com/tomtom215/movielinks/internal/puzzle"
	"github.com/tomtom215/movielinks/internal/registry"
)

// State bundles the immutable dataset built at load time. Ready is false
// when the graph artifacts were missing or unreadable; graph-dependent
// endpoints then answer 503 while /health keeps serving.
type State struct {
	Graph    *graph.Graph
	Index    *graph.ActorMovieIndex
	Catalog  *index.Catalog
	Checksum string
	Ready    bool
}

// Handler carries the application context into the HTTP handlers: the loaded
// dataset, the session registry, and the daily puzzle selector. Handlers are
// constructed once in main; no package-level mutable state exists.
type Handler struct {
	cfg       *config.Config
	state     *State
	registry  *registry.Registry
	daily     *puzzle.Selector
	puzzleLoc *time.Location
	startTime time.Time
	validate  *validator.Validate
}

// NewHandler creates the handler set. The daily selector may be nil when the
// graph is not ready.
func NewHandler(cfg *config.Config, state *State, reg *registry.Registry, daily *puzzle.Selector, puzzleLoc *time.Location) *Handler {
	if state == nil {
		state = &State{}
	}
	if puzzleLoc == nil {
		puzzleLoc = time.UTC
	}
	return &Handler{
		cfg:       cfg,
		state:     state,
		registry:  reg,
		daily:     daily,
		puzzleLoc: puzzleLoc,
		startTime: time.Now(),
		validate:  validator.New(),
	}
}
