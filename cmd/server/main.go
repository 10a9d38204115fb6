// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package main is the entry point for the Movielinks game server.
//
// Movielinks is the online service for an actor-connection game: players
// chain from a start actor to a target actor by naming a movie and the next
// co-star, validated against an in-memory co-star graph built offline.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: environment variables and optional config file (Koanf v2)
//  2. Graph: load the co-star graph and actor-movie index artifacts
//  3. Indexes: autocomplete catalogs, name lookup maps, structural checksum
//  4. Puzzle state: BadgerDB-backed daily puzzle persistence
//  5. Session registry: TTL-bounded in-memory game sessions
//  6. HTTP server: Chi router with CORS, rate limiting, and Prometheus metrics
//
// All services run under a suture supervision tree; SIGINT/SIGTERM trigger a
// graceful shutdown with a bounded drain timeout.
//
// # Configuration
//
// Key environment variables (see internal/config for the full set):
//
//	GRAPH_PATH         graph artifact path (index derived from it)
//	PUZZLE_STATE_PATH  BadgerDB directory for daily puzzle state
//	PUZZLE_TIMEZONE    civil time zone keying daily puzzles
//	CORS_ORIGINS       comma-separated allowed origins
//	ENVIRONMENT        dev (default) or production
//	HTTP_HOST, HTTP_PORT
//
// # Degraded Mode
//
// A missing or unreadable graph artifact does not abort startup: the server
// accepts requests and answers 503 on graph-dependent endpoints until the
// artifacts appear and the process is restarted. /health always reports.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/movielinks/internal/api"
	"github.com/tomtom215/movielinks/internal/config"
	"github.com/tomtom215/movielinks/internal/graph"
	"github.com/tomtom215/movielinks/internal/index"
	"github.com/tomtom215/movielinks/internal/logging"
	"github.com/tomtom215/movielinks/internal/puzzle"
	"github.com/tomtom215/movielinks/internal/registry"
	"github.com/tomtom215/movielinks/internal/supervisor"
	"github.com/tomtom215/movielinks/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("graph_path", cfg.Graph.Path).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Movielinks")

	state := loadState(cfg)

	puzzleLoc, err := time.LoadLocation(cfg.Puzzle.Timezone)
	if err != nil {
		logging.Fatal().Err(err).Str("timezone", cfg.Puzzle.Timezone).Msg("Invalid puzzle timezone")
	}

	// Puzzle persistence and selector only exist over a loaded graph.
	var daily *puzzle.Selector
	var puzzleStore *puzzle.BadgerStore
	if state.Ready {
		if cfg.Puzzle.StatePath != "" {
			puzzleStore, err = puzzle.OpenBadger(cfg.Puzzle.StatePath)
			if err != nil {
				logging.Warn().Err(err).Str("path", cfg.Puzzle.StatePath).
					Msg("Puzzle state store unavailable, daily puzzles will not survive restarts")
			}
		}
		if puzzleStore != nil {
			defer func() {
				if err := puzzleStore.Close(); err != nil {
					logging.Error().Err(err).Msg("Error closing puzzle state store")
				}
			}()
			daily = puzzle.NewSelector(state.Graph, puzzleStore)
		} else {
			daily = puzzle.NewSelector(state.Graph, nil)
		}
	}

	reg := registry.New(cfg.Games.TTL, cfg.Games.MaxGames)

	handler := api.NewHandler(cfg, state, reg, daily, puzzleLoc)
	chiMw := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})
	router := api.NewRouter(handler, chiMw)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddBackgroundService(services.NewSweeperService(reg, cfg.Games.SweepInterval))
	if daily != nil && cfg.Puzzle.PregenEnabled {
		tree.AddBackgroundService(services.NewPregenService(daily, puzzleLoc))
		logging.Info().Msg("Daily puzzle pregeneration enabled")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// loadState reads the graph artifacts and builds the immutable dataset. Any
// failure leaves the server in not-ready mode instead of aborting startup.
func loadState(cfg *config.Config) *api.State {
	g, err := graph.Load(cfg.Graph.Path)
	if err != nil {
		logging.Warn().Err(err).Str("path", cfg.Graph.Path).
			Msg("Graph artifact unavailable, serving in not-ready mode")
		return &api.State{}
	}

	indexPath := graph.IndexPathFor(cfg.Graph.Path)
	ix, err := graph.LoadIndex(indexPath)
	if err != nil {
		// The index is required for progressive guessing; without it the
		// dataset is incomplete and the service stays not-ready.
		logging.Warn().Err(err).Str("path", indexPath).
			Msg("Actor-movie index unavailable, serving in not-ready mode")
		return &api.State{}
	}

	checksum, err := g.Checksum()
	if err != nil {
		logging.Warn().Err(err).Msg("Checksum computation failed, serving in not-ready mode")
		return &api.State{}
	}

	catalog := index.Build(g, ix)
	logging.Info().
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Int("playable_actors", len(g.PlayableActors())).
		Int("starting_pool", len(g.StartingPool())).
		Int("movies_indexed", len(catalog.Movies)).
		Str("checksum", checksum).
		Msg("Graph loaded")

	return &api.State{
		Graph:    g,
		Index:    ix,
		Catalog:  catalog,
		Checksum: checksum,
		Ready:    true,
	}
}
