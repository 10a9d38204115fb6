// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/movielinks/internal/middleware"
)

// Router wires handlers and middleware into the Chi route tree.
type Router struct {
	handler *Handler
	chiMw   *ChiMiddleware
}

// NewRouter creates a router over the given handler set.
func NewRouter(handler *Handler, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMw: chiMw}
}

// Setup builds the full route tree.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestIDWithLogging())
	r.Use(RealIP)
	r.Use(Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(router.chiMw.CORS()) // global so OPTIONS preflight always answers

	h := router.handler

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Not found")
	})

	r.Get("/health", h.Health)
	r.Get("/meta", h.Meta)
	r.Handle("/metrics", promhttp.Handler())

	if h.cfg == nil || !h.cfg.IsProduction() {
		r.Get("/", h.Routes)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMw.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/daily-pair", h.DailyPair)
		r.Post("/game", h.CreateGame)

		r.Route("/game/{id}", func(r chi.Router) {
			r.Post("/guess", h.Guess)
			r.Post("/swap-actors", h.SwapActors)
			r.Post("/give-up", h.GiveUp)
			r.Get("/optimal-path", h.OptimalPath)
			r.Get("/optimal-paths", h.OptimalPaths)
		})
	})

	r.Route("/autocomplete", func(r chi.Router) {
		r.Use(router.chiMw.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/actors", h.AutocompleteActors)
		r.Get("/movies", h.AutocompleteMovies)
	})

	return r
}
