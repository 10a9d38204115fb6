// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package metrics defines the Prometheus instrumentation for the server:
// HTTP request counters and latencies, live session gauges, guess outcomes,
// daily puzzle generations, and path engine timings. All collectors register
// on the default registry and are served at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts HTTP requests by method, route pattern, and
	// status code.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movielinks_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	// APIRequestDuration observes request processing time.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movielinks_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// APIActiveRequests tracks in-flight requests.
	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movielinks_api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	// ActiveGames tracks live sessions in the registry.
	ActiveGames = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movielinks_active_games",
			Help: "Number of live game sessions in the registry",
		},
	)

	// GamesCreated counts sessions created since start.
	GamesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movielinks_games_created_total",
			Help: "Total number of game sessions created",
		},
	)

	// GamesEvicted counts expired sessions removed by the periodic sweep.
	// Sessions evicted inside registry Create (TTL or capacity) are not
	// counted.
	GamesEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movielinks_games_evicted_total",
			Help: "Total number of game sessions evicted",
		},
	)

	// GuessesTotal counts guesses by kind (movie, actor, pair) and outcome
	// (success, failure).
	GuessesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movielinks_guesses_total",
			Help: "Total number of guesses processed",
		},
		[]string{"kind", "outcome"},
	)

	// PuzzleGenerations counts daily puzzle picks; the fallback label marks
	// picks that waived the direct-edge exclusion.
	PuzzleGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movielinks_puzzle_generations_total",
			Help: "Total number of daily puzzles generated",
		},
		[]string{"fallback"},
	)

	// PathComputeDuration observes shortest-path enumeration and selection.
	PathComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movielinks_path_compute_duration_seconds",
			Help:    "Optimal path computation duration in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, path, status).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordGuess records one guess outcome.
func RecordGuess(kind string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	GuessesTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordPuzzleGeneration records one daily puzzle pick.
func RecordPuzzleGeneration(fallback bool) {
	label := "false"
	if fallback {
		label = "true"
	}
	PuzzleGenerations.WithLabelValues(label).Inc()
}
