// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package api is the HTTP surface of the game server: a stateless dispatch
// layer over the game engine, the session registry, the daily puzzle
// selector, and the path engine.
//
// Rule failures (wrong movie, unconnected actor, unresolvable name) are
// delivered as HTTP 200 with success=false and a human-readable message;
// only system errors (unknown session, malformed payload, dataset not ready)
// map to HTTP error codes. While the graph artifacts are missing, all
// graph-dependent endpoints answer 503 and /health keeps reporting.
package api
