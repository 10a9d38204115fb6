// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package game implements the per-session move-validation state machine.
//
// A session traverses the co-star graph from a start actor toward a target
// actor. Guessing is progressive: the player first names a movie the current
// actor appeared in, then an actor who shares that movie; a legacy one-shot
// path accepts both at once. Rule violations (wrong movie, unconnected actor,
// unresolvable name) are returned as structured results and burn one of the
// incorrect-guess budget; exhausting the budget or giving up terminates the
// session.
//
// All mutation happens under the session's own lock. The engine performs no
// I/O and never touches shared mutable state, so any number of sessions run
// concurrently against the same read-only graph.
package game
