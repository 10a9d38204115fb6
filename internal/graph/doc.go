// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package graph holds the in-memory actor-actor co-star graph and its side
// index.
//
// Nodes are actors; an undirected edge between two actors carries the movies
// both appeared in, sorted by popularity descending and truncated to 100
// entries by the offline build pipeline. The actor-movie index supplements the
// truncated edge lists with full filmographies for move validation and
// autocomplete coverage.
//
// Both structures are produced by the offline build pipeline, loaded once at
// process start, and never mutated afterwards. Every query is therefore safe
// for concurrent readers without locking.
//
// The package also computes the structural checksum exposed via /meta, used
// by fleet-diff tooling to compare datasets across environments.
package graph
