// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package paths computes optimal routes through the co-star graph for hints
// and post-game reveals.
//
// All shortest paths between two actors are enumerated (capped for
// performance), then either reduced to the single path whose edges carry the
// most popular movies, or greedily widened into a small set of alternatives
// scored by weighted Jaccard similarity over shared movies and intermediate
// actors.
package paths
