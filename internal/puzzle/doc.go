// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package puzzle selects the deterministic daily start/target actor pair.
//
// A puzzle key is the civil date (YYYYMMDD) in the configured time zone. The
// first selection for a key seeds a dedicated RNG from the key's integer
// form and samples the starting pool under a sliding actor-reuse exclusion
// (20 days, shrinking to 15, 10, then none when the pool runs dry), accepting
// the first pair that is not directly connected. Picks and per-actor
// recent-use dates persist to a BadgerDB key-value store so restarts serve
// the same pair; persistence failures degrade to memory-only state rather
// than failing requests.
package puzzle
