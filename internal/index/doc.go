// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package index builds the load-time lookup structures over the actor graph:
// deduplicated actor and movie autocomplete catalogs, normalized name and
// title maps for the resolver, and TMDb thumbnail URL construction.
//
// Resolution is two-phase: an exact normalized-key hit wins, otherwise a
// substring scan over keys in catalog insertion order collects candidates up
// to a fixed cap. Autocomplete walks the catalogs directly so the response
// order tracks the artifact, not map iteration.
package index
