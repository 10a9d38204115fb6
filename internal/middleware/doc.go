// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package middleware provides plain net/http middleware shared across the
// router: Prometheus request instrumentation and security response headers.
// CORS and rate limiting come from the Chi ecosystem and are wired in the
// api package.
package middleware
