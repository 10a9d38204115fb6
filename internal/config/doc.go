// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package config loads the server configuration via Koanf v2 with layered
// sources (highest priority wins):
//
//   - Environment variables (GRAPH_PATH, CORS_ORIGINS, ENVIRONMENT, ...)
//   - Optional config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// Only explicitly mapped environment variables participate; everything else
// in the process environment is ignored.
package config
