// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Movielinks server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Graph    GraphConfig    `koanf:"graph"`
	Puzzle   PuzzleConfig   `koanf:"puzzle"`
	Games    GamesConfig    `koanf:"games"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// GraphConfig locates the offline build artifacts.
type GraphConfig struct {
	// Path is the graph artifact; the actor-movie index is loaded from the
	// sibling *_actor_movie_index path derived from it.
	Path string `koanf:"path"`
}

// PuzzleConfig holds daily-puzzle settings.
type PuzzleConfig struct {
	// StatePath is the BadgerDB directory for puzzle-state persistence.
	// Empty disables persistence (memory-only state).
	StatePath string `koanf:"state_path"`

	// Timezone is the IANA zone whose civil date keys daily puzzles.
	Timezone string `koanf:"timezone"`

	// PregenEnabled turns on the cron job that generates the puzzle shortly
	// after midnight instead of on the first request.
	PregenEnabled bool `koanf:"pregen_enabled"`
}

// GamesConfig bounds the session registry.
type GamesConfig struct {
	TTL           time.Duration `koanf:"ttl"`
	MaxGames      int           `koanf:"max_games"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all defaults applied. Defaults load
// first, then the optional config file, then environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			Timeout:     30 * time.Second,
			Environment: "dev",
		},
		Graph: GraphConfig{
			Path: "global_actor_actor_graph.gpickle",
		},
		Puzzle: PuzzleConfig{
			StatePath:     "./data/puzzle-state",
			Timezone:      "America/Chicago",
			PregenEnabled: false,
		},
		Games: GamesConfig{
			TTL:           2 * time.Hour,
			MaxGames:      5000,
			SweepInterval: 10 * time.Minute,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"http://localhost:5173"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// IsProduction reports whether the server runs in production mode, which
// disables the route-listing doc endpoint.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Graph.Path == "" {
		return fmt.Errorf("graph path must not be empty")
	}
	if c.Games.TTL <= 0 {
		return fmt.Errorf("game TTL must be positive, got %s", c.Games.TTL)
	}
	if c.Games.MaxGames < 1 {
		return fmt.Errorf("max games must be at least 1, got %d", c.Games.MaxGames)
	}
	if c.Games.SweepInterval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", c.Games.SweepInterval)
	}
	if _, err := time.LoadLocation(c.Puzzle.Timezone); err != nil {
		return fmt.Errorf("invalid puzzle timezone %q: %w", c.Puzzle.Timezone, err)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("rate limit requests must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("rate limit window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}
	return nil
}
