// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "global_actor_actor_graph.gpickle", cfg.Graph.Path)
	assert.Equal(t, "America/Chicago", cfg.Puzzle.Timezone)
	assert.Equal(t, 2*time.Hour, cfg.Games.TTL)
	assert.Equal(t, 5000, cfg.Games.MaxGames)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Security.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("GRAPH_PATH", "/data/graph.json")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ORIGINS", "https://play.example.com, https://www.example.com")
	t.Setenv("GAME_TTL", "1h")
	t.Setenv("MAX_GAMES", "100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/data/graph.json", cfg.Graph.Path)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://play.example.com", "https://www.example.com"}, cfg.Security.CORSOrigins)
	assert.Equal(t, time.Hour, cfg.Games.TTL)
	assert.Equal(t, 100, cfg.Games.MaxGames)
}

func TestLegacyGraphPathVariable(t *testing.T) {
	t.Setenv("CINELINKS_GRAPH_PATH", "/legacy/graph.json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/legacy/graph.json", cfg.Graph.Path)
}

func TestUnmappedEnvIgnored(t *testing.T) {
	t.Setenv("RANDOM_VARIABLE", "noise")

	_, err := Load()
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults valid", func(*Config) {}, true},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, false},
		{"empty graph path", func(c *Config) { c.Graph.Path = "" }, false},
		{"zero ttl", func(c *Config) { c.Games.TTL = 0 }, false},
		{"zero max games", func(c *Config) { c.Games.MaxGames = 0 }, false},
		{"bad timezone", func(c *Config) { c.Puzzle.Timezone = "Mars/Olympus" }, false},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, false},
		{"zero rate limit but disabled", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
