// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package services

import (
	"context"
	"time"

	"github.com/tomtom215/movielinks/internal/logging"
	"github.com/tomtom215/movielinks/internal/metrics"
	"github.com/tomtom215/movielinks/internal/registry"
)

// SweeperService periodically evicts expired game sessions. Creation-time
// eviction alone leaves dead sessions pinned whenever no new games arrive,
// so the sweeper runs on its own interval.
type SweeperService struct {
	registry *registry.Registry
	interval time.Duration
}

// NewSweeperService wraps the registry sweep as a supervised service.
func NewSweeperService(reg *registry.Registry, interval time.Duration) *SweeperService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &SweeperService{registry: reg, interval: interval}
}

// Serve implements suture.Service.
func (s *SweeperService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			removed := s.registry.Sweep()
			if removed > 0 {
				metrics.GamesEvicted.Add(float64(removed))
				logging.Info().Int("removed", removed).Msg("Swept expired game sessions")
			}
			metrics.ActiveGames.Set(float64(s.registry.Len()))
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *SweeperService) String() string {
	return "session-sweeper"
}
