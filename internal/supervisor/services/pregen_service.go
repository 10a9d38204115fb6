// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tomtom215/movielinks/internal/logging"
	"github.com/tomtom215/movielinks/internal/puzzle"
)

// PregenService generates the daily puzzle shortly after midnight in the
// puzzle time zone, so the first player of the day never waits on selection
// and the pick is persisted before traffic arrives. It also generates the
// current day's puzzle on startup.
type PregenService struct {
	selector *puzzle.Selector
	loc      *time.Location
}

// NewPregenService wraps puzzle pregeneration as a supervised service.
func NewPregenService(selector *puzzle.Selector, loc *time.Location) *PregenService {
	if loc == nil {
		loc = time.UTC
	}
	return &PregenService{selector: selector, loc: loc}
}

// Serve implements suture.Service.
func (p *PregenService) Serve(ctx context.Context) error {
	p.generate()

	c := cron.New(cron.WithLocation(p.loc))
	// Five minutes past midnight leaves room for clock skew around the date
	// boundary.
	if _, err := c.AddFunc("5 0 * * *", p.generate); err != nil {
		return err
	}
	c.Start()
	defer c.Stop()

	<-ctx.Done()
	return ctx.Err()
}

func (p *PregenService) generate() {
	key := puzzle.TodayKey(time.Now(), p.loc)
	if _, err := p.selector.DailyPair(key); err != nil {
		logging.Error().Err(err).Str("puzzle_id", key).Msg("Daily puzzle pregeneration failed")
		return
	}
	logging.Info().Str("puzzle_id", key).Msg("Daily puzzle ready")
}

// String implements fmt.Stringer for supervisor logs.
func (p *PregenService) String() string {
	return "puzzle-pregen"
}
