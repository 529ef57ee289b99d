// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sweeper

import (
	"context"
	"log/slog"
	"time"

	"github.com/danielhkuo/pollbooth/eventlog"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/poll"
	"github.com/danielhkuo/pollbooth/store"
)

// Runner periodically closes expired polls against the shared store.
type Runner struct {
	st       *store.Guard
	interval time.Duration
	events   eventlog.Logger
}

func New(st *store.Guard, interval time.Duration, events eventlog.Logger) *Runner {
	return &Runner{st: st, interval: interval, events: events}
}

// Run sweeps on every tick until ctx is cancelled. A failed sweep is
// logged and retried on the next tick.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := r.Sweep(now.UTC()); err != nil {
				slog.Error("sweep failed", "error", err)
			}
		}
	}
}

// Sweep runs one guarded pass, persisting only when a poll changed.
func (r *Runner) Sweep(now time.Time) error {
	return r.st.Update(func(c *models.Collection) (bool, error) {
		return poll.Sweep(c, now, r.events), nil
	})
}
