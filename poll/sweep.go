// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"time"

	"github.com/danielhkuo/pollbooth/eventlog"
	"github.com/danielhkuo/pollbooth/models"
)

// Sweep closes every open poll whose expiration boundary is strictly
// before now, emitting a poll_closed event per transition. Polls that
// are already closed or not yet expired are left untouched. The return
// value tells the caller whether anything needs persisting, so running
// Sweep twice with the same now is a no-op the second time.
func Sweep(c *models.Collection, now time.Time, events eventlog.Logger) bool {
	changed := false
	for id, p := range c.Polls {
		if p.Status != models.StatusOpen {
			continue
		}
		if now.After(p.ExpirationDate) {
			p.Status = models.StatusClosed
			changed = true
			events.Log("poll_closed", "Poll ID "+id+" expired")
		}
	}
	return changed
}
