// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"fmt"
	"slices"

	"github.com/danielhkuo/pollbooth/eventlog"
	"github.com/danielhkuo/pollbooth/models"
)

// CastVote records one vote on p, mutating it in place. Checks run in
// order and stop at the first failure: poll open, email present, email
// syntactically valid, email not already in the voter set. On success
// the matching tally is incremented and the normalized email is
// appended to Voters.
//
// A vote for an option that is not in the poll's option set is accepted
// without touching any tally in lenient mode, still burning the voter's
// eligibility. Legacy deployments depend on that; strict mode turns it
// into ErrUnknownOption instead.
func CastVote(p *models.Poll, option, rawEmail string, strict bool, events eventlog.Logger) error {
	if p.Status != models.StatusOpen {
		return ErrPollClosed
	}

	if rawEmail == "" {
		events.Log("register_failed", "Missing email")
		return ErrMissingEmail
	}

	normalized, err := NormalizeEmail(rawEmail)
	if err != nil {
		events.Log("register_failed", "Invalid email format: "+rawEmail)
		return err
	}

	if slices.Contains(p.Voters, normalized) {
		events.Log("register_failed", "Duplicate email: "+rawEmail)
		return ErrDuplicateVote
	}

	if _, ok := p.Results[option]; ok {
		p.Results[option]++
	} else if strict {
		return fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}

	p.Voters = append(p.Voters, normalized)
	return nil
}
