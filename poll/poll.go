// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/pollbooth/models"
)

// expirationLayout is the only accepted expiration format. The parsed
// value is midnight UTC of the stated day; a poll expires once the
// current instant is strictly after that boundary.
const expirationLayout = "2006-01-02"

// New builds a fresh poll with a random ID, zeroed tallies for every
// option, an empty voter set, and open status. It has no side effects;
// persisting the poll is the caller's job.
func New(title, description string, options []string, expiration string) (string, *models.Poll, error) {
	if strings.TrimSpace(title) == "" {
		return "", nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(options) == 0 {
		return "", nil, fmt.Errorf("%w: at least one option is required", ErrInvalidInput)
	}

	expiresAt, err := time.ParseInLocation(expirationLayout, expiration, time.UTC)
	if err != nil {
		return "", nil, fmt.Errorf("%w: expiration must be a YYYY-MM-DD date", ErrInvalidInput)
	}

	results := make(map[string]int, len(options))
	for _, option := range options {
		results[option] = 0
	}

	p := &models.Poll{
		Title:          title,
		Description:    description,
		Options:        append([]string(nil), options...),
		CreatedAt:      time.Now().UTC(),
		ExpirationDate: expiresAt,
		Status:         models.StatusOpen,
		Results:        results,
		Voters:         []string{},
	}

	return uuid.NewString(), p, nil
}

// Report projects a poll's public state. No mutation, no validation.
func Report(p *models.Poll) models.ResultsResponse {
	return models.ResultsResponse{
		Title:       p.Title,
		Description: p.Description,
		Results:     p.Results,
		Status:      p.Status,
	}
}
