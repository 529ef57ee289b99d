// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput covers missing or malformed creation fields,
	// including an expiration that does not parse as YYYY-MM-DD.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means the requested poll ID is not in the collection.
	ErrNotFound = errors.New("poll not found")

	// ErrPollClosed rejects votes on a poll that is no longer open.
	ErrPollClosed = errors.New("poll closed")

	// ErrMissingEmail rejects votes with no email at all.
	ErrMissingEmail = errors.New("email is required")

	// ErrDuplicateVote rejects a second vote from the same normalized email.
	ErrDuplicateVote = errors.New("email already casted a vote")

	// ErrUnknownOption rejects votes for unrecognized options in strict mode.
	ErrUnknownOption = errors.New("unknown option")
)

// InvalidEmailError reports a syntactically invalid email address with
// a human-readable reason from the validator.
type InvalidEmailError struct {
	Reason string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email: %s", e.Reason)
}
