// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"net/mail"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NormalizeEmail validates the address syntactically (no deliverability
// or DNS checks) and returns the canonical lowercase form used as the
// voter's identity for duplicate detection.
func NormalizeEmail(raw string) (string, error) {
	if err := validate.Var(raw, "required,email"); err != nil {
		return "", &InvalidEmailError{Reason: "value is not a valid email address"}
	}

	// ParseAddress strips display names and comments, leaving the bare
	// addr-spec as the canonical form.
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return "", &InvalidEmailError{Reason: err.Error()}
	}

	return strings.ToLower(addr.Address), nil
}
