// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "fmt"

// Status is the poll lifecycle state. A poll starts open and can only
// move to closed; there is no transition back.
type Status int

const (
	StatusOpen Status = iota
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusClosed:
		return "closed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalJSON encodes the status as its lowercase string form.
func (s Status) MarshalJSON() ([]byte, error) {
	switch s {
	case StatusOpen:
		return []byte(`"open"`), nil
	case StatusClosed:
		return []byte(`"closed"`), nil
	}
	return nil, fmt.Errorf("unknown poll status %d", int(s))
}

// UnmarshalJSON decodes "open" or "closed" and rejects anything else,
// so a corrupt store surfaces at load time instead of as silent state.
func (s *Status) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"open"`:
		*s = StatusOpen
	case `"closed"`:
		*s = StatusClosed
	default:
		return fmt.Errorf("unknown poll status %s", data)
	}
	return nil
}
