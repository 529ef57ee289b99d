// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "github.com/danielhkuo/pollbooth/models"

// Store persists the poll collection wholesale. Load returns an empty
// collection when nothing has been saved yet, and must never hand back
// a partially written structure. Save replaces prior content durably.
type Store interface {
	Load() (*models.Collection, error)
	Save(*models.Collection) error
}
