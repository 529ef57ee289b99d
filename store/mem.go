// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sync"

	"github.com/danielhkuo/pollbooth/models"
)

// Mem is an in-memory Store for tests. Load and Save deep-copy the
// collection so callers cannot mutate stored state behind its back.
type Mem struct {
	mu sync.Mutex
	c  *models.Collection
}

func NewMem() *Mem {
	return &Mem{c: models.NewCollection()}
}

func (m *Mem) Load() (*models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.c.Clone(), nil
}

func (m *Mem) Save(c *models.Collection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.c = c.Clone()
	return nil
}
