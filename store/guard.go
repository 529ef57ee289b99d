// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sync"

	"github.com/danielhkuo/pollbooth/models"
)

// Guard serializes every load-mutate-save cycle against a Store behind
// one mutex. All handler mutations go through Update.
type Guard struct {
	mu sync.Mutex
	s  Store
}

func NewGuard(s Store) *Guard {
	return &Guard{s: s}
}

// Update loads a fresh collection, applies fn, and saves the result
// when fn reports a change. fn's error aborts the cycle without saving.
func (g *Guard) Update(fn func(*models.Collection) (bool, error)) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, err := g.s.Load()
	if err != nil {
		return err
	}

	changed, err := fn(c)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return g.s.Save(c)
}

// View loads a fresh collection and applies fn read-only.
func (g *Guard) View(fn func(*models.Collection) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, err := g.s.Load()
	if err != nil {
		return err
	}
	return fn(c)
}
