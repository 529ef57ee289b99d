// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/danielhkuo/pollbooth/models"
)

// SQL persists each poll as its own keyed row, with the poll encoded as
// JSON in the data column. Save replaces the whole table in a single
// transaction, which keeps the load/save contract identical to the file
// store while letting deployments point at PostgreSQL (lib/pq) or
// SQLite (modernc.org/sqlite).
type SQL struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    data TEXT NOT NULL
);
`

// NewSQL creates the schema if needed and returns the store. Safe to
// call multiple times.
func NewSQL(db *sql.DB) (*SQL, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQL{db: db}, nil
}

func (s *SQL) Load() (*models.Collection, error) {
	rows, err := s.db.Query("SELECT id, data FROM poll")
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	c := models.NewCollection()
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan poll row: %w", err)
		}

		var p models.Poll
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse poll %s: %w", id, err)
		}
		c.Polls[id] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read poll rows: %w", err)
	}
	return c, nil
}

func (s *SQL) Save(c *models.Collection) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM poll"); err != nil {
		return fmt.Errorf("failed to clear polls: %w", err)
	}

	for id, p := range c.Polls {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to encode poll %s: %w", id, err)
		}
		if _, err := tx.Exec("INSERT INTO poll (id, data) VALUES ($1, $2)", id, string(data)); err != nil {
			return fmt.Errorf("failed to insert poll %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
