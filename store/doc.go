// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the poll collection.

The Store interface is a whole-document load/save contract: the full
collection goes in and out as one unit, and load(save(x)) == x for any
valid collection. Three implementations ship:

  - File: one indented JSON document, written atomically via temp file
    and rename (the default)
  - SQL: one JSON-encoded row per poll over database/sql, usable with
    PostgreSQL or SQLite drivers
  - Mem: in-memory test double

Guard wraps any Store with the single-writer discipline the voting core
assumes: one mutex around each load-mutate-save cycle. Handlers and the
sweeper only ever touch storage through a Guard.
*/
package store
