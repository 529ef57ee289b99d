// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP surface over the poll core.

Each handler translates a request into one core operation, runs it
inside a guarded load-mutate-save cycle against the store, and maps the
outcome to a status code:

  - invalid input        → 400
  - unknown poll ID      → 404
  - closed poll          → 403
  - duplicate vote       → 409
  - bad admin key        → 401

Handlers hold a *store.Guard, the parsed config, and the diagnostic
event logger; nothing here keeps state of its own.
*/
package handlers
