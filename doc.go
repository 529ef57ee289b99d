// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollbooth API server.

Pollbooth is a minimal poll-management service: clients create polls
with fixed options and an expiration date, voters cast one vote per
poll per email address, and a background sweeper closes polls once they
expire.

# Starting the Server

The server needs an admin key salt; everything else has defaults:

	ADMIN_KEY_SALT=secret go run .

Or with flags:

	go run . -p 4380 -f data.json -admin-salt secret

# Configuration

Required settings:

  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 4380)
  - STORE_KIND (-s): file, sqlite or postgres (default: file)
  - DATA_FILE (-f): Poll data file for the file store (default: data.json)
  - DATABASE_URL (-d): Connection string for the SQL stores
  - SWEEP_INTERVAL (-sweep): Expiration sweep cadence (default: 1m)
  - STRICT_OPTIONS (-strict-options): Reject votes for unknown options

# Architecture

The server uses a handler-based architecture with dependency injection:

  - poll: lifecycle and voting-integrity core (builder, vote validator,
    sweeper pass, results projection)
  - store: load/save contract plus file, SQL, and in-memory backends,
    all accessed through one mutual-exclusion guard
  - sweeper: recurring job closing expired polls
  - handlers: HTTP request handlers (polls, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - auth: Admin key generation and validation
  - eventlog: fire-and-forget diagnostic event hook
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
