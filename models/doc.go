// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, description, options, expiration
  - VoteRequest: option, email

# Response Types

Types for JSON responses:

  - CreatePollResponse: message, poll_id, admin_key
  - VoteResponse: message
  - ResultsResponse: title, description, results, status
  - ClosePollResponse: closed_at, results
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: poll content, lifecycle state, tallies, and voter set
  - Collection: all polls keyed by ID; the unit of persistence
  - Status: open/closed enum with strict JSON round-tripping

# Invariants

The rest of the codebase maintains:

  - Results keys always equal the Options set
  - Voters holds each normalized email at most once
  - Status only ever moves open → closed
*/
package models
