// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll implements the poll lifecycle and voting-integrity core.

# Operations

  - New: build a poll from creation input (ID, zeroed tallies, open status)
  - CastVote: validate and record one vote, mutating the poll in place
  - Sweep: close every open poll past its expiration boundary
  - Report: read-only projection of a poll's public state

All four are synchronous transformations over in-memory values. They
never touch storage; callers load a collection, apply an operation, and
persist the result under one mutual-exclusion scope (see package store).

# Voting Integrity

Voter identity is the normalized email address: syntactically validated
(go-playground/validator), canonicalized, then lowercased, so
sandra@example.com and SaNDra@EXAMPle.com are the same voter. Each
identity votes at most once per poll, and votes are only accepted while
the poll is open.

# Expiration

A poll's expiration date is a calendar day; the boundary is midnight
UTC of that day, and the poll expires once the current instant is
strictly after it.
*/
package poll
