// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package eventlog is the diagnostic event hook consumed by the poll
// core. Events like "register_failed" and "poll_closed" flow through a
// small Logger interface so callers can plug in slog, a collector, or
// nothing at all in tests.
package eventlog
