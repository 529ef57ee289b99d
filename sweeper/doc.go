// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package sweeper runs the recurring expiration job that closes polls
// past their expiration date. It is the in-process replacement for an
// external cron entry: one goroutine, a ticker, and the same guarded
// store cycle the handlers use.
package sweeper
