// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package auth derives and verifies the per-poll admin key used by the
// administrative close endpoint. Keys are HMAC-SHA256 over the poll ID
// with a server-side salt, so they need no storage and survive restarts.
package auth
