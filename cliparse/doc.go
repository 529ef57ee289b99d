// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4380)
  - StoreKind: "file", "sqlite" or "postgres" (default: file)
  - DataFile: Path for the file store (default: data.json)
  - DatabaseURL: Connection string for the SQL stores
  - AdminKeySalt: Secret for admin key HMAC (required)
  - SweepInterval: How often the expiration sweeper runs (default: 1m)
  - StrictOptions: Reject votes for unrecognized options

# CLI Flags

	-p              Server port
	-s              Store kind
	-f              Data file path
	-d              Database URL
	-sweep          Sweep interval
	-strict-options Strict option checking
	-admin-salt     Admin key salt

# Environment Variables

Flags fall back to environment variables, which themselves can come
from a .env file (loaded via joho/godotenv when present):

	PORT           → -p
	STORE_KIND     → -s
	DATA_FILE      → -f
	DATABASE_URL   → -d
	SWEEP_INTERVAL → -sweep
	STRICT_OPTIONS → -strict-options
	ADMIN_KEY_SALT → -admin-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided for the sqlite and postgres stores
  - ADMIN_KEY_SALT must always be provided
*/
package cliparse
