// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to handlers using Go 1.22+ method
routing on the standard ServeMux.

# Routes

	POST /polls              create a poll
	GET  /polls              list all polls keyed by ID
	POST /polls/{id}/vote    cast a vote
	GET  /polls/{id}/results public results projection
	POST /polls/{id}/close   administrative close (X-Admin-Key)
	GET  /health             liveness probe
	GET  /                   banner
*/
package router
