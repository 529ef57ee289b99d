// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/poll"
	"github.com/danielhkuo/pollbooth/store"
)

type ResultsHandler struct {
	st  *store.Guard
	cfg cliparse.Config
}

func NewResultsHandler(st *store.Guard, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{st: st, cfg: cfg}
}

// GetResults handles GET /polls/:id/results
// Tallies are public at all times, open or closed.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var report models.ResultsResponse
	err := h.st.View(func(c *models.Collection) error {
		p, ok := c.Polls[pollID]
		if !ok {
			return poll.ErrNotFound
		}
		report = poll.Report(p)
		return nil
	})

	if errors.Is(err, poll.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll with ID "+pollID+" not found")
		return
	}
	if err != nil {
		slog.Error("failed to load poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report)
}
