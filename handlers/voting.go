// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/eventlog"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/poll"
	"github.com/danielhkuo/pollbooth/store"
)

type VotingHandler struct {
	st     *store.Guard
	cfg    cliparse.Config
	events eventlog.Logger
}

func NewVotingHandler(st *store.Guard, cfg cliparse.Config, events eventlog.Logger) *VotingHandler {
	return &VotingHandler{st: st, cfg: cfg, events: events}
}

// CastVote handles POST /polls/:id/vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Check-and-record runs inside one guarded load-mutate-save cycle.
	err := h.st.Update(func(c *models.Collection) (bool, error) {
		p, ok := c.Polls[pollID]
		if !ok {
			return false, poll.ErrNotFound
		}
		if err := poll.CastVote(p, req.Option, req.Email, h.cfg.StrictOptions, h.events); err != nil {
			return false, err
		}
		return true, nil
	})

	var invalidEmail *poll.InvalidEmailError
	switch {
	case err == nil:
		// fall through to success response
	case errors.Is(err, poll.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll with ID "+pollID+" not found")
		return
	case errors.Is(err, poll.ErrPollClosed):
		middleware.ErrorResponse(w, http.StatusForbidden, "Poll closed.")
		return
	case errors.Is(err, poll.ErrMissingEmail):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email is required")
		return
	case errors.As(err, &invalidEmail):
		middleware.ErrorResponse(w, http.StatusBadRequest, invalidEmail.Error())
		return
	case errors.Is(err, poll.ErrDuplicateVote):
		middleware.ErrorResponse(w, http.StatusConflict, "Email already casted a vote.")
		return
	case errors.Is(err, poll.ErrUnknownOption):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	default:
		slog.Error("failed to record vote", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "poll_id", pollID, "option", req.Option)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Message: "Vote submitted",
	})
}
