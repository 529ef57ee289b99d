// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/eventlog"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/poll"
	"github.com/danielhkuo/pollbooth/store"
)

type PollHandler struct {
	st     *store.Guard
	cfg    cliparse.Config
	events eventlog.Logger
}

func NewPollHandler(st *store.Guard, cfg cliparse.Config, events eventlog.Logger) *PollHandler {
	return &PollHandler{st: st, cfg: cfg, events: events}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" || len(req.Options) == 0 || req.Expiration == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields: title, options or expiration")
		return
	}

	pollID, newPoll, err := poll.New(req.Title, req.Description, req.Options, req.Expiration)
	if errors.Is(err, poll.ErrInvalidInput) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to build poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	err = h.st.Update(func(c *models.Collection) (bool, error) {
		c.Polls[pollID] = newPoll
		return true, nil
	})
	if err != nil {
		slog.Error("failed to save poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "title", req.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		Message:  "Poll created successfully!",
		PollID:   pollID,
		AdminKey: auth.GenerateAdminKey(pollID, h.cfg.AdminKeySalt),
	})
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	var polls map[string]*models.Poll
	err := h.st.View(func(c *models.Collection) error {
		polls = c.Polls
		return nil
	})
	if err != nil {
		slog.Error("failed to load polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list polls")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// ClosePoll handles POST /polls/:id/close
// Administrative override for operators; the expiration sweeper closes
// polls on its own schedule.
func (h *PollHandler) ClosePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(pollID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var results map[string]int
	err := h.st.Update(func(c *models.Collection) (bool, error) {
		p, ok := c.Polls[pollID]
		if !ok {
			return false, poll.ErrNotFound
		}
		if p.Status != models.StatusOpen {
			return false, poll.ErrPollClosed
		}
		p.Status = models.StatusClosed
		results = p.Results
		return true, nil
	})

	switch {
	case errors.Is(err, poll.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll with ID "+pollID+" not found")
		return
	case errors.Is(err, poll.ErrPollClosed):
		middleware.ErrorResponse(w, http.StatusConflict, "Poll is not open")
		return
	case err != nil:
		slog.Error("failed to close poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to close poll")
		return
	}

	h.events.Log("poll_closed", "Poll ID "+pollID+" closed by operator")
	slog.Info("poll closed", "poll_id", pollID)

	middleware.JSONResponse(w, http.StatusOK, models.ClosePollResponse{
		ClosedAt: time.Now().UTC(),
		Results:  results,
	})
}
