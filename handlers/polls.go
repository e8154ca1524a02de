// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/registry"
	"github.com/danielhkuo/quickly-poll/session"
)

// PollHandler exposes the running polls. Ended polls leave the registry
// and are no longer listed.
type PollHandler struct {
	registry *registry.Registry
}

func NewPollHandler(reg *registry.Registry) *PollHandler {
	return &PollHandler{registry: reg}
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	var sessions []*session.Session
	if channelID := r.URL.Query().Get("channel_id"); channelID != "" {
		sessions = h.registry.InChannel(channelID)
	} else {
		sessions = h.registry.List()
	}

	summaries := make([]models.SessionSummary, 0, len(sessions))
	for _, s := range sessions {
		summaries = append(summaries, s.Summary())
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll ID is required")
		return
	}

	s, ok := h.registry.Session(sessionID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionDetail{
		Session: s.Summary(),
		Message: s.Render(),
	})
}
