// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-poll/chat"
	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/models"
)

type ClickHandler struct {
	board *chat.Board
}

func NewClickHandler(board *chat.Board) *ClickHandler {
	return &ClickHandler{board: board}
}

// Click handles POST /messages/{id}/clicks.
// The click is queued for the dispatch loop, so the tally may not reflect
// it yet when the response is written.
func (h *ClickHandler) Click(w http.ResponseWriter, r *http.Request) {
	messageID := r.PathValue("id")
	if messageID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "message ID is required")
		return
	}

	var req models.ClickRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ControlID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "control_id is required")
		return
	}
	if req.User.ID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user.id is required")
		return
	}

	if err := h.board.Click(r.Context(), messageID, req.ControlID, req.User); err != nil {
		writeError(w, err, "Failed to record click")
		return
	}

	slog.Debug("click queued", "message_id", messageID, "control_id", req.ControlID, "user_id", req.User.ID)
	middleware.JSONResponse(w, http.StatusAccepted, models.ClickResponse{Accepted: true})
}
