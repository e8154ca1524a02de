// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-poll/chat"
	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/models"
)

type ChannelHandler struct {
	board *chat.Board
}

func NewChannelHandler(board *chat.Board) *ChannelHandler {
	return &ChannelHandler{board: board}
}

// CreateChannel handles POST /channels
func (h *ChannelHandler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChannelRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ch, err := h.board.CreateChannel(r.Context(), req.Name, req.SupportsControls)
	if err != nil {
		writeError(w, err, "Failed to create channel")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, ch)
}

// ListMessages handles GET /channels/{id}/messages
func (h *ChannelHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	channelID := r.PathValue("id")
	if channelID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "channel ID is required")
		return
	}

	messages, err := h.board.Messages(r.Context(), channelID)
	if err != nil {
		writeError(w, err, "Failed to list messages")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, messages)
}
