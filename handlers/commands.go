// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-poll/commands"
	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/models"
)

type CommandHandler struct {
	dispatcher *commands.Dispatcher
}

func NewCommandHandler(dispatcher *commands.Dispatcher) *CommandHandler {
	return &CommandHandler{dispatcher: dispatcher}
}

// Invoke handles POST /commands
func (h *CommandHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	var req models.CommandRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ChannelID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "channel_id is required")
		return
	}
	if req.User.ID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user.id is required")
		return
	}

	reply, err := h.dispatcher.Execute(r.Context(), commands.Invocation{
		ChannelID: req.ChannelID,
		User:      req.User,
		Args:      req.Args,
	})
	if err != nil {
		writeError(w, err, "Failed to run command")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CommandResponse{
		Message:   reply.Message,
		SessionID: reply.SessionID,
		Result:    reply.Result,
	})
}
