// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-poll/chat"
	"github.com/danielhkuo/quickly-poll/commands"
	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/registry"
	"github.com/danielhkuo/quickly-poll/session"
)

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, commands.ErrUsage),
		errors.Is(err, commands.ErrAmbiguous),
		errors.Is(err, session.ErrOptionCount),
		errors.Is(err, session.ErrInvalidOption),
		errors.Is(err, session.ErrUnsupportedChannel),
		errors.Is(err, session.ErrOptionOutOfRange),
		errors.Is(err, chat.ErrInvalidChannel):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, registry.ErrSessionNotFound),
		errors.Is(err, chat.ErrChannelNotFound),
		errors.Is(err, chat.ErrMessageNotFound),
		errors.Is(err, chat.ErrControlNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrInvalidState),
		errors.Is(err, registry.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, chat.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the mapped status. Internal details are logged,
// not returned.
func writeError(w http.ResponseWriter, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error(msg, "error", err)
		middleware.ErrorResponse(w, status, msg)
		return
	}
	middleware.ErrorResponse(w, status, err.Error())
}
