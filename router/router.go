// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-poll/chat"
	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/commands"
	"github.com/danielhkuo/quickly-poll/handlers"
	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/registry"
)

func NewRouter(board *chat.Board, reg *registry.Registry, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	dispatcher := commands.NewDispatcher(board, reg, nil)

	commandHandler := handlers.NewCommandHandler(dispatcher)
	channelHandler := handlers.NewChannelHandler(board)
	clickHandler := handlers.NewClickHandler(board)
	pollHandler := handlers.NewPollHandler(reg)

	// Mutating routes need a valid X-Signature when a secret is configured
	signed := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithSignature(cfg.SigningSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Bot commands
	mux.HandleFunc("POST /commands", signed(commandHandler.Invoke))

	// Chat board
	mux.HandleFunc("POST /channels", signed(channelHandler.CreateChannel))
	mux.HandleFunc("GET /channels/{id}/messages", middleware.WithLogging(channelHandler.ListMessages))
	mux.HandleFunc("POST /messages/{id}/clicks", signed(clickHandler.Click))

	// Running polls
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-poll API v1"))
	})

	return mux
}
