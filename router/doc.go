// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Poll API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(board, reg, cfg)

The board is both the chat store the handlers read and write and the
platform polls post to. The registry is shared with the dispatch loop
started in main.

# Endpoints

Health:

	GET /health
	GET /

Commands (signed):

	POST /commands - Run "poll start" or "poll end"

Chat board:

	POST /channels               - Create channel (signed)
	GET  /channels/{id}/messages - List posted messages
	POST /messages/{id}/clicks   - Click a control (signed)

Polls (read-only):

	GET /polls[?channel_id=ID] - Running polls
	GET /polls/{id}            - Poll snapshot and rendered message

Signed routes check X-Signature only when cfg.SigningSecret is set.
*/
package router
