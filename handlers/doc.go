// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Poll API.

# Handler Types

  - CommandHandler: "poll start" / "poll end" invocations
  - ChannelHandler: channel creation and message listing on the chat board
  - ClickHandler: control clicks from chat users
  - PollHandler: read-only view of running polls

# Commands

	POST /commands
	{"channel_id": "c1", "user": {"id": "u1"}, "args": ["start", "--option1", "A", "--option2", "B"]}

The reply carries the bot's text and, for "end", the final result.

# Clicks

	POST /messages/{id}/clicks
	{"control_id": "<session id>0", "user": {"id": "u2"}}

Clicks are queued on the board's event stream and answered with 202.
The registry applies them in order on its own goroutine.

# Error Mapping

Domain errors are mapped with errors.Is:

	usage, option count, unsupported channel  → 400
	not the poll creator                      → 403
	unknown session, channel, message, control → 404
	session not started or already ended      → 409
	board closed                              → 503
*/
package handlers
