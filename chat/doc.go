// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package chat provides Board, the chat surface poll sessions post into.

Board satisfies session.Platform:

	board := chat.NewBoard(conn, logger)
	ok, err := board.SupportsControls(ctx, channelID)
	ref, err := board.Post(ctx, channelID, msg)
	err = board.Edit(ctx, ref, msg)

Channels and messages are rows in the channel and message tables (see
package db). Message payloads are stored as JSON.

# Click Events

Click validates the control against the stored message and publishes a
models.ClickEvent on the Events stream. Controls that an edit removed (for
example after a poll ended) are refused with ErrControlNotFound:

	err := board.Click(ctx, messageID, controlID, user)
	go registry.Serve(ctx, board.Events())

The stream is buffered (EventBuffer) and delivers events in the order Click
accepted them. Close ends the stream.
*/
package chat
