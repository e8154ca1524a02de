// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package commands dispatches "poll" chat commands to poll sessions.

# Commands

	poll start --option1 Pizza --option2 Tacos [--option3 ... --option5] [--title Lunch]
	poll end [--session ID]

The first two options are required and up to three more are optional. end
without --session ends the only poll running in the invoking channel; with
several running, --session is required (ErrAmbiguous). Only the user who
started a poll can end it.

# Usage

	d := commands.NewDispatcher(board, reg, logger)
	reply, err := d.Execute(ctx, commands.Invocation{
		ChannelID: channelID,
		User:      user,
		Args:      []string{"start", "--option1", "A", "--option2", "B"},
	})

Flag and argument errors wrap ErrUsage. Session errors (ErrInvalidState,
ErrUnsupportedChannel, ErrOptionCount, ErrNotOwner) and
registry.ErrSessionNotFound are returned unchanged so the caller can report
them to the user.
*/
package commands
