// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry routes click events to the poll session that owns them.

Every started session registers each of its control ids:

	reg := registry.New(logger)
	s, _ := session.New(title, options, session.Dependencies{Registry: reg, ...})
	s.Start(ctx, channelID, user)   // calls reg.Register(s)
	s.End(ctx, user)                // calls reg.Unregister(s.ID())

# Dispatch

A click is routed with one exact map lookup on its control id. Unknown ids
(other bots, ended polls, garbage) are ignored:

	handled, err := reg.Dispatch(ctx, event)

Serve runs the shared dispatch loop over an event stream. Events are handled
one at a time in delivery order, and an error or panic in one event is
logged without stopping the loop:

	go reg.Serve(ctx, board.Events())
*/
package registry
