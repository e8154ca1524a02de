// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements a single chat poll: option tallies, the vote
state machine, and the start/end lifecycle.

# Lifecycle

Sessions progress through three states: created → started → ended

	s, err := session.New("Lunch", []string{"Pizza", "Tacos"}, deps)
	err = s.Start(ctx, channelID, creator)   // posts message, registers controls
	err = s.HandleClick(ctx, user, 1)         // vote + message edit
	result, err := s.End(ctx, creator)        // winner field, controls removed

There is no way back. Voting or ending before Start, voting or ending after
End, and a second Start all fail with ErrInvalidState. A Start against a
channel without interactive message support fails with ErrUnsupportedChannel
and leaves the session created, so it can be started elsewhere.

# Votes

Each user is in at most one Tally. CastVote removes the user from every
tally and then adds them to the chosen one, all under the session mutex.
Clicking the option you already picked keeps your vote as it is.

# Winner

The first option with the strictly highest count wins, so ties go to the
lowest index. With no votes at all there is no winner and the final message
says "No votes cast".

# Routing

Start registers the session with a Registry (see package registry) and End
unregisters it, so ended sessions never linger in the routing table.
*/
package session
