// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package display renders poll state into a chat message.

Rendering is a pure function of State, so the same state always yields the
same message:

	msg := display.Render(display.State{
		SessionID: id,
		Title:     "Lunch",
		Options:   []models.OptionCount{{Name: "Pizza", Votes: 2}, {Name: "Tacos", Votes: 1}},
	})

# Field Order

One inline field per option in option order ("<n> votes"), then the
"Total votes" field, then, only for closed polls, the "Winner" field. A
closed poll with no votes shows "No votes cast" as the winner.

# Controls

Open polls get one primary control per option. The control id is the
session id followed by the option index (see ControlID). Closed polls get an
empty control row, which removes the buttons from the posted message.
*/
package display
