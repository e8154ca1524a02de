// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines chat, request, response, and result types shared by
the poll bot packages.

# Chat Types

The structured message a poll posts into a channel:

  - User: identity delivered with a command or click (compared by ID)
  - Display: title, description and ordered fields
  - Control: clickable element (id, label, style)
  - Message: display plus a row of controls
  - MessageRef: handle used to edit a posted message
  - ClickEvent: a user activated a control on a message
  - Channel, PostedMessage: chat board records

# Request Types

  - CommandRequest: channel_id, user, args (a "poll" command invocation)
  - CreateChannelRequest: name, supports_controls
  - ClickRequest: control_id, user

# Response Types

  - CommandResponse: message, session_id
  - ClickResponse: accepted
  - SessionSummary, SessionDetail: live session views
  - Result: final tallies and winner
  - ErrorResponse: error, message

# Constants

Session status values:

	StatusCreated = "created"
	StatusStarted = "started"
	StatusEnded   = "ended"
*/
package models
