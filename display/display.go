// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package display

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-poll/models"
)

const (
	DefaultTitle = "Poll"

	OpenDescription   = "Voting has started!"
	ClosedDescription = "Voting has ended!"

	TotalFieldName  = "Total votes"
	WinnerFieldName = "Winner"
	NoWinnerValue   = "No votes cast"
)

// State is everything the renderer needs to draw a poll message
type State struct {
	SessionID string
	Title     string
	Options   []models.OptionCount
	Closed    bool
	Winner    string
	HasWinner bool
}

// ControlID builds the opaque id of the control for option index i
func ControlID(sessionID string, i int) string {
	return sessionID + strconv.Itoa(i)
}

// Render turns poll state into the message to post or edit.
// Closed polls carry a winner field and no controls.
func Render(s State) models.Message {
	return models.Message{
		Display:  RenderDisplay(s),
		Controls: RenderControls(s),
	}
}

func RenderDisplay(s State) models.Display {
	title := s.Title
	if title == "" {
		title = DefaultTitle
	}

	description := OpenDescription
	if s.Closed {
		description = ClosedDescription
	}

	fields := make([]models.Field, 0, len(s.Options)+2)
	total := 0
	for _, opt := range s.Options {
		fields = append(fields, models.Field{
			Name:   opt.Name,
			Value:  votes(opt.Votes),
			Inline: true,
		})
		total += opt.Votes
	}
	fields = append(fields, models.Field{
		Name:  TotalFieldName,
		Value: votes(total),
	})

	if s.Closed {
		winner := NoWinnerValue
		if s.HasWinner {
			winner = s.Winner
		}
		fields = append(fields, models.Field{
			Name:  WinnerFieldName,
			Value: winner,
		})
	}

	return models.Display{
		Title:       title,
		Description: description,
		Fields:      fields,
	}
}

// RenderControls returns one control per option in option order, or an
// empty row once the poll is closed
func RenderControls(s State) []models.Control {
	if s.Closed {
		return []models.Control{}
	}
	controls := make([]models.Control, len(s.Options))
	for i, opt := range s.Options {
		controls[i] = models.Control{
			ID:    ControlID(s.SessionID, i),
			Label: opt.Name,
			Style: models.StylePrimary,
		}
	}
	return controls
}

func votes(n int) string {
	return humanize.Comma(int64(n)) + " votes"
}
