package models

import "time"

// Session status constants
const (
	StatusCreated = "created"
	StatusStarted = "started"
	StatusEnded   = "ended"
)

// Control style constants
const (
	StylePrimary = "primary"
)

// Chat types

// User is the identity delivered with a command or click.
// Two users are the same voter iff their IDs match.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type Display struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

// Control is a clickable element attached to a message
type Control struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Style string `json:"style"`
}

// Message is the structured payload posted into a channel
type Message struct {
	Display  Display   `json:"display"`
	Controls []Control `json:"controls"`
}

// MessageRef is the handle returned by a post, used for later edits
type MessageRef struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
}

type ClickEvent struct {
	MessageID string    `json:"message_id"`
	ChannelID string    `json:"channel_id"`
	ControlID string    `json:"control_id"`
	User      User      `json:"user"`
	ClickedAt time.Time `json:"clicked_at"`
}

type Channel struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	SupportsControls bool      `json:"supports_controls"`
	CreatedAt        time.Time `json:"created_at"`
}

type PostedMessage struct {
	ID        string     `json:"id"`
	ChannelID string     `json:"channel_id"`
	Message   Message    `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
}

// Request types

type CommandRequest struct {
	ChannelID string   `json:"channel_id"`
	User      User     `json:"user"`
	Args      []string `json:"args"`
}

type CreateChannelRequest struct {
	Name             string `json:"name"`
	SupportsControls bool   `json:"supports_controls"`
}

type ClickRequest struct {
	ControlID string `json:"control_id"`
	User      User   `json:"user"`
}

// Response types

type CommandResponse struct {
	Message   string  `json:"message"`
	SessionID string  `json:"session_id,omitempty"`
	Result    *Result `json:"result,omitempty"`
}

type ClickResponse struct {
	Accepted bool `json:"accepted"`
}

// Result types

type OptionCount struct {
	Name  string `json:"name"`
	Votes int    `json:"votes"`
}

type SessionSummary struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	ChannelID string        `json:"channel_id,omitempty"`
	MessageID string        `json:"message_id,omitempty"`
	Status    string        `json:"status"`
	CreatedBy string        `json:"created_by,omitempty"`
	Options   []OptionCount `json:"options"`
	Total     int           `json:"total"`
}

type SessionDetail struct {
	Session SessionSummary `json:"session"`
	Message Message        `json:"message"`
}

type Result struct {
	SessionID string        `json:"session_id"`
	Options   []OptionCount `json:"options"`
	Total     int           `json:"total"`
	Winner    string        `json:"winner,omitempty"`
	HasWinner bool          `json:"has_winner"`
	EndedAt   time.Time     `json:"ended_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
