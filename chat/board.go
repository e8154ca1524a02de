// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-poll/auth"
	"github.com/danielhkuo/quickly-poll/models"
)

var (
	ErrChannelNotFound = errors.New("channel not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrControlNotFound = errors.New("control not found on message")
	ErrInvalidChannel  = errors.New("channel name is required")
	ErrClosed          = errors.New("board is closed")
)

// EventBuffer is how many clicks may wait for the dispatcher
const EventBuffer = 128

// Board is the chat surface polls post into. Channels and messages are
// stored in SQL; clicks are published on an in-process event stream.
type Board struct {
	db     *sql.DB
	logger *slog.Logger
	clock  func() time.Time

	mu     sync.RWMutex
	closed bool
	events chan models.ClickEvent
}

func NewBoard(db *sql.DB, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	return &Board{
		db:     db,
		logger: logger,
		clock:  time.Now,
		events: make(chan models.ClickEvent, EventBuffer),
	}
}

// CreateChannel adds a channel. Channels without control support accept
// plain posts only and are refused by polls.
func (b *Board) CreateChannel(ctx context.Context, name string, supportsControls bool) (models.Channel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Channel{}, ErrInvalidChannel
	}

	id, err := auth.GenerateID(8)
	if err != nil {
		return models.Channel{}, err
	}

	ch := models.Channel{
		ID:               id,
		Name:             name,
		SupportsControls: supportsControls,
		CreatedAt:        b.clock().UTC(),
	}
	_, err = b.db.ExecContext(ctx, `
		INSERT INTO channel (id, name, supports_controls, created_at)
		VALUES ($1, $2, $3, $4)
	`, ch.ID, ch.Name, ch.SupportsControls, ch.CreatedAt)
	if err != nil {
		return models.Channel{}, fmt.Errorf("failed to insert channel: %w", err)
	}

	b.logger.Info("channel created", "channel_id", ch.ID, "name", ch.Name, "supports_controls", supportsControls)
	return ch, nil
}

func (b *Board) Channel(ctx context.Context, id string) (models.Channel, error) {
	var ch models.Channel
	err := b.db.QueryRowContext(ctx, `
		SELECT id, name, supports_controls, created_at FROM channel WHERE id = $1
	`, id).Scan(&ch.ID, &ch.Name, &ch.SupportsControls, &ch.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Channel{}, fmt.Errorf("%w: %s", ErrChannelNotFound, id)
	}
	if err != nil {
		return models.Channel{}, fmt.Errorf("failed to query channel: %w", err)
	}
	return ch, nil
}

func (b *Board) SupportsControls(ctx context.Context, channelID string) (bool, error) {
	ch, err := b.Channel(ctx, channelID)
	if err != nil {
		return false, err
	}
	return ch.SupportsControls, nil
}

// Post stores a new message in the channel and returns its handle
func (b *Board) Post(ctx context.Context, channelID string, msg models.Message) (models.MessageRef, error) {
	ch, err := b.Channel(ctx, channelID)
	if err != nil {
		return models.MessageRef{}, err
	}
	if len(msg.Controls) > 0 && !ch.SupportsControls {
		return models.MessageRef{}, fmt.Errorf("channel %s does not accept controls", channelID)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return models.MessageRef{}, fmt.Errorf("failed to encode message: %w", err)
	}

	id, err := auth.GenerateID(12)
	if err != nil {
		return models.MessageRef{}, err
	}

	_, err = b.db.ExecContext(ctx, `
		INSERT INTO message (id, channel_id, payload, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, channelID, string(payload), b.clock().UTC())
	if err != nil {
		return models.MessageRef{}, fmt.Errorf("failed to insert message: %w", err)
	}

	b.logger.Debug("message posted", "message_id", id, "channel_id", channelID, "controls", len(msg.Controls))
	return models.MessageRef{ID: id, ChannelID: channelID}, nil
}

// Edit replaces the content and controls of a posted message
func (b *Board) Edit(ctx context.Context, ref models.MessageRef, msg models.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	res, err := b.db.ExecContext(ctx, `
		UPDATE message SET payload = $1, edited_at = $2
		WHERE id = $3 AND channel_id = $4
	`, string(payload), b.clock().UTC(), ref.ID, ref.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrMessageNotFound, ref.ID)
	}
	return nil
}

func (b *Board) Message(ctx context.Context, id string) (models.PostedMessage, error) {
	row := b.db.QueryRowContext(ctx, `
		SELECT id, channel_id, payload, created_at, edited_at FROM message WHERE id = $1
	`, id)

	pm, err := scanMessage(row)
	if err == sql.ErrNoRows {
		return models.PostedMessage{}, fmt.Errorf("%w: %s", ErrMessageNotFound, id)
	}
	if err != nil {
		return models.PostedMessage{}, fmt.Errorf("failed to query message: %w", err)
	}
	return pm, nil
}

// Messages lists a channel's messages, oldest first
func (b *Board) Messages(ctx context.Context, channelID string) ([]models.PostedMessage, error) {
	if _, err := b.Channel(ctx, channelID); err != nil {
		return nil, err
	}

	rows, err := b.db.QueryContext(ctx, `
		SELECT id, channel_id, payload, created_at, edited_at FROM message
		WHERE channel_id = $1
		ORDER BY created_at, id
	`, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := []models.PostedMessage{}
	for rows.Next() {
		pm, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, pm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}
	return messages, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (models.PostedMessage, error) {
	var pm models.PostedMessage
	var payload string
	var editedAt sql.NullTime

	if err := row.Scan(&pm.ID, &pm.ChannelID, &payload, &pm.CreatedAt, &editedAt); err != nil {
		return models.PostedMessage{}, err
	}
	if err := json.Unmarshal([]byte(payload), &pm.Message); err != nil {
		return models.PostedMessage{}, fmt.Errorf("corrupt message payload %s: %w", pm.ID, err)
	}
	if editedAt.Valid {
		t := editedAt.Time
		pm.EditedAt = &t
	}
	return pm, nil
}

// Click records that user activated a control on a message and publishes
// the event. Controls that are no longer on the message are refused.
func (b *Board) Click(ctx context.Context, messageID, controlID string, user models.User) error {
	pm, err := b.Message(ctx, messageID)
	if err != nil {
		return err
	}

	found := false
	for _, c := range pm.Message.Controls {
		if c.ID == controlID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrControlNotFound, controlID)
	}

	ev := models.ClickEvent{
		MessageID: pm.ID,
		ChannelID: pm.ChannelID,
		ControlID: controlID,
		User:      user,
		ClickedAt: b.clock().UTC(),
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}

	select {
	case b.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events is the click stream. It is closed by Close.
func (b *Board) Events() <-chan models.ClickEvent {
	return b.events
}

func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.events)
}
