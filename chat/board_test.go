// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/testutil"
)

func testMessage(controls ...string) models.Message {
	msg := models.Message{
		Display: models.Display{
			Title:       "Poll",
			Description: "Voting has started!",
			Fields:      []models.Field{{Name: "A", Value: "0 votes", Inline: true}},
		},
		Controls: []models.Control{},
	}
	for _, id := range controls {
		msg.Controls = append(msg.Controls, models.Control{ID: id, Label: id, Style: models.StylePrimary})
	}
	return msg
}

func TestCreateChannel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	board := NewBoard(db, nil)
	ctx := context.Background()

	tests := []struct {
		name             string
		channelName      string
		supportsControls bool
		wantErr          error
	}{
		{"text channel", "general", true, nil},
		{"announcement channel", "news", false, nil},
		{"blank name", "  ", true, ErrInvalidChannel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := board.CreateChannel(ctx, tt.channelName, tt.supportsControls)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateChannel() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			ok, err := board.SupportsControls(ctx, ch.ID)
			if err != nil {
				t.Fatalf("SupportsControls() error = %v", err)
			}
			if ok != tt.supportsControls {
				t.Errorf("SupportsControls() = %v, want %v", ok, tt.supportsControls)
			}

			stored, err := board.Channel(ctx, ch.ID)
			if err != nil {
				t.Fatalf("Channel() error = %v", err)
			}
			if stored.Name != tt.channelName {
				t.Errorf("Expected name '%s', got '%s'", tt.channelName, stored.Name)
			}
		})
	}

	if _, err := board.SupportsControls(ctx, "missing"); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("Expected ErrChannelNotFound, got %v", err)
	}
}

func TestPostAndEdit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	board := NewBoard(db, nil)
	ctx := context.Background()
	channelID := testutil.CreateTestChannel(t, db, "general", true)

	ref, err := board.Post(ctx, channelID, testMessage("s0", "s1"))
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if ref.ChannelID != channelID || ref.ID == "" {
		t.Fatalf("Unexpected ref %+v", ref)
	}

	pm, err := board.Message(ctx, ref.ID)
	if err != nil {
		t.Fatalf("Message() error = %v", err)
	}
	if len(pm.Message.Controls) != 2 {
		t.Errorf("Expected 2 controls, got %d", len(pm.Message.Controls))
	}
	if pm.EditedAt != nil {
		t.Error("Fresh message should not be edited")
	}

	edited := testMessage()
	edited.Display.Description = "Voting has ended!"
	if err := board.Edit(ctx, ref, edited); err != nil {
		t.Fatalf("Edit() error = %v", err)
	}

	pm, err = board.Message(ctx, ref.ID)
	if err != nil {
		t.Fatalf("Message() error = %v", err)
	}
	if pm.Message.Display.Description != "Voting has ended!" {
		t.Errorf("Edit not applied, description '%s'", pm.Message.Display.Description)
	}
	if len(pm.Message.Controls) != 0 {
		t.Errorf("Expected controls removed, got %d", len(pm.Message.Controls))
	}
	if pm.EditedAt == nil {
		t.Error("Expected edited_at to be set")
	}

	err = board.Edit(ctx, models.MessageRef{ID: "missing", ChannelID: channelID}, edited)
	if !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("Expected ErrMessageNotFound, got %v", err)
	}
}

func TestPostRejectsControlsInPlainChannel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	board := NewBoard(db, nil)
	channelID := testutil.CreateTestChannel(t, db, "news", false)

	if _, err := board.Post(context.Background(), channelID, testMessage("s0")); err == nil {
		t.Error("Expected error posting controls to a plain channel")
	}
	if _, err := board.Post(context.Background(), channelID, testMessage()); err != nil {
		t.Errorf("Plain post failed: %v", err)
	}
	if _, err := board.Post(context.Background(), "missing", testMessage()); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("Expected ErrChannelNotFound, got %v", err)
	}
}

func TestMessages(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	board := NewBoard(db, nil)
	ctx := context.Background()
	channelID := testutil.CreateTestChannel(t, db, "general", true)
	otherID := testutil.CreateTestChannel(t, db, "random", true)

	for i := 0; i < 3; i++ {
		if _, err := board.Post(ctx, channelID, testMessage()); err != nil {
			t.Fatalf("Post() error = %v", err)
		}
	}
	board.Post(ctx, otherID, testMessage())

	messages, err := board.Messages(ctx, channelID)
	if err != nil {
		t.Fatalf("Messages() error = %v", err)
	}
	if len(messages) != 3 {
		t.Errorf("Expected 3 messages, got %d", len(messages))
	}
	for _, m := range messages {
		if m.ChannelID != channelID {
			t.Errorf("Message %s belongs to %s", m.ID, m.ChannelID)
		}
	}

	if _, err := board.Messages(ctx, "missing"); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("Expected ErrChannelNotFound, got %v", err)
	}
}

func TestClickPublishesEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	board := NewBoard(db, nil)
	ctx := context.Background()
	channelID := testutil.CreateTestChannel(t, db, "general", true)
	ref, _ := board.Post(ctx, channelID, testMessage("s0", "s1"))
	user := models.User{ID: "u1", Name: "alice"}

	if err := board.Click(ctx, ref.ID, "s1", user); err != nil {
		t.Fatalf("Click() error = %v", err)
	}

	select {
	case ev := <-board.Events():
		if ev.ControlID != "s1" || ev.User.ID != "u1" || ev.MessageID != ref.ID || ev.ChannelID != channelID {
			t.Errorf("Unexpected event %+v", ev)
		}
		if ev.ClickedAt.IsZero() {
			t.Error("Expected click time to be set")
		}
	case <-time.After(time.Second):
		t.Fatal("No event published")
	}

	if err := board.Click(ctx, ref.ID, "s9", user); !errors.Is(err, ErrControlNotFound) {
		t.Errorf("Expected ErrControlNotFound, got %v", err)
	}
	if err := board.Click(ctx, "missing", "s0", user); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("Expected ErrMessageNotFound, got %v", err)
	}

	// Controls removed by an edit can no longer be clicked
	board.Edit(ctx, ref, testMessage())
	if err := board.Click(ctx, ref.ID, "s0", user); !errors.Is(err, ErrControlNotFound) {
		t.Errorf("Expected ErrControlNotFound after edit, got %v", err)
	}
}

func TestClose(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	board := NewBoard(db, nil)
	ctx := context.Background()
	channelID := testutil.CreateTestChannel(t, db, "general", true)
	ref, _ := board.Post(ctx, channelID, testMessage("s0"))

	board.Close()
	board.Close()

	if _, ok := <-board.Events(); ok {
		t.Error("Expected closed event stream")
	}
	if err := board.Click(ctx, ref.ID, "s0", models.User{ID: "u1"}); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}
