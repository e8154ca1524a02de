// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/danielhkuo/quickly-poll/models"
)

var ErrFakePlatform = errors.New("fake platform failure")

// FakePlatform records posts and edits in memory.
// Channels listed in NoControls report no interactive message support.
type FakePlatform struct {
	mu sync.Mutex

	NoControls map[string]bool
	FailPost   bool
	FailEdit   bool

	Posts    []models.Message
	Edits    []models.Message
	Messages map[string]models.Message
	nextID   int
}

func NewFakePlatform() *FakePlatform {
	return &FakePlatform{
		NoControls: make(map[string]bool),
		Messages:   make(map[string]models.Message),
	}
}

func (p *FakePlatform) SupportsControls(_ context.Context, channelID string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.NoControls[channelID], nil
}

func (p *FakePlatform) Post(_ context.Context, channelID string, msg models.Message) (models.MessageRef, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailPost {
		return models.MessageRef{}, ErrFakePlatform
	}
	p.nextID++
	ref := models.MessageRef{ID: "msg-" + strconv.Itoa(p.nextID), ChannelID: channelID}
	p.Posts = append(p.Posts, msg)
	p.Messages[ref.ID] = msg
	return ref, nil
}

func (p *FakePlatform) Edit(_ context.Context, ref models.MessageRef, msg models.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailEdit {
		return ErrFakePlatform
	}
	if _, ok := p.Messages[ref.ID]; !ok {
		return errors.New("message not found")
	}
	p.Edits = append(p.Edits, msg)
	p.Messages[ref.ID] = msg
	return nil
}

// Message returns the latest content of a posted message
func (p *FakePlatform) Message(id string) (models.Message, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	msg, ok := p.Messages[id]
	return msg, ok
}

func (p *FakePlatform) SetFailEdit(fail bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.FailEdit = fail
}

func (p *FakePlatform) EditCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Edits)
}
