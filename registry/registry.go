// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/session"
)

var (
	ErrDuplicate       = errors.New("control id already registered")
	ErrSessionNotFound = errors.New("session not found")
)

type binding struct {
	session *session.Session
	index   int
}

// Registry maps every control of every started session to its owner.
// Lookups are exact, so one session's id can never capture another's clicks.
type Registry struct {
	mu       sync.RWMutex
	controls map[string]binding
	sessions map[string]*session.Session
	logger   *slog.Logger
}

func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		controls: make(map[string]binding),
		sessions: make(map[string]*session.Session),
		logger:   logger,
	}
}

// Register adds the session and all of its controls. Nothing is added if
// any id is already taken.
func (r *Registry) Register(s *session.Session) error {
	ids := s.ControlIDs()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID()]; ok {
		return fmt.Errorf("%w: session %s", ErrDuplicate, s.ID())
	}
	for _, id := range ids {
		if _, ok := r.controls[id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicate, id)
		}
	}

	r.sessions[s.ID()] = s
	for i, id := range ids {
		r.controls[id] = binding{session: s, index: i}
	}
	return nil
}

// Unregister removes the session and its controls. Unknown ids are ignored.
func (r *Registry) Unregister(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return
	}
	for _, id := range s.ControlIDs() {
		delete(r.controls, id)
	}
	delete(r.sessions, sessionID)
}

func (r *Registry) Session(id string) (*session.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Len is the number of started sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns all started sessions ordered by id
func (r *Registry) List() []*session.Session {
	r.mu.RLock()
	list := make([]*session.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		list = append(list, s)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].ID() < list[j].ID() })
	return list
}

// InChannel returns the started sessions posted in channelID
func (r *Registry) InChannel(channelID string) []*session.Session {
	// ChannelID takes the session lock, so filter outside r.mu
	var out []*session.Session
	for _, s := range r.List() {
		if s.ChannelID() == channelID {
			out = append(out, s)
		}
	}
	return out
}

// Dispatch hands a click to the session owning its control.
// Clicks on unknown controls are not errors; handled reports false.
func (r *Registry) Dispatch(ctx context.Context, ev models.ClickEvent) (bool, error) {
	r.mu.RLock()
	b, ok := r.controls[ev.ControlID]
	r.mu.RUnlock()

	if !ok {
		r.logger.Debug("click ignored", "control_id", ev.ControlID, "user_id", ev.User.ID)
		return false, nil
	}

	if err := b.session.HandleClick(ctx, ev.User, b.index); err != nil {
		return true, err
	}
	return true, nil
}

// Serve dispatches events one at a time in delivery order until ctx is done
// or events is closed. A failing or panicking event is logged and skipped.
func (r *Registry) Serve(ctx context.Context, events <-chan models.ClickEvent) error {
	r.logger.Info("click dispatch started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("click dispatch stopped", "error", ctx.Err())
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				r.logger.Info("click dispatch stopped", "reason", "event stream closed")
				return nil
			}
			r.handle(ctx, ev)
		}
	}
}

func (r *Registry) handle(ctx context.Context, ev models.ClickEvent) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("click handler panicked",
				"control_id", ev.ControlID,
				"user_id", ev.User.ID,
				"panic", p,
			)
		}
	}()

	_, err := r.Dispatch(ctx, ev)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrInvalidState), errors.Is(err, session.ErrOptionOutOfRange):
		r.logger.Warn("stale click rejected",
			"control_id", ev.ControlID,
			"user_id", ev.User.ID,
			"error", err,
		)
	default:
		r.logger.Error("click handling failed",
			"control_id", ev.ControlID,
			"user_id", ev.User.ID,
			"error", err,
		)
	}
}
