// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-poll/display"
	"github.com/danielhkuo/quickly-poll/models"
)

// Option count bounds: two required options plus up to three optional ones
const (
	MinOptions = 2
	MaxOptions = 5
)

type State int

const (
	StateCreated State = iota
	StateStarted
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateStarted:
		return models.StatusStarted
	case StateEnded:
		return models.StatusEnded
	default:
		return models.StatusCreated
	}
}

// Platform is the chat surface a session posts to
type Platform interface {
	SupportsControls(ctx context.Context, channelID string) (bool, error)
	Post(ctx context.Context, channelID string, msg models.Message) (models.MessageRef, error)
	Edit(ctx context.Context, ref models.MessageRef, msg models.Message) error
}

// Registry routes clicks to started sessions. A session registers itself
// when it starts and unregisters when it ends.
type Registry interface {
	Register(s *Session) error
	Unregister(sessionID string)
}

type Dependencies struct {
	Platform Platform
	Registry Registry
	// IDGen overrides the UUID generator, mostly for tests
	IDGen  func() string
	Clock  func() time.Time
	Logger *slog.Logger
}

// Session is a single poll. All state lives behind mu; the vote check and
// the tally mutation never run without it.
type Session struct {
	id       string
	title    string
	platform Platform
	registry Registry
	clock    func() time.Time
	logger   *slog.Logger

	mu        sync.Mutex
	options   []*Tally
	state     State
	message   *models.MessageRef
	creator   models.User
	createdAt time.Time
	endedAt   time.Time
}

// New builds a session in the Created state. It is not visible to clicks
// until Start succeeds.
func New(title string, names []string, deps Dependencies) (*Session, error) {
	if len(names) < MinOptions || len(names) > MaxOptions {
		return nil, fmt.Errorf("%w: got %d", ErrOptionCount, len(names))
	}

	options := make([]*Tally, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrInvalidOption
		}
		options[i] = NewTally(name)
	}

	idGen := deps.IDGen
	if idGen == nil {
		idGen = uuid.NewString
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = display.DefaultTitle
	}

	return &Session{
		id:        idGen(),
		title:     title,
		platform:  deps.Platform,
		registry:  deps.Registry,
		clock:     clock,
		logger:    logger,
		options:   options,
		state:     StateCreated,
		createdAt: clock(),
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Title() string {
	return s.title
}

// ControlIDs returns the control id of every option, in option order.
// Options never change after New, so no lock is needed.
func (s *Session) ControlIDs() []string {
	ids := make([]string, len(s.options))
	for i := range s.options {
		ids[i] = display.ControlID(s.id, i)
	}
	return ids
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ChannelID is empty until the session has started
func (s *Session) ChannelID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.message == nil {
		return ""
	}
	return s.message.ChannelID
}

func (s *Session) Creator() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creator
}

// Start posts the poll message into channelID and makes the session routable.
// On failure the session stays Created and Start may be retried.
func (s *Session) Start(ctx context.Context, channelID string, creator models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCreated {
		return fmt.Errorf("%w: session already %s", ErrInvalidState, s.state)
	}

	ok, err := s.platform.SupportsControls(ctx, channelID)
	if err != nil {
		return fmt.Errorf("failed to check channel %s: %w", channelID, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedChannel, channelID)
	}

	ref, err := s.platform.Post(ctx, channelID, s.renderLocked())
	if err != nil {
		return fmt.Errorf("failed to post poll message: %w", err)
	}

	s.message = &ref
	s.creator = creator
	s.state = StateStarted

	if err := s.registry.Register(s); err != nil {
		// Nothing routes clicks to the posted message, so take its controls away
		orphan := s.displayStateLocked()
		orphan.Closed = true
		if editErr := s.platform.Edit(ctx, ref, display.Render(orphan)); editErr != nil {
			s.logger.Warn("failed to close orphaned poll message",
				"session_id", s.id,
				"message_id", ref.ID,
				"error", editErr,
			)
		}
		s.message = nil
		s.creator = models.User{}
		s.state = StateCreated
		return fmt.Errorf("failed to register session: %w", err)
	}

	s.logger.Info("poll started",
		"session_id", s.id,
		"channel_id", ref.ChannelID,
		"message_id", ref.ID,
		"options", len(s.options),
		"creator", creator.ID,
	)
	return nil
}

// CastVote records user's vote for option index. Any earlier vote by the
// same user is revoked first, including one for the same option, so a
// re-click keeps the vote rather than toggling it off.
func (s *Session) CastVote(index int, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.castVoteLocked(index, user)
}

// HandleClick casts the vote and edits the posted message to the new tally.
// The lock is held through the edit so edits land in vote order and a
// concurrent End cannot finalize between the two.
func (s *Session) HandleClick(ctx context.Context, user models.User, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.castVoteLocked(index, user); err != nil {
		return err
	}

	if err := s.platform.Edit(ctx, *s.message, s.renderLocked()); err != nil {
		return fmt.Errorf("failed to update poll message: %w", err)
	}

	s.logger.Debug("vote recorded",
		"session_id", s.id,
		"user_id", user.ID,
		"option", index,
	)
	return nil
}

func (s *Session) castVoteLocked(index int, user models.User) error {
	switch s.state {
	case StateCreated:
		return fmt.Errorf("%w: session not started", ErrInvalidState)
	case StateEnded:
		return fmt.Errorf("%w: session ended", ErrInvalidState)
	}
	if index < 0 || index >= len(s.options) {
		return fmt.Errorf("%w: %d", ErrOptionOutOfRange, index)
	}

	for _, opt := range s.options {
		opt.RemoveVoter(user)
	}
	s.options[index].AddVoter(user)
	return nil
}

// End finalizes the posted message with the winner, removes its controls
// and unregisters the session. If the edit fails the session stays Started.
func (s *Session) End(ctx context.Context, actor models.User) (models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateCreated:
		return models.Result{}, fmt.Errorf("%w: session not started", ErrInvalidState)
	case StateEnded:
		return models.Result{}, fmt.Errorf("%w: session already ended", ErrInvalidState)
	}
	if s.creator.ID != "" && actor.ID != s.creator.ID {
		return models.Result{}, ErrNotOwner
	}

	final := s.displayStateLocked()
	final.Closed = true
	if err := s.platform.Edit(ctx, *s.message, display.Render(final)); err != nil {
		return models.Result{}, fmt.Errorf("failed to finalize poll message: %w", err)
	}

	s.state = StateEnded
	s.endedAt = s.clock()
	s.registry.Unregister(s.id)

	result := models.Result{
		SessionID: s.id,
		Options:   final.Options,
		Total:     total(final.Options),
		Winner:    final.Winner,
		HasWinner: final.HasWinner,
		EndedAt:   s.endedAt,
	}

	s.logger.Info("poll ended",
		"session_id", s.id,
		"channel_id", s.message.ChannelID,
		"total", result.Total,
		"winner", result.Winner,
	)
	return result, nil
}

// Winner returns the option with the most votes. Ties go to the lowest
// index. ok is false when nobody has voted.
func (s *Session) Winner() (name string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.winnerLocked()
	if i < 0 {
		return "", false
	}
	return s.options[i].Name(), true
}

func (s *Session) winnerLocked() int {
	best, winner := 0, -1
	for i, opt := range s.options {
		if c := opt.Count(); c > best {
			best = c
			winner = i
		}
	}
	return winner
}

// Counts returns the current vote count of each option in option order
func (s *Session) Counts() []models.OptionCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countsLocked()
}

// Render returns the message as it currently appears in the channel
func (s *Session) Render() models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLocked()
}

func (s *Session) Summary() models.SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := s.countsLocked()
	summary := models.SessionSummary{
		ID:        s.id,
		Title:     s.title,
		Status:    s.state.String(),
		CreatedBy: s.creator.ID,
		Options:   counts,
		Total:     total(counts),
	}
	if s.message != nil {
		summary.ChannelID = s.message.ChannelID
		summary.MessageID = s.message.ID
	}
	return summary
}

func (s *Session) renderLocked() models.Message {
	return display.Render(s.displayStateLocked())
}

func (s *Session) displayStateLocked() display.State {
	st := display.State{
		SessionID: s.id,
		Title:     s.title,
		Options:   s.countsLocked(),
		Closed:    s.state == StateEnded,
	}
	if i := s.winnerLocked(); i >= 0 {
		st.Winner = s.options[i].Name()
		st.HasWinner = true
	}
	return st
}

func (s *Session) countsLocked() []models.OptionCount {
	counts := make([]models.OptionCount, len(s.options))
	for i, opt := range s.options {
		counts[i] = models.OptionCount{Name: opt.Name(), Votes: opt.Count()}
	}
	return counts
}

func total(counts []models.OptionCount) int {
	n := 0
	for _, c := range counts {
		n += c.Votes
	}
	return n
}
