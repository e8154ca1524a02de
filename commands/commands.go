// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/registry"
	"github.com/danielhkuo/quickly-poll/session"
)

var (
	ErrUsage     = errors.New("invalid command usage")
	ErrAmbiguous = errors.New("more than one poll is running in this channel, pass --session")
)

// Invocation is one "poll" command typed by a user in a channel
type Invocation struct {
	ChannelID string
	User      models.User
	Args      []string
}

type Reply struct {
	Message   string
	SessionID string
	Result    *models.Result
}

// Dispatcher turns command invocations into session starts and ends
type Dispatcher struct {
	platform session.Platform
	registry *registry.Registry
	logger   *slog.Logger
}

func NewDispatcher(platform session.Platform, reg *registry.Registry, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{platform: platform, registry: reg, logger: logger}
}

// Execute parses and runs an invocation. Parse failures are wrapped in
// ErrUsage; session errors are returned as they are.
func (d *Dispatcher) Execute(ctx context.Context, inv Invocation) (Reply, error) {
	var reply Reply
	var runErr error
	run := func(fn func(context.Context) (Reply, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			reply, runErr = fn(cmd.Context())
			return runErr
		}
	}

	// cobra commands keep flag state, so each invocation gets a fresh tree
	root := d.newRootCmd(inv, run)
	var out bytes.Buffer
	// cobra falls back to os.Args when given nil
	args := inv.Args
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)

	if err := root.ExecuteContext(ctx); err != nil {
		if runErr != nil {
			d.logger.Warn("poll command failed",
				"channel_id", inv.ChannelID,
				"user_id", inv.User.ID,
				"args", inv.Args,
				"error", err,
			)
			return Reply{}, err
		}
		return Reply{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if reply.Message == "" {
		reply.Message = out.String()
	}
	return reply, nil
}

type runner func(fn func(context.Context) (Reply, error)) func(*cobra.Command, []string) error

func (d *Dispatcher) newRootCmd(inv Invocation, run runner) *cobra.Command {
	root := &cobra.Command{
		Use:           "poll",
		Short:         "Run a poll in this channel",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(d.startCmd(inv, run), d.endCmd(inv, run))
	return root
}

// start --option1 A --option2 B [--option3 C ...]: post a new poll
func (d *Dispatcher) startCmd(inv Invocation, run runner) *cobra.Command {
	var title string
	options := make([]string, session.MaxOptions)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a poll with 2 to 5 options",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = run(func(ctx context.Context) (Reply, error) {
		var names []string
		for _, o := range options {
			if o != "" {
				names = append(names, o)
			}
		}
		return d.start(ctx, inv, title, names)
	})

	cmd.Flags().StringVar(&title, "title", "", "poll title")
	for i := range options {
		name := "option" + strconv.Itoa(i+1)
		cmd.Flags().StringVar(&options[i], name, "", "name of option "+strconv.Itoa(i+1))
		if i < session.MinOptions {
			_ = cmd.MarkFlagRequired(name)
		}
	}
	return cmd
}

// end [--session ID]: close a running poll and announce the winner
func (d *Dispatcher) endCmd(inv Invocation, run runner) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "end",
		Short: "End the running poll",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = run(func(ctx context.Context) (Reply, error) {
		return d.end(ctx, inv, sessionID)
	})
	cmd.Flags().StringVar(&sessionID, "session", "", "poll to end (default: the only poll in this channel)")
	return cmd
}

func (d *Dispatcher) start(ctx context.Context, inv Invocation, title string, names []string) (Reply, error) {
	s, err := session.New(title, names, session.Dependencies{
		Platform: d.platform,
		Registry: d.registry,
		Logger:   d.logger,
	})
	if err != nil {
		return Reply{}, err
	}

	if err := s.Start(ctx, inv.ChannelID, inv.User); err != nil {
		return Reply{}, err
	}

	return Reply{
		Message:   fmt.Sprintf("Poll started with %d options.", len(names)),
		SessionID: s.ID(),
	}, nil
}

func (d *Dispatcher) end(ctx context.Context, inv Invocation, sessionID string) (Reply, error) {
	s, err := d.find(inv.ChannelID, sessionID)
	if err != nil {
		return Reply{}, err
	}

	result, err := s.End(ctx, inv.User)
	if err != nil {
		return Reply{}, err
	}

	msg := "Poll ended with no votes."
	if result.HasWinner {
		msg = fmt.Sprintf("Poll ended. Winner: %s.", result.Winner)
	}
	return Reply{
		Message:   msg,
		SessionID: s.ID(),
		Result:    &result,
	}, nil
}

func (d *Dispatcher) find(channelID, sessionID string) (*session.Session, error) {
	if sessionID != "" {
		s, ok := d.registry.Session(sessionID)
		if !ok || s.ChannelID() != channelID {
			return nil, fmt.Errorf("%w: %s", registry.ErrSessionNotFound, sessionID)
		}
		return s, nil
	}

	running := d.registry.InChannel(channelID)
	switch len(running) {
	case 0:
		return nil, fmt.Errorf("%w: no poll is running in this channel", registry.ErrSessionNotFound)
	case 1:
		return running[0], nil
	default:
		return nil, ErrAmbiguous
	}
}
