package session

import "errors"

var (
	ErrOptionCount   = errors.New("a poll needs between 2 and 5 options")
	ErrInvalidOption = errors.New("option names must not be blank")
	// ErrInvalidState is returned when an operation does not fit the session's lifecycle state
	ErrInvalidState = errors.New("invalid session state")
	// ErrUnsupportedChannel is returned by Start for channels without interactive messages
	ErrUnsupportedChannel = errors.New("channel does not support interactive messages")
	// ErrOptionOutOfRange is returned for a vote on an option index the poll does not have
	ErrOptionOutOfRange = errors.New("option index out of range")
	// ErrNotOwner is returned when someone other than the poll's creator tries to end it
	ErrNotOwner = errors.New("only the user who started the poll can end it")
)
