package session

import "errors"

// Sentinel errors for the dispatch engine.
var (
	// ErrNilHandler is returned when a nil handler is passed to a
	// modification call.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrForeignHandler is returned when a handler created by a
	// different manager is passed to a modification call.
	ErrForeignHandler = errors.New("handler belongs to a different session")

	// ErrHandlerNotRegistered is returned when a modification call
	// names a handler that is not currently registered.
	ErrHandlerNotRegistered = errors.New("handler is not registered")

	// ErrInvalidLogger is returned when the diagnostics sink is set to
	// nil.
	ErrInvalidLogger = errors.New("logger cannot be nil")

	// ErrNoSource is returned by Run when no event source is given.
	ErrNoSource = errors.New("event source cannot be nil")

	// ErrQuit is returned by Run after Quit is called. It signals a
	// normal shutdown, not a failure.
	ErrQuit = errors.New("session quit")
)
