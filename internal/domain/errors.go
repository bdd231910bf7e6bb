package domain

import "errors"

// Common domain errors for session lifecycle operations. Scoring itself
// never fails: malformed or empty input resolves to documented neutral
// defaults rather than an error.
var (
	// ErrUnknownSession indicates an operation referenced a session id
	// that has not been started or has already ended.
	ErrUnknownSession = errors.New("unknown session")

	// ErrSessionExists indicates an attempt to start a session with an id
	// that is already active.
	ErrSessionExists = errors.New("session already active")

	// ErrEmptySessionID indicates a session operation with a blank id.
	ErrEmptySessionID = errors.New("session id cannot be empty")
)
