package entity

import (
	"errors"
	"fmt"
)

var (
	// Composition errors
	ErrEmptyRecipient = errors.New("recipient must not be empty")
	ErrEmptySubject   = errors.New("subject must not be empty")
	ErrEmptyBody      = errors.New("body must not be empty")
)

// TransportError wraps any failure of a single delivery attempt against
// the relay: connection refused, TLS negotiation, authentication
// rejection, or envelope rejection.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("SMTP error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ScheduleError wraps any failure while constructing or registering a
// reminder job. It is logged and never surfaced to callers.
type ScheduleError struct {
	Err error
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("failed to schedule reminder email: %v", e.Err)
}

func (e *ScheduleError) Unwrap() error {
	return e.Err
}
