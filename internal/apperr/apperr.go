// Package apperr defines the error categories shared across the runner.
//
// Error taxonomy
//
//	UserError          – missing or invalid user input (bad flag, bad day, …).
//	                     The CLI prints only the message; usage help is NOT
//	                     repeated. Exit code: 1.
//	ErrCancelled       – the user deliberately aborted an interactive flow
//	                     (submission confirm). Exit code: 0 (not a failure).
//	ErrNotYetAvailable – the requested puzzle's unlock time has not passed.
//	ErrNoSession       – the AOC_SESSION credential is absent.
//	ErrEmptyAnswer     – a nil/empty answer was handed to the submitter.
//	ErrInvalidLayout   – a solution directory exists but is malformed.
//
// Transport failures (input download, answer submission) are plain errors
// created with Fetchf/Submitf so callers can test for the category with
// errors.Is while keeping the status code in the message. Everything else is
// a plain Go error propagated with fmt.Errorf("context: %w", err) wrapping.
package apperr

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user explicitly aborts an interactive
// operation. The CLI should exit 0 rather than 1 when it sees this error.
var ErrCancelled = errors.New("operation cancelled")

// ErrNotYetAvailable is returned when a puzzle input is requested before the
// day has unlocked.
var ErrNotYetAvailable = errors.New("puzzle not yet available")

// ErrNoSession is returned when no session cookie is configured for an
// operation that talks to the website.
var ErrNoSession = errors.New("AOC_SESSION is not set")

// ErrEmptyAnswer is returned when a null answer is handed to the submitter.
var ErrEmptyAnswer = errors.New("cannot submit an empty answer")

// ErrInvalidLayout is returned when a solution directory is present but does
// not contain the files the runner expects.
var ErrInvalidLayout = errors.New("invalid solution directory")

// ErrFetch is the category for failed input downloads.
var ErrFetch = errors.New("input download failed")

// ErrSubmit is the category for failed answer submissions at the transport
// level (non-2xx responses, broken connections).
var ErrSubmit = errors.New("answer submission failed")

// Fetchf wraps ErrFetch with detail.
func Fetchf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFetch, fmt.Sprintf(format, args...))
}

// Submitf wraps ErrSubmit with detail.
func Submitf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSubmit, fmt.Sprintf(format, args...))
}

// UserError represents an error caused by invalid or missing user input.
// Command handlers return this instead of a bare fmt.Errorf so that the root
// command can suppress repeated usage output and format the message in a
// user-friendly way.
type UserError struct {
	Message string
}

func (e *UserError) Error() string { return e.Message }

// User creates a UserError with the given message.
func User(msg string) error { return &UserError{Message: msg} }

// Userf creates a formatted UserError.
func Userf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// IsUser reports whether err is (or wraps) a *UserError.
func IsUser(err error) bool {
	var u *UserError
	return errors.As(err, &u)
}
