package scrape

import (
	"errors"
	"fmt"
)

// ErrorKind classifies scrape failures for the UI layer.
type ErrorKind string

const (
	// KindMalformedURL means local validation rejected the URL before any
	// network call.
	KindMalformedURL ErrorKind = "malformed_url"

	// KindInvalidCredential means the provider rejected the API key.
	KindInvalidCredential ErrorKind = "invalid_credential"

	// KindUnreachableTarget means the provider could not fetch the target
	// page.
	KindUnreachableTarget ErrorKind = "unreachable_target"

	// KindServiceError covers unexpected provider responses (5xx, rate
	// limits, undecodable bodies) and transport failures.
	KindServiceError ErrorKind = "service_error"

	// KindMissingCredential means no API key was configured at startup.
	KindMissingCredential ErrorKind = "missing_credential"
)

// Error is a classified scrape failure with a message fit for display.
type Error struct {
	Kind  ErrorKind
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("scrape: %s: %s: %v", e.Kind, e.Msg, e.cause)
	}
	return fmt.Sprintf("scrape: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.cause }

// Message returns the human-readable message for display in the UI.
func (e *Error) Message() string { return e.Msg }

func newError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, cause: cause}
}

// Kind extracts the ErrorKind from err. Anything that is not a *Error
// maps to KindServiceError; nil maps to the empty kind.
func Kind(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindServiceError
}
