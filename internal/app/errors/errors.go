package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the top-level caller
type Kind string

const (
	KindUnknown       Kind = "unknown"
	KindConfiguration Kind = "configuration"
	KindRead          Kind = "read"
	KindInvalidInput  Kind = "invalid_input"
	KindRemote        Kind = "remote"
	KindMalformed     Kind = "malformed"
)

// Common error types
var (
	// Configuration errors
	ErrMissingAPIKey = NewKind(KindConfiguration, "API key is required")
	ErrInvalidConfig = NewKind(KindConfiguration, "invalid configuration")

	// Input errors
	ErrFileReadFailed       = NewKind(KindRead, "file read failed")
	ErrEmptyAudio           = NewKind(KindRead, "audio file is empty")
	ErrUnsupportedMediaType = NewKind(KindInvalidInput, "please select an MP3 file")
	ErrFileTooLarge         = NewKind(KindInvalidInput, "audio file is too large")

	// Remote errors
	ErrRequestFailed   = NewKind(KindRemote, "failed to process transcript: API error")
	ErrResponseInvalid = NewKind(KindMalformed, "malformed transcript response")
)

// Error represents a standardized error
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New creates a new error of unknown kind
func New(message string) *Error {
	return &Error{kind: KindUnknown, message: message}
}

// NewKind creates a new error of the given kind
func NewKind(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Wrap wraps an error with additional context. The kind of err is kept.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    KindOf(err),
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    KindOf(err),
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// WrapKind wraps an error and classifies it
func WrapKind(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: message,
		cause:   err,
	}
}

// With returns a copy of a sentinel that carries cause.
// errors.Is matches both the sentinel and the cause.
func (e *Error) With(cause error) error {
	return &Error{
		kind:    e.kind,
		message: e.message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Message returns the message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Kind returns the error kind
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// KindOf returns the first classified kind found in the chain of err
func KindOf(err error) Kind {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return KindUnknown
		}
		if e.kind != "" && e.kind != KindUnknown {
			return e.kind
		}
		err = e.cause
	}
	return KindUnknown
}

// Helper functions for common patterns

// MissingSetting returns a configuration error naming the missing setting
func MissingSetting(name string) error {
	return &Error{
		kind:    KindConfiguration,
		message: fmt.Sprintf("%s environment variable not set", name),
		cause:   ErrMissingAPIKey,
	}
}

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return NewKind(KindInvalidInput, fmt.Sprintf("%s is required", field))
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return NewKind(KindInvalidInput, fmt.Sprintf("%s is invalid: %s", field, reason))
}
