package conversion

import (
	"errors"
	"fmt"
)

// Kind classifies a conversion failure.
type Kind string

const (
	KindUnknownUnit    Kind = "unknown_unit"
	KindUnknownDomain  Kind = "unknown_domain"
	KindDegenerateRate Kind = "degenerate_rate"
	KindMalformedInput Kind = "malformed_input"
)

// Error is returned for every failed conversion. Message is safe to show to
// API callers.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches kind sentinels, so errors.Is(err, ErrUnknownUnit) works for any
// unknown-unit error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Kind sentinels for errors.Is.
var (
	ErrUnknownUnit    = &Error{Kind: KindUnknownUnit}
	ErrUnknownDomain  = &Error{Kind: KindUnknownDomain}
	ErrDegenerateRate = &Error{Kind: KindDegenerateRate}
	ErrMalformedInput = &Error{Kind: KindMalformedInput}
)

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a conversion error, or "" for foreign errors.
func KindOf(err error) Kind {
	var convErr *Error
	if errors.As(err, &convErr) {
		return convErr.Kind
	}
	return ""
}

// MalformedInput builds an error for values that could not be parsed as numbers.
func MalformedInput(format string, args ...interface{}) *Error {
	return newError(KindMalformedInput, format, args...)
}
