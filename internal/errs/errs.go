// Package errs is the error-kind taxonomy every public operation in this
// module returns through: never a bare fmt.Errorf, always one of the seven
// kinds below wrapping whatever caused it.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation failed, independent of the Go type that
// carries it. Callers branch on Kind, not on type assertions against
// package-specific error types.
type Kind int

const (
	Internal Kind = iota
	InvalidArgument
	PreconditionFailed
	Unavailable
	Unauthenticated
	Timeout
	NotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case PreconditionFailed:
		return "precondition_failed"
	case Unavailable:
		return "unavailable"
	case Unauthenticated:
		return "unauthenticated"
	case Timeout:
		return "timeout"
	case NotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is the concrete error type every component returns. It wraps cause
// so errors.Is/errors.As still work against whatever produced it (a socket
// error, a context.DeadlineExceeded, a validator error).
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an Error of the given kind with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error of the given kind around cause. If cause is already
// an *Error, its Kind is preserved unless the caller's kind is more specific
// (i.e. Wrap never downgrades a known kind to Internal by accident of
// double-wrapping); callers that want to force a kind should use New plus a
// wrapped Cause field directly.
func Wrap(kind Kind, message string, cause error) *Error {
	var inner *Error
	if kind == Internal && errors.As(cause, &inner) {
		kind = inner.Kind
	}
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Is reports whether err carries the given Kind, looking through wrapped
// errors via errors.As.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the Kind carried by err, or Internal if err does not wrap
// an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
