package domain

import (
	"errors"
	"fmt"
)

// Kind classifies failures uniformly across transports.
type Kind string

const (
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindForbidden       Kind = "FORBIDDEN"
	KindNotFound        Kind = "NOT_FOUND"
	KindBadRequest      Kind = "BAD_REQUEST"
	KindInternal        Kind = "INTERNAL_ERROR"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")

	// ErrConflict is returned by repositories on unique constraint violations.
	ErrConflict = errors.New("conflict")
)

// Error carries a message that is safe to show to the caller.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticated(format string, args ...any) error {
	return newError(ErrUnauthenticated, format, args...)
}

func Forbidden(format string, args ...any) error {
	return newError(ErrForbidden, format, args...)
}

func NotFound(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

func BadRequest(format string, args ...any) error {
	return newError(ErrBadRequest, format, args...)
}

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrBadRequest):
		return KindBadRequest
	default:
		return KindInternal
	}
}

// PublicMessage returns the text a transport may expose for err.
func PublicMessage(err error) string {
	kind := KindOf(err)
	if kind == KindInternal {
		return "internal error"
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}

	switch kind {
	case KindUnauthenticated:
		return ErrUnauthenticated.Error()
	case KindForbidden:
		return ErrForbidden.Error()
	case KindNotFound:
		return ErrNotFound.Error()
	default:
		return ErrBadRequest.Error()
	}
}
