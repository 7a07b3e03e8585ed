// Package apperr carries the error kinds shared by services and handlers.
// Every failure is tagged with an explicit kind; HTTP status codes come from
// a fixed table and are never inferred from message text.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindAccessDenied
	KindNotFound
	KindInvalidRequest
	KindInvalidState
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindInternal for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error kind to its response status.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindAccessDenied:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidRequest:
		return fiber.StatusBadRequest
	case KindInvalidState:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
