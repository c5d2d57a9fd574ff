// Package apperr defines the error taxonomy shared by all services.
// Handlers translate an Error's kind into an HTTP status; internals of
// unexpected failures are never exposed to the caller.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnexpected Kind = iota
	KindPermissionDenied
	KindNotFound
	KindDuplicateDocument
	KindInvalidQuantity
	KindInsufficientStock
	KindReferentialConflict
	KindValidation
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func PermissionDenied(message string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: message}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func DuplicateDocument(format string, args ...interface{}) *Error {
	return &Error{Kind: KindDuplicateDocument, Message: fmt.Sprintf(format, args...)}
}

func InvalidQuantity(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidQuantity, Message: fmt.Sprintf(format, args...)}
}

func InsufficientStock(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInsufficientStock, Message: fmt.Sprintf(format, args...)}
}

func ReferentialConflict(message string) *Error {
	return &Error{Kind: KindReferentialConflict, Message: message}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Unexpected(message string, err error) *Error {
	return &Error{Kind: KindUnexpected, Message: message, Err: err}
}

// KindOf extracts the kind from err, or KindUnexpected for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// HTTPStatus maps an error to the status class of the response.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicateDocument, KindInvalidQuantity, KindInsufficientStock,
		KindReferentialConflict, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
