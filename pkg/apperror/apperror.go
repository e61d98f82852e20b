package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindConflict
	KindPersistence
	KindUnauthorized
	KindInternal
)

// Error is the application error carried across layers
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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

// Is makes two application errors of the same kind match under errors.Is,
// so sentinel-style checks like errors.Is(err, apperror.NotFound("patient", nil)) work.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Error constructors

func NotFound(resource string, err error) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func Validation(message string, err error) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
		Err:     err,
	}
}

func Conflict(message string, err error) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: message,
		Err:     err,
	}
}

func Persistence(message string, err error) *Error {
	return &Error{
		Kind:    KindPersistence,
		Message: message,
		Err:     err,
	}
}

func Unauthorized(err error) *Error {
	return &Error{
		Kind:    KindUnauthorized,
		Message: "unauthorized",
		Err:     err,
	}
}

func Internal(err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: "internal error",
		Err:     err,
	}
}

// Kind predicates used by callers to branch on outcome

func IsNotFound(err error) bool     { return hasKind(err, KindNotFound) }
func IsValidation(err error) bool   { return hasKind(err, KindValidation) }
func IsConflict(err error) bool     { return hasKind(err, KindConflict) }
func IsPersistence(err error) bool  { return hasKind(err, KindPersistence) }
func IsUnauthorized(err error) bool { return hasKind(err, KindUnauthorized) }

func hasKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
