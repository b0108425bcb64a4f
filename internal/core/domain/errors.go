package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("resource conflict")
	ErrStorage    = errors.New("storage failure")
)

// Error carries one of the sentinel kinds above plus the context needed to
// render it. Match it with errors.Is against the sentinel.
type Error struct {
	Kind     error
	Resource string
	ID       int64
	Field    string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	msg := e.Message

	if msg == "" {
		msg = e.Kind.Error()
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}

	return msg
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Cause}
}

func NewValidationError(field, message string) error {
	return &Error{
		Kind:    ErrValidation,
		Field:   field,
		Message: message,
	}
}

func NewNotFoundError(resource string, id int64) error {
	return &Error{
		Kind:     ErrNotFound,
		Resource: resource,
		ID:       id,
		Message:  fmt.Sprintf("%s com o ID %d não encontrado", resource, id),
	}
}

func NewConflictError(resource string, cause error) error {
	return &Error{
		Kind:     ErrConflict,
		Resource: resource,
		Message:  fmt.Sprintf("%s já existe", resource),
		Cause:    cause,
	}
}

func NewStorageError(operation string, cause error) error {
	return &Error{
		Kind:    ErrStorage,
		Message: fmt.Sprintf("storage %s failed", operation),
		Cause:   cause,
	}
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool   { return errors.Is(err, ErrConflict) }
func IsStorage(err error) bool    { return errors.Is(err, ErrStorage) }

// Message returns the user facing text of err, hiding storage causes.
func Message(err error) string {
	var de *Error

	if errors.As(err, &de) {
		if de.Message != "" && !errors.Is(de.Kind, ErrStorage) {
			return de.Message
		}

		return de.Kind.Error()
	}

	return err.Error()
}
