package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a zero-result lookup where one result was expected.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates a missing/invalid/expired token or wrong credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden indicates an authenticated caller with insufficient access
	// level. Reserved for future use by the API layer.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation indicates malformed input, e.g. an unrecognized enum code.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration indicates a missing signing secret or storage endpoint
	// at startup. Fatal: the process must not start.
	ErrConfiguration = errors.New("configuration error")
)

// StorageError wraps a transport or backend failure. The underlying SDK
// error stays reachable through Unwrap for operators; Message is safe to
// surface to callers and never contains raw client error text.
type StorageError struct {
	Op      string
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error in %s: %s", e.Op, e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a StorageError for the given operation.
func NewStorageError(op, message string, err error) *StorageError {
	return &StorageError{Op: op, Message: message, Err: err}
}
