package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the key does not resolve to a session record.
	ErrNotFound = errors.New("resource not found")
	// ErrNotPermitted indicates a mutating operation against the
	// read-only surface. Terminal and non-retryable.
	ErrNotPermitted = errors.New("operation not permitted")
)

// NotFoundError carries the key that failed to resolve.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotPermittedError carries the name of the rejected operation.
type NotPermittedError struct {
	Op string
}

func (e *NotPermittedError) Error() string {
	return fmt.Sprintf("operation not permitted: %s", e.Op)
}

func (e *NotPermittedError) Unwrap() error { return ErrNotPermitted }

func notFound(key string) error { return &NotFoundError{Key: key} }

func notPermitted(op string) error { return &NotPermittedError{Op: op} }
