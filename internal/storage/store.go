// Package storage provides the durable key-value namespace used by diabeyes.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Store is a durable key-value namespace. Put replaces any previous value
// for the key in a single write.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Lifecycle
	Close() error
}

// ErrNotFound is returned when a record is not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e ErrNotFound) Error() string {
	return e.Resource + " not found: " + e.ID
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}

// Error is an opaque failure of the storage medium. Callers should surface it
// unchanged rather than retry.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsStorageError checks if an error is a storage medium failure.
func IsStorageError(err error) bool {
	var se *Error
	return errors.As(err, &se)
}

// Wrap annotates a medium failure with the operation and key. Nil and
// not-found errors pass through unchanged.
func Wrap(op, key string, err error) error {
	if err == nil || IsNotFound(err) || IsStorageError(err) {
		return err
	}
	return &Error{Op: op, Key: key, Err: err}
}
