package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrNotFound is returned when a user record is not found
	ErrNotFound = errors.New("user not found")

	// ErrInvalidID is returned when an empty or invalid ID is provided
	ErrInvalidID = errors.New("invalid user ID")

	// ErrConnection is returned when the storage backend cannot be reached
	ErrConnection = errors.New("storage connection error")
)

// StorageError wraps a backend failure with the operation that produced it.
type StorageError struct {
	Op  string // Operation that failed
	ID  string // User ID (if applicable)
	Err error  // Underlying backend error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("user %s operation failed for ID %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("user %s operation failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new storage error
func NewStorageError(op, id string, err error) *StorageError {
	return &StorageError{Op: op, ID: id, Err: err}
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
