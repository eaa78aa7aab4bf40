// Package errs defines the error taxonomy shared by the storage, ledger and
// session layers. Callers classify failures with errors.Is and the sentinels
// below; the message carries the specifics.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced product or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means a business rule was violated (negative resulting
	// stock, duplicate username, inactive account, bad credential, malformed
	// input).
	ErrValidation = errors.New("validation failed")

	// ErrStorageUnavailable means the storage engine could not be opened.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStorageIO means an underlying read or write failed.
	ErrStorageIO = errors.New("storage i/o error")

	// ErrInconsistent means a product's stored quantity does not match the
	// quantity replayed from its movement history.
	ErrInconsistent = errors.New("inconsistent state")
)

// NotFound returns a formatted error wrapping ErrNotFound.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// Validation returns a formatted error wrapping ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

// StorageIO wraps an underlying storage error with ErrStorageIO while
// preserving the original cause in the message.
func StorageIO(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrStorageIO)
}

// Inconsistent returns a formatted error wrapping ErrInconsistent.
func Inconsistent(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInconsistent)
}
