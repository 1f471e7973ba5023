// Package errors provides sentinel errors for the fforge CLI.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidName indicates user input that cannot be used as a
	// generated identifier.
	ErrInvalidName = errors.New("invalid name")

	// ErrNotFound indicates a template set or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrProcess indicates an external command failed to run or exited
	// non-zero.
	ErrProcess = errors.New("process failed")
)

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
