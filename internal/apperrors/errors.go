// Package apperrors defines the error taxonomy shared by the services and the
// HTTP layer. Every failure a user can recover from gets a typed error here;
// handlers map them to status codes with errors.As / errors.Is.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned on any login mismatch. It deliberately does
// not distinguish an unknown username from a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrEmptyCart refuses entry into checkout when the cart has no line items.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports a user-input presence or format rule violation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports a uniqueness violation during registration.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StorageError wraps a serialization or I/O failure from the store. It is
// surfaced to the user once and never crashes the app; there is no retry.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for key %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
