// Package errors holds the domain error values shared by every vertical.
// Handlers translate them to the HTTP contract; anything not in this set is
// reported as a generic internal error with details logged server-side only.
package errors

import "errors"

var (
	// ErrValidation is returned for missing or malformed request fields;
	// wrap it with the offending field name.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateIdentity is returned when a registration reuses an email
	// or national ID already on file.
	ErrDuplicateIdentity = errors.New("email or national ID already registered")

	// ErrInvalidCredentials is returned on any login mismatch or absence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller's role or ownership does not
	// permit the operation.
	ErrForbidden = errors.New("operation not permitted")

	// ErrAlreadyTaken signals a lost conditional update on the request
	// board: the request was accepted by another driver first.
	ErrAlreadyTaken = errors.New("request no longer available")

	// ErrUnavailable signals a schedule entry that is not open for
	// reservations: wrong state or no seats left.
	ErrUnavailable = errors.New("schedule not available")

	// ErrExpired is returned when acting on a reservation past its hold
	// expiry.
	ErrExpired = errors.New("reservation expired")

	// ErrInvalidState is returned when a lifecycle transition is attempted
	// from the wrong state.
	ErrInvalidState = errors.New("invalid state for this operation")
)
