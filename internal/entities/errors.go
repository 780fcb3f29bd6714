// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrActivityNotFound signals missing activity.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered signals signup with an email already on the roster.
	ErrAlreadyRegistered = errors.New("already registered")
	// ErrNotRegistered signals unregister with an email absent from the roster.
	ErrNotRegistered = errors.New("not registered")
)
