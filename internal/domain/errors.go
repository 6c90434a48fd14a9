package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrLockerNotFound      = errors.New("locker not found")
	ErrTokenNotFound       = errors.New("access token not found")
)

var (
	ErrConflict       = errors.New("reservation window conflicts with an existing reservation")
	ErrInvalidState   = errors.New("operation not allowed in current reservation state")
	ErrAlreadyStarted = errors.New("reservation window has already started")
)

// Credential collisions are internal to code generation; the service
// retries with a fresh code and never surfaces these to callers.
var (
	ErrReservationCodeTaken = errors.New("reservation code already in use")
	ErrAccessCodeTaken      = errors.New("access code already in use by an active reservation")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrStorageUnavailable marks infrastructure failures that are safe to
// retry. Every other error above is a business rule and is surfaced
// immediately.
var ErrStorageUnavailable = errors.New("storage unavailable")
