package usecase

import "errors"

// Failure kinds surfaced to the handler layer. All of them are recovered at
// the handler boundary and rendered as inline form messages.
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8
