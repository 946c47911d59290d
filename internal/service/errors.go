package service

import "errors"

var (
	// ErrInvalidCredentials covers an unknown identifier and a wrong secret alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInsufficientRole is returned for accounts whose role may not sign in.
	ErrInsufficientRole = errors.New("insufficient role")
	// ErrSessionInvalid is returned for malformed, expired, revoked or orphaned sessions.
	ErrSessionInvalid = errors.New("session is invalid or expired")

	ErrIdentifierTaken = errors.New("identifier is already taken")
	ErrWrongSecret     = errors.New("current password is incorrect")

	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
