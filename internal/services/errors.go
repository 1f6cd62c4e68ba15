package services

import "errors"

// Error kinds returned by the service layer. They are terminal for the
// triggering call; the handler layer maps each kind to an HTTP status.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrSelfFollow         = errors.New("users cannot follow themselves")
	ErrUnauthorized       = errors.New("not permitted")
	ErrValidation         = errors.New("validation failed")
	ErrOwnerlessResource  = errors.New("resource has no owner")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
