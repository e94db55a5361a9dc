package auth

import "errors"

var (
	// ErrInvalidCredentials carries the exact message shown to callers on a
	// failed login. It is deliberately the same for an unknown email and a
	// wrong password.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	ErrMissingFields   = errors.New("name, email and password are required")
	ErrInvalidRole     = errors.New("invalid role")
	ErrSessionNotFound = errors.New("session not found or expired")
)
