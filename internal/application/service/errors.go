// Package service contains the application use cases of the shipping console.
package service

import "errors"

// Application errors returned alongside the repository and entity sentinels.
var (
	// ErrUnauthorized is returned when a session token is missing, unknown or expired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
