package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no session exists for the server
	ErrAuthNotFound = errors.New("authentication data not found")
)
