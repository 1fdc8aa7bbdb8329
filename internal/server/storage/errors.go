package storage

import "errors"

// Common storage errors
var (
	// ErrFlowNotFound indicates that no local flow has the requested external id
	ErrFlowNotFound = errors.New("flow not found")

	// ErrOfferNotFound indicates that no local offer has the requested external id
	ErrOfferNotFound = errors.New("offer not found")

	// ErrInvalidState indicates an assignment state outside the lifecycle
	ErrInvalidState = errors.New("invalid assignment state")
)
