package storage

import "context"

// Store aggregates every entity storage behind one transactional handle
type Store interface {
	OfferStorage
	FlowStorage
	AssignmentStorage

	// WithTx runs fn inside a transaction. The transaction commits when fn
	// returns nil and rolls back on error or panic. Calling WithTx on the
	// Store passed to fn reuses the same transaction.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	// Ping checks database connectivity
	Ping(ctx context.Context) error
}
