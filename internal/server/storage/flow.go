package storage

import (
	"context"

	"github.com/iudanet/keitarosync/internal/models"
)

// FlowStorage defines persistence for mirrored flows
type FlowStorage interface {
	// ExistingFlowIDs returns the subset of externalIDs already stored locally
	ExistingFlowIDs(ctx context.Context, externalIDs []int64) (map[int64]struct{}, error)

	// InsertFlows inserts flows, silently skipping external ids that already exist.
	// Returns the number of rows actually inserted.
	InsertFlows(ctx context.Context, flows []models.Flow) (int, error)

	// GetFlowByExternalID returns ErrFlowNotFound if the flow is not stored
	GetFlowByExternalID(ctx context.Context, externalID int64) (*models.Flow, error)
}
