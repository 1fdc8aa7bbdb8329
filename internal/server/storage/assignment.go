package storage

import (
	"context"

	"github.com/iudanet/keitarosync/internal/models"
)

// AssignmentStorage defines persistence for flow to offer assignments.
// Flow and offer ids are local row ids unless stated otherwise.
type AssignmentStorage interface {
	// ListAssignments returns the assignments of a flow, optionally filtered
	// by state. Offer and flow external ids are filled in.
	ListAssignments(ctx context.Context, flowID int64, states ...models.AssignmentState) ([]models.OfferAssignment, error)

	// InsertAssignments inserts assignments, ignoring (flow, offer) pairs that
	// already exist. Returns the number of rows actually inserted.
	InsertAssignments(ctx context.Context, assignments []models.OfferAssignment) (int, error)

	// UpdateAssignments writes share, state and updated_at of each assignment
	// matched by (flow, offer). Returns the number of rows updated.
	UpdateAssignments(ctx context.Context, assignments []models.OfferAssignment) (int, error)

	// MarkAssignmentsDeleted moves published assignments of the flow for the
	// given offers to deleted with share 0. Other states are left untouched.
	MarkAssignmentsDeleted(ctx context.Context, flowID int64, offerIDs []int64) (int, error)

	// TransitionAssignments moves every assignment of the flow in state from
	// to state to.
	TransitionAssignments(ctx context.Context, flowID int64, from, to models.AssignmentState) (int, error)

	// UpsertAssignment creates the (flow, offer) assignment or overwrites its
	// share, state and pinned flag.
	UpsertAssignment(ctx context.Context, assignment *models.OfferAssignment) (*models.OfferAssignment, error)
}
