package service

import (
	"context"
	"fmt"

	"github.com/iudanet/keitarosync/internal/models"
	"github.com/iudanet/keitarosync/internal/server/storage"
	"github.com/iudanet/keitarosync/internal/validation"
)

// AssignmentInput is one local assignment edit made by an operator.
type AssignmentInput struct {
	State    models.AssignmentState `json:"state" validate:"required,assignment_state"`
	OfferID  int64                  `json:"offer_id" validate:"required,gt=0"`
	Share    int                    `json:"share" validate:"gte=0"`
	IsPinned bool                   `json:"is_pinned"`
}

// UpsertAssignment creates or overwrites the assignment of an offer to a
// flow. The offer is created with a placeholder name when unknown.
// An empty state defaults to pending_add.
func (s *Service) UpsertAssignment(ctx context.Context, flowID int64, in AssignmentInput) (*models.OfferAssignment, error) {
	if in.State == "" {
		in.State = models.StatePendingAdd
	}
	if err := validation.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var saved *models.OfferAssignment
	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		flow, err := tx.GetFlowByExternalID(ctx, flowID)
		if err != nil {
			return err
		}

		offer, err := tx.GetOrCreateOffer(ctx, in.OfferID, models.PlaceholderOfferName(in.OfferID))
		if err != nil {
			return fmt.Errorf("get offer: %w", err)
		}

		saved, err = tx.UpsertAssignment(ctx, &models.OfferAssignment{
			FlowID:          flow.ID,
			FlowExternalID:  flow.ExternalID,
			OfferID:         offer.ID,
			OfferExternalID: offer.ExternalID,
			Share:           in.Share,
			State:           in.State,
			IsPinned:        in.IsPinned,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// ListAssignments returns every assignment of the flow.
func (s *Service) ListAssignments(ctx context.Context, flowID int64) ([]models.OfferAssignment, error) {
	flow, err := s.store.GetFlowByExternalID(ctx, flowID)
	if err != nil {
		return nil, err
	}
	return s.store.ListAssignments(ctx, flow.ID)
}
