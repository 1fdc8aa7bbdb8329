package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/keitarosync/internal/keitaro"
	"github.com/iudanet/keitarosync/internal/models"
	"github.com/iudanet/keitarosync/internal/server/storage"
)

// PushResult is the outcome of a successful flow push.
type PushResult struct {
	Flow      *keitaro.Flow
	Published int
	Deleted   int
}

// PushFlow sends the local flow with its pushable assignments upstream
// and, only once the upstream acknowledged it, flips pending_add to
// published and pending_delete to deleted. Both happen in one transaction.
func (s *Service) PushFlow(ctx context.Context, flowID int64) (*PushResult, error) {
	var result PushResult

	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		flow, err := tx.GetFlowByExternalID(ctx, flowID)
		if err != nil {
			return err
		}

		pushable, err := tx.ListAssignments(ctx, flow.ID, models.StatePublished, models.StatePendingDelete)
		if err != nil {
			return fmt.Errorf("list pushable assignments: %w", err)
		}

		updated, err := s.upstream.UpdateFlow(ctx, flow.ExternalID, BuildFlowUpdatePayload(flow, pushable))
		if err != nil {
			return err
		}

		result.Published, err = tx.TransitionAssignments(ctx, flow.ID, models.StatePendingAdd, models.StatePendingAdd.AfterPush())
		if err != nil {
			return fmt.Errorf("publish pending assignments: %w", err)
		}
		result.Deleted, err = tx.TransitionAssignments(ctx, flow.ID, models.StatePendingDelete, models.StatePendingDelete.AfterPush())
		if err != nil {
			return fmt.Errorf("delete pending assignments: %w", err)
		}

		result.Flow = updated
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "flow push failed", slog.Int64("flow_id", flowID), slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "flow pushed",
		slog.Int64("flow_id", flowID),
		slog.Int("published", result.Published),
		slog.Int("deleted", result.Deleted))

	return &result, nil
}

// BuildFlowUpdatePayload mirrors every stored field of flow and lists the
// given assignments as active offers.
func BuildFlowUpdatePayload(flow *models.Flow, assignments []models.OfferAssignment) keitaro.FlowUpdatePayload {
	offers := make([]keitaro.PayloadOffer, 0, len(assignments))
	for _, a := range assignments {
		if !a.State.Pushable() {
			continue
		}
		offers = append(offers, keitaro.PayloadOffer{
			OfferID: a.OfferExternalID,
			Share:   a.Share,
			State:   keitaro.OfferStateActive,
		})
	}

	return keitaro.FlowUpdatePayload{
		ID:             flow.ExternalID,
		Name:           flow.Name,
		Type:           flow.Type,
		CampaignID:     flow.CampaignID,
		Position:       flow.Position,
		ActionOptions:  flow.ActionOptions,
		Comments:       flow.Comments,
		State:          flow.State,
		ActionType:     flow.ActionType,
		ActionPayload:  flow.ActionPayload,
		Schema:         flow.Schema,
		CollectClicks:  flow.CollectClicks,
		FilterOr:       flow.FilterOr,
		Weight:         flow.Weight,
		OfferSelection: flow.OfferSelection,
		Filters:        flow.Filters,
		Triggers:       flow.Triggers,
		Landings:       flow.Landings,
		Offers:         offers,
	}
}
