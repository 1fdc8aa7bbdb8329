// Package reconcile merges upstream flow snapshots into local state.
//
// Flows are mirrored once and never updated afterwards. Offer assignments
// are kept current: the published set of a flow always converges to the
// offer set of the latest snapshot, while pending local transitions are
// left alone by a read-only sync.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/keitarosync/internal/keitaro"
	"github.com/iudanet/keitarosync/internal/models"
)

//go:generate moq -out mocks_test.go . FlowSource FlowStore AssignmentStore

// FlowSource provides the upstream flow list of a campaign.
// A nil slice means the upstream gave no result.
type FlowSource interface {
	GetFlows(ctx context.Context, campaignID int64) []keitaro.Flow
}

// FlowStore is the part of the entity store used by FlowReconciler.
type FlowStore interface {
	ExistingFlowIDs(ctx context.Context, externalIDs []int64) (map[int64]struct{}, error)
	InsertFlows(ctx context.Context, flows []models.Flow) (int, error)
}

// FlowResult describes one flow reconciliation run.
type FlowResult struct {
	// Flows are the upstream flows that carry at least one offer.
	Flows    []keitaro.Flow
	Inserted int
	Skipped  int
	// NoResult is set when the upstream read failed.
	NoResult bool
}

// FlowReconciler mirrors new upstream flows into the local store.
type FlowReconciler struct {
	source FlowSource
	logger *slog.Logger
}

// NewFlowReconciler creates a FlowReconciler.
func NewFlowReconciler(source FlowSource, logger *slog.Logger) *FlowReconciler {
	return &FlowReconciler{source: source, logger: logger}
}

// Reconcile fetches the flows of campaignID and inserts the ones not yet
// stored. Flows without offers are skipped entirely. Existing flows are
// never updated.
func (r *FlowReconciler) Reconcile(ctx context.Context, store FlowStore, campaignID int64) (*FlowResult, error) {
	remote := r.source.GetFlows(ctx, campaignID)
	if remote == nil {
		r.logger.WarnContext(ctx, "no flows received from upstream",
			slog.Int64("campaign_id", campaignID))
		return &FlowResult{Flows: []keitaro.Flow{}, NoResult: true}, nil
	}

	result := &FlowResult{Flows: make([]keitaro.Flow, 0, len(remote))}
	for _, f := range remote {
		if !f.HasOffers() {
			result.Skipped++
			continue
		}
		result.Flows = append(result.Flows, f)
	}

	if len(result.Flows) == 0 {
		return result, nil
	}

	ids := make([]int64, len(result.Flows))
	for i, f := range result.Flows {
		ids[i] = f.ID
	}

	existing, err := store.ExistingFlowIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing flows: %w", err)
	}

	var missing []models.Flow
	seen := make(map[int64]struct{}, len(result.Flows))
	for _, f := range result.Flows {
		if _, ok := existing[f.ID]; ok {
			continue
		}
		if _, dup := seen[f.ID]; dup {
			continue
		}
		seen[f.ID] = struct{}{}
		missing = append(missing, FlowFromUpstream(f))
	}

	if len(missing) > 0 {
		inserted, err := store.InsertFlows(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("failed to insert flows: %w", err)
		}
		result.Inserted = inserted
	}

	r.logger.InfoContext(ctx, "flows reconciled",
		slog.Int64("campaign_id", campaignID),
		slog.Int("received", len(remote)),
		slog.Int("managed", len(result.Flows)),
		slog.Int("skipped", result.Skipped),
		slog.Int("inserted", result.Inserted))

	return result, nil
}

// FlowFromUpstream builds a local flow mirroring every upstream field verbatim.
func FlowFromUpstream(f keitaro.Flow) models.Flow {
	return models.Flow{
		ExternalID:     f.ID,
		CampaignID:     f.CampaignID,
		Name:           f.Name,
		Type:           f.Type,
		Position:       f.Position,
		ActionOptions:  f.ActionOptions,
		Comments:       f.Comments,
		State:          f.State,
		ActionType:     f.ActionType,
		ActionPayload:  f.ActionPayload,
		Schema:         f.Schema,
		CollectClicks:  f.CollectClicks,
		FilterOr:       f.FilterOr,
		Weight:         f.Weight,
		OfferSelection: f.OfferSelection,
		Filters:        f.Filters,
		Triggers:       f.Triggers,
		Landings:       f.Landings,
	}
}
